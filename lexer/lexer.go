// Package lexer turns a 7-bit ASCII source buffer into a token.Token
// sequence. It follows the teacher's longest-match operator scanning
// style (internal/tunascript/lexer.go) but runs the scan in two distinct
// passes: a sizing pass that classifies each prospective token and records
// its byte span without allocating its text, and a materialization pass
// that allocates the token slice and copies lexemes out of the source
// buffer using the spans the sizing pass recorded.
package lexer

import (
	"fmt"
	"strings"

	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/token"
)

// DefaultMaxTokenLength is the smallest maximum token length a conforming
// implementation may use.
const DefaultMaxTokenLength = 1024

// span is a sizing-pass descriptor: everything needed to later allocate a
// Token except its text, which the materialization pass copies out of the
// source buffer using Start/Length.
type span struct {
	kind   token.Kind
	start  int
	length int
	line   int
	column int
}

// Lex runs both passes over src and returns the resulting token sequence,
// terminated by an EOF sentinel. maxTokenLength bounds how far an
// unterminated string or block comment may scan before being reported as
// fatal; callers should pass DefaultMaxTokenLength unless
// internal/config.Config.MaxTokenLength overrides it.
func Lex(src string, maxTokenLength int) ([]token.Token, error) {
	if maxTokenLength < DefaultMaxTokenLength {
		maxTokenLength = DefaultMaxTokenLength
	}

	spans, err := sizePass(src, maxTokenLength)
	if err != nil {
		return nil, err
	}

	tokens := materialize(src, spans)
	reclassifyKeywords(tokens)

	return tokens, nil
}

// sizePass walks the buffer exactly once, classifying each prospective
// token and recording its byte span. It skips whitespace and comments
// entirely; neither produces a span. Fatal lexical errors (unterminated
// string, unterminated block comment, unrecognized character) abort the
// pass immediately.
func sizePass(src string, maxTokenLength int) ([]span, error) {
	var spans []span

	line, col := 1, 1

	i := 0
	n := len(src)

	newline := func() {
		line++
		col = 1
	}

	for i < n {
		c := src[i]

		switch {
		case c == '\n':
			i++
			newline()
			continue

		case isSpace(c):
			i++
			col++
			continue

		case c == '/' && i+1 < n && src[i+1] == '/':
			start := i
			for i < n && src[i] != '\n' {
				i++
			}
			col += i - start
			continue

		case c == '/' && i+1 < n && src[i+1] == '*':
			startLine, startCol := line, col
			j := i + 2
			closed := false
			for j+1 < n {
				if j-i > maxTokenLength {
					break
				}
				if src[j] == '\n' {
					line++
					col = 1
					j++
					continue
				}
				if src[j] == '*' && src[j+1] == '/' {
					j += 2
					closed = true
					break
				}
				j++
			}
			if !closed {
				return nil, diag.NewError(diag.UnterminatedComment, startLine, startCol, "unterminated block comment; missing closing \"*/\"")
			}
			col += j - i
			i = j
			continue

		case c == '"':
			sp, next, nl, nc, err := lexQuoted(src, i, line, col, '"', token.StringLiteral, maxTokenLength)
			if err != nil {
				return nil, err
			}
			spans = append(spans, sp)
			i, line, col = next, nl, nc
			continue

		case c == '\'':
			sp, next, nl, nc, err := lexQuoted(src, i, line, col, '\'', token.CharLiteral, maxTokenLength)
			if err != nil {
				return nil, err
			}
			spans = append(spans, sp)
			i, line, col = next, nl, nc
			continue

		case c == '&' && i+1 < n && isIdentStart(src[i+1]):
			start := i
			j := i + 1
			for j < n && isIdentPart(src[j]) {
				j++
			}
			spans = append(spans, span{kind: token.Identifier, start: start, length: j - start, line: line, column: col})
			col += j - start
			i = j
			continue

		case c == '*' && startsPointerIdent(src, i):
			start := i
			j := i
			for j < n && src[j] == '*' {
				j++
			}
			for j < n && isIdentPart(src[j]) {
				j++
			}
			spans = append(spans, span{kind: token.Identifier, start: start, length: j - start, line: line, column: col})
			col += j - start
			i = j
			continue

		case c == '-' && i+1 < n && isDigit(src[i+1]):
			sp, next := lexNumber(src, i, line, col, true)
			spans = append(spans, sp)
			col += next - i
			i = next
			continue

		case isDigit(c):
			sp, next := lexNumber(src, i, line, col, false)
			spans = append(spans, sp)
			col += next - i
			i = next
			continue

		case isIdentStart(c):
			start := i
			j := i + 1
			for j < n && isIdentPart(src[j]) {
				j++
			}
			spans = append(spans, span{kind: token.Identifier, start: start, length: j - start, line: line, column: col})
			col += j - start
			i = j
			continue

		default:
			kind, length, ok := matchOperator(src, i)
			if !ok {
				return nil, diag.NewError(diag.UnknownCharacter, line, col, fmt.Sprintf("unrecognized character %q", string(c)))
			}
			spans = append(spans, span{kind: kind, start: i, length: length, line: line, column: col})
			col += length
			i += length
			continue
		}
	}

	return spans, nil
}

// lexNumber scans an integer or float literal starting at i. signed
// indicates the caller already confirmed src[i] == '-' and the digit
// immediately follows: a '-' directly followed by a digit is a sign, not
// the subtraction operator, and joins the number it precedes.
func lexNumber(src string, i, line, col int, signed bool) (span, int) {
	start := i
	n := len(src)
	if signed {
		i++ // the sign; the digit run below consumes the rest
	}
	for i < n && isDigit(src[i]) {
		i++
	}

	kind := token.IntLiteral
	// a '.' joins the number only when sandwiched between two digits.
	if i < n && src[i] == '.' && i+1 < n && isDigit(src[i+1]) {
		kind = token.FloatLiteral
		i++ // the '.'
		for i < n && isDigit(src[i]) {
			i++
		}
	}

	return span{kind: kind, start: start, length: i - start, line: line, column: col}, i
}

// lexQuoted scans a double- or single-quoted literal. No token boundary
// applies until the matching unescaped closing quote; a preceding '\'
// escapes the next character, including another backslash or the quote
// itself. maxTokenLength bounds the scan so a missing closing quote is
// reported rather than consuming the rest of the buffer.
func lexQuoted(src string, i, line, col int, quote byte, kind token.Kind, maxTokenLength int) (span, int, int, int, error) {
	start := i
	startLine, startCol := line, col
	n := len(src)

	j := i + 1
	escaping := false
	for j < n {
		if j-i > maxTokenLength {
			break
		}
		c := src[j]
		if c == '\n' {
			break // literals in this language never span lines
		}
		if escaping {
			escaping = false
			j++
			continue
		}
		if c == '\\' {
			escaping = true
			j++
			continue
		}
		if c == quote {
			j++
			return span{kind: kind, start: start, length: j - start, line: startLine, column: startCol}, j, line, col + (j - i), nil
		}
		j++
	}

	cat := diag.UnterminatedString
	name := "string"
	if quote == '\'' {
		name = "character-array"
	}
	return span{}, 0, 0, 0, diag.NewError(cat, startLine, startCol, fmt.Sprintf("unterminated %s literal; missing closing %q", name, quote))
}

// materialize allocates the final token slice from the spans the sizing
// pass recorded, copying each lexeme's text directly out of src using its
// recorded byte span; no re-scanning of the character buffer is needed.
// Every token also carries the full line of src it starts on, so a
// diagnostic built later from the token's Line/Column can render a caret
// underline without re-reading the source.
func materialize(src string, spans []span) []token.Token {
	srcLines := strings.Split(src, "\n")
	lineText := func(n int) string {
		if n >= 1 && n <= len(srcLines) {
			return srcLines[n-1]
		}
		return ""
	}

	tokens := make([]token.Token, len(spans)+1)
	for i, sp := range spans {
		tokens[i] = token.Token{
			Kind:     sp.kind,
			Text:     src[sp.start : sp.start+sp.length],
			Line:     sp.line,
			Column:   sp.column,
			Length:   sp.length,
			FullLine: lineText(sp.line),
		}
	}

	lastLine, lastCol := 1, 1
	if len(spans) > 0 {
		last := spans[len(spans)-1]
		lastLine, lastCol = last.line, last.column+last.length
	}
	tokens[len(spans)] = token.Token{Kind: token.EOF, Line: lastLine, Column: lastCol, FullLine: lineText(lastLine)}

	return tokens
}

// reclassifyKeywords retypes every Identifier token whose text exactly
// matches a reserved word.
func reclassifyKeywords(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Kind != token.Identifier {
			continue
		}
		if kw, ok := token.Keywords[tokens[i].Text]; ok {
			tokens[i].Kind = kw
		}
	}
}
