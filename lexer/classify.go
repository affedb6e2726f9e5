package lexer

import "github.com/dekarrin/spacelang/token"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// startsPointerIdent reports whether src[i:] begins a pointer-declaration
// form: one or more '*' characters immediately followed by an identifier
// start character. In that position '*' is not the multiplication
// operator; it joins the identifier as a pointer-declaration marker.
func startsPointerIdent(src string, i int) bool {
	n := len(src)
	j := i
	for j < n && src[j] == '*' {
		j++
	}
	return j < n && j > i && isIdentStart(src[j])
}

// operatorRule is one entry of the punctuation/operator match table,
// ordered so that multi-character lexemes are tried before any
// single-character prefix they share, mirroring the teacher's
// longest-match matchRule table in internal/tunascript/lexer.go.
type operatorRule struct {
	text string
	kind token.Kind
}

var operatorRules = []operatorRule{
	{"==", token.Eq},
	{"!=", token.NotEq},
	{"<=", token.LessEq},
	{">=", token.GreaterEq},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"++", token.Increment},
	{"--", token.Decrement},
	{"->", token.Arrow},
	{"=>", token.FatArrow},

	{";", token.Semicolon},
	{",", token.Comma},
	{":", token.Colon},
	{".", token.Dot},
	{"(", token.LParen},
	{")", token.RParen},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"=", token.Assign},
	{"<", token.Less},
	{">", token.Greater},
	{"?", token.Question},
	{"&", token.Amp},
	{"!", token.Not},
}

// matchOperator tries every rule at src[i:], preferring the longest match;
// rules are pre-sorted multi-character-first so the first match found at a
// given length wins.
func matchOperator(src string, i int) (token.Kind, int, bool) {
	for _, r := range operatorRules {
		l := len(r.text)
		if i+l <= len(src) && src[i:i+l] == r.text {
			return r.kind, l, true
		}
	}
	return token.Invalid, 0, false
}
