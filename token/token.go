// Package token holds the immutable token model produced by package lexer
// and consumed by package parser.
package token

import "fmt"

// Kind identifies the class of lexeme a Token represents. It is a closed
// enum; every variant named in the language grammar has a Kind here.
type Kind int

const (
	Invalid Kind = iota

	// literals and identifiers
	Identifier
	IntLiteral
	FloatLiteral
	StringLiteral
	CharLiteral

	// keywords
	KwVar
	KwConst
	KwFunction
	KwClass
	KwThis
	KwConstructor
	KwNew
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwTry
	KwCatch
	KwReturn
	KwBreak
	KwContinue
	KwEnum
	KwInclude
	KwExport
	KwExtends
	KwWith
	KwCheck
	KwIs
	KwTrue
	KwFalse
	KwNull
	KwAnd
	KwOr
	KwGlobal
	KwSecure
	KwPrivate

	// punctuation
	Semicolon
	Comma
	Colon
	Dot
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket

	// operators
	Plus
	Minus
	Star
	Slash
	Percent
	Assign
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	Increment
	Decrement
	Eq
	NotEq
	Less
	Greater
	LessEq
	GreaterEq
	Arrow // ->
	FatArrow
	Question
	Amp
	Not

	EOF
)

var kindNames = map[Kind]string{
	Invalid:       "INVALID",
	Identifier:    "IDENTIFIER",
	IntLiteral:    "INT_LITERAL",
	FloatLiteral:  "FLOAT_LITERAL",
	StringLiteral: "STRING_LITERAL",
	CharLiteral:   "CHAR_LITERAL",
	KwVar:         "var",
	KwConst:       "const",
	KwFunction:    "function",
	KwClass:       "class",
	KwThis:        "this",
	KwConstructor: "constructor",
	KwNew:         "new",
	KwIf:          "if",
	KwElse:        "else",
	KwWhile:       "while",
	KwDo:          "do",
	KwFor:         "for",
	KwTry:         "try",
	KwCatch:       "catch",
	KwReturn:      "return",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwEnum:        "enum",
	KwInclude:     "include",
	KwExport:      "export",
	KwExtends:     "extends",
	KwWith:        "with",
	KwCheck:       "check",
	KwIs:          "is",
	KwTrue:        "true",
	KwFalse:       "false",
	KwNull:        "null",
	KwAnd:         "and",
	KwOr:          "or",
	KwGlobal:      "global",
	KwSecure:      "secure",
	KwPrivate:     "private",
	Semicolon:     "';'",
	Comma:         "','",
	Colon:         "':'",
	Dot:           "'.'",
	LParen:        "'('",
	RParen:        "')'",
	LBrace:        "'{'",
	RBrace:        "'}'",
	LBracket:      "'['",
	RBracket:      "']'",
	Plus:          "'+'",
	Minus:         "'-'",
	Star:          "'*'",
	Slash:         "'/'",
	Percent:       "'%'",
	Assign:        "'='",
	PlusAssign:    "'+='",
	MinusAssign:   "'-='",
	StarAssign:    "'*='",
	SlashAssign:   "'/='",
	Increment:     "'++'",
	Decrement:     "'--'",
	Eq:            "'=='",
	NotEq:         "'!='",
	Less:          "'<'",
	Greater:       "'>'",
	LessEq:        "'<='",
	GreaterEq:     "'>='",
	Arrow:         "'->'",
	FatArrow:      "'=>'",
	Question:      "'?'",
	Amp:           "'&'",
	Not:           "'!'",
	EOF:           "end of file",
}

// Keywords maps the reserved-word spelling to its Kind. Populated once and
// consulted by the lexer's keyword-reclassification pass.
var Keywords = map[string]Kind{
	"var": KwVar, "const": KwConst, "function": KwFunction, "class": KwClass,
	"this": KwThis, "constructor": KwConstructor, "new": KwNew, "if": KwIf,
	"else": KwElse, "while": KwWhile, "do": KwDo, "for": KwFor, "try": KwTry,
	"catch": KwCatch, "return": KwReturn, "break": KwBreak, "continue": KwContinue,
	"enum": KwEnum, "include": KwInclude, "export": KwExport, "extends": KwExtends,
	"with": KwWith, "check": KwCheck, "is": KwIs, "true": KwTrue, "false": KwFalse,
	"null": KwNull, "and": KwAnd, "or": KwOr, "global": KwGlobal, "secure": KwSecure,
	"private": KwPrivate,
}

// String returns a human-readable name for the Kind, suitable for use in
// diagnostics ("expected ';', got IDENTIFIER").
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// lbp holds the left binding power used by package parser's precedence
// climb over arithmetic terms: +/- bind loosest, */ % bind tightest. Every
// other Kind never appears as a term operator and binds at 0.
var lbp = map[Kind]int{
	Plus:    10,
	Minus:   10,
	Star:    20,
	Slash:   20,
	Percent: 20,
}

// LBP returns the left binding power of the Kind for precedence-climbing
// expression parsing. Kinds that cannot appear as an infix operator have an
// LBP of 0, which halts the climb.
func (k Kind) LBP() int {
	return lbp[k]
}

// Token is an immutable record describing one classified lexeme. Line and
// Column are 1-indexed. Length is the byte length of Text, kept distinct
// from len(Text) because it is computed by the lexer's sizing pass before
// Text is ever allocated; the materialization pass slices Text out of the
// source using that same length, so the two agree by construction.
// FullLine is the entire source line the token starts on, carried purely as
// bookkeeping for package diag's caret-underlined source excerpts.
type Token struct {
	Kind     Kind
	Text     string
	Line     int
	Column   int
	Length   int
	FullLine string
}

// String gives a compact human-readable form, used in test failure output
// and in lower-severity log lines; never used to render end-user
// diagnostics (package diag owns that).
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Column)
}

// IsEOF returns whether the token is the end-of-file sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}
