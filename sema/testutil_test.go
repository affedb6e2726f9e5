package sema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/lexer"
	"github.com/dekarrin/spacelang/parser"
)

// analyze lexes and parses src, then runs a full Analyze pass and returns the
// result. It fails the test immediately on any lex or parse error, since
// those scenarios belong to the lexer/parser packages' own test suites.
func analyze(t *testing.T, src string, strictByDefault bool) Result {
	t.Helper()
	toks, err := lexer.Lex(src, lexer.DefaultMaxTokenLength)
	require.NoError(t, err)

	tree, err := parser.Parse(toks)
	require.NoError(t, err)

	return New(strictByDefault).Analyze(tree)
}

// diagsOf returns every diagnostic of the given category collected in res.
func diagsOf(res Result, cat diag.Category) []diag.Diagnostic {
	var found []diag.Diagnostic
	for _, d := range res.Diagnostics.Diagnostics {
		if d.Category == cat {
			found = append(found, d)
		}
	}
	return found
}
