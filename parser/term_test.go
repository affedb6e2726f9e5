package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/lexer"
	"github.com/dekarrin/spacelang/token"
)

func mustLex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Lex(src, lexer.DefaultMaxTokenLength)
	require.NoError(t, err)
	return toks
}

func Test_buildTerm_starBindsTighterThanPlus(t *testing.T) {
	toks := mustLex(t, "1 + 2 * 3")
	p := newParser(toks)
	node, _, err := p.buildTerm()
	require.NoError(t, err)

	// "1 + 2 * 3" must associate as "1 + (2 * 3)".
	require.Equal(t, ast.Add, node.Kind)
	assert.Equal(t, ast.IntLiteral, node.Left.Kind)
	require.Equal(t, ast.Multiply, node.Right.Kind)
	assert.Equal(t, "2", node.Right.Left.Value)
	assert.Equal(t, "3", node.Right.Right.Value)
}

func Test_buildTerm_sameBindingPowerAssociatesLeftToRight(t *testing.T) {
	toks := mustLex(t, "1 - 2 - 3")
	p := newParser(toks)
	node, _, err := p.buildTerm()
	require.NoError(t, err)

	// "1 - 2 - 3" must associate as "(1 - 2) - 3".
	require.Equal(t, ast.Subtract, node.Kind)
	require.Equal(t, ast.Subtract, node.Left.Kind)
	assert.Equal(t, "1", node.Left.Left.Value)
	assert.Equal(t, "2", node.Left.Right.Value)
	assert.Equal(t, "3", node.Right.Value)
}

func Test_buildTerm_parenthesesOverridePrecedence(t *testing.T) {
	toks := mustLex(t, "(1 + 2) * 3")
	p := newParser(toks)
	node, _, err := p.buildTerm()
	require.NoError(t, err)

	require.Equal(t, ast.Multiply, node.Kind)
	require.Equal(t, ast.Add, node.Left.Kind)
}

func Test_buildTerm_unaryMinusWrapsOperandInZeroSubtraction(t *testing.T) {
	toks := mustLex(t, "-x")
	p := newParser(toks)
	node, _, err := p.buildTerm()
	require.NoError(t, err)

	require.Equal(t, ast.Subtract, node.Kind)
	assert.Equal(t, ast.IntLiteral, node.Left.Kind)
	assert.Equal(t, "0", node.Left.Value)
	assert.Equal(t, ast.Identifier, node.Right.Kind)
}

func Test_buildTerm_literalsEachProduceTheirOwnKind(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect ast.Kind
	}{
		{name: "int", input: "5", expect: ast.IntLiteral},
		{name: "float", input: "5.5", expect: ast.FloatLiteral},
		{name: "string", input: `"hi"`, expect: ast.StringLiteral},
		{name: "char", input: `'a'`, expect: ast.CharLiteral},
		{name: "true", input: "true", expect: ast.BoolLiteral},
		{name: "false", input: "false", expect: ast.BoolLiteral},
		{name: "null", input: "null", expect: ast.NullLiteral},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks := mustLex(t, tc.input)
			p := newParser(toks)
			node, _, err := p.buildTerm()
			require.NoError(t, err)
			assert.Equal(t, tc.expect, node.Kind)
		})
	}
}

func Test_buildTerm_rejectsDanglingOperator(t *testing.T) {
	toks := mustLex(t, "1 +")
	p := newParser(toks)
	_, _, err := p.buildTerm()
	assert.Error(t, err)
}
