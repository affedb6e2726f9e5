package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/spacelang/ast"
)

func Test_buildCondition_relationalLeaf(t *testing.T) {
	toks := mustLex(t, "x > 5")
	p := newParser(toks)
	node, _, err := p.buildCondition()
	require.NoError(t, err)
	assert.Equal(t, ast.RelGreater, node.Kind)
}

func Test_buildCondition_chainAssociatesLeftToRight(t *testing.T) {
	toks := mustLex(t, "a and b or c")
	p := newParser(toks)
	node, _, err := p.buildCondition()
	require.NoError(t, err)

	// "a and b or c" must associate as "(a and b) or c", equal precedence
	// left to right.
	require.Equal(t, ast.Or, node.Kind)
	require.Equal(t, ast.And, node.Left.Kind)
	assert.Equal(t, "c", node.Right.Value)
}

func Test_buildCondition_parenthesesOverrideAssociation(t *testing.T) {
	toks := mustLex(t, "a and (b or c)")
	p := newParser(toks)
	node, _, err := p.buildCondition()
	require.NoError(t, err)

	require.Equal(t, ast.And, node.Kind)
	require.Equal(t, ast.Or, node.Right.Kind)
}

func Test_buildCondition_bareExpressionIsItsOwnLeaf(t *testing.T) {
	toks := mustLex(t, "isReady")
	p := newParser(toks)
	node, _, err := p.buildCondition()
	require.NoError(t, err)
	assert.Equal(t, ast.Identifier, node.Kind)
}
