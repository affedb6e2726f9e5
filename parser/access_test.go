package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/spacelang/ast"
)

func Test_buildAccessChain_bareIdentifier(t *testing.T) {
	toks := mustLex(t, "x")
	p := newParser(toks)
	node, _, err := p.buildAccessChain()
	require.NoError(t, err)
	assert.Equal(t, ast.Identifier, node.Kind)
	assert.Equal(t, "x", node.Value)
}

func Test_buildAccessChain_functionCall(t *testing.T) {
	toks := mustLex(t, "doStuff(1, 2)")
	p := newParser(toks)
	node, _, err := p.buildAccessChain()
	require.NoError(t, err)
	require.Equal(t, ast.FunctionCall, node.Kind)
	assert.Equal(t, "doStuff", node.Value)
	assert.Len(t, node.Details, 2)
}

func Test_buildAccessChain_isLeftDeepAcrossMultipleSegments(t *testing.T) {
	toks := mustLex(t, "a.b.c")
	p := newParser(toks)
	node, _, err := p.buildAccessChain()
	require.NoError(t, err)

	// "a.b.c" must associate as "(a.b).c": the outermost node's left side
	// is itself a MEM_ACC, not a flat three-way chain.
	require.Equal(t, ast.MemberAccess, node.Kind)
	require.Equal(t, ast.MemberAccess, node.Left.Kind)
	assert.Equal(t, "a", node.Left.Left.Value)
	assert.Equal(t, "b", node.Left.Right.Value)
	assert.Equal(t, "c", node.Right.Value)
}

func Test_buildAccessChain_classAccessor(t *testing.T) {
	toks := mustLex(t, "Account->MAX_BALANCE")
	p := newParser(toks)
	node, _, err := p.buildAccessChain()
	require.NoError(t, err)
	assert.Equal(t, ast.ClassAccess, node.Kind)
	assert.Equal(t, "->", node.Value)
}

func Test_buildAccessChain_arrayIndexing(t *testing.T) {
	toks := mustLex(t, "items[0]")
	p := newParser(toks)
	node, _, err := p.buildAccessChain()
	require.NoError(t, err)

	// the accessed value stays the top node; the index chain hangs off its
	// own Left, with each dimension's index expression in that node's Left
	// and the next dimension, if any, chained through Right.
	require.Equal(t, ast.Identifier, node.Kind)
	assert.Equal(t, "items", node.Value)
	require.NotNil(t, node.Left)
	require.Equal(t, ast.ArrayAccess, node.Left.Kind)
	assert.Equal(t, "0", node.Left.Left.Value)
	assert.Nil(t, node.Left.Right)
}

func Test_buildAccessChain_multiDimensionalArrayIndexingChainsThroughRight(t *testing.T) {
	toks := mustLex(t, "grid[0][1]")
	p := newParser(toks)
	node, _, err := p.buildAccessChain()
	require.NoError(t, err)

	require.Equal(t, ast.Identifier, node.Kind)
	require.NotNil(t, node.Left)
	require.Equal(t, ast.ArrayAccess, node.Left.Kind)
	assert.Equal(t, "0", node.Left.Left.Value)
	require.NotNil(t, node.Left.Right)
	require.Equal(t, ast.ArrayAccess, node.Left.Right.Kind)
	assert.Equal(t, "1", node.Left.Right.Left.Value)
	assert.Nil(t, node.Left.Right.Right)
}

func Test_buildAccessChain_thisIsAValidReceiver(t *testing.T) {
	toks := mustLex(t, "this.balance")
	p := newParser(toks)
	node, _, err := p.buildAccessChain()
	require.NoError(t, err)
	require.Equal(t, ast.MemberAccess, node.Kind)
	assert.Equal(t, ast.This, node.Left.Kind)
}

func Test_buildAccessChain_rejectsBareLiteralAsReceiver(t *testing.T) {
	toks := mustLex(t, "5.b")
	p := newParser(toks)
	_, _, err := p.buildAccessChain()
	assert.Error(t, err)
}
