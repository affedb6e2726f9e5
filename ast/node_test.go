package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "IDENTIFIER", Identifier.String())
	assert.Equal(t, "FNC_CALL", FunctionCall.String())
	assert.Equal(t, "Kind(9999)", Kind(9999).String())
}

func Test_NewLeaf(t *testing.T) {
	n := NewLeaf(IntLiteral, "5", 1, 2)
	assert.Equal(t, IntLiteral, n.Kind)
	assert.Equal(t, "5", n.Value)
	assert.True(t, n.IsLeaf())
}

func Test_NewBinary_panicsOnNilOperand(t *testing.T) {
	left := NewLeaf(Identifier, "a", 1, 1)
	assert.Panics(t, func() {
		NewBinary(Add, left, nil, 1, 1)
	})
	assert.Panics(t, func() {
		NewBinary(Add, nil, left, 1, 1)
	})
	assert.NotPanics(t, func() {
		NewBinary(Add, left, left, 1, 1)
	})
}

func Test_ParseNode_IsLeaf(t *testing.T) {
	leaf := NewLeaf(Identifier, "a", 1, 1)
	assert.True(t, leaf.IsLeaf())

	withLeft := &ParseNode{Kind: IncDec, Left: leaf}
	assert.False(t, withLeft.IsLeaf())

	withDetails := &ParseNode{Kind: Runnable, Details: []*ParseNode{leaf}}
	assert.False(t, withDetails.IsLeaf())
}

func Test_ParseNode_Pos(t *testing.T) {
	n := NewLeaf(Identifier, "a", 4, 9)
	line, col := n.Pos()
	assert.Equal(t, 4, line)
	assert.Equal(t, 9, col)
}

func Test_ParseNode_Equal(t *testing.T) {
	a := NewBinary(Add, NewLeaf(IntLiteral, "1", 1, 1), NewLeaf(IntLiteral, "2", 1, 3), 1, 2)
	b := NewBinary(Add, NewLeaf(IntLiteral, "1", 99, 99), NewLeaf(IntLiteral, "2", 99, 99), 50, 50)
	assert.True(t, a.Equal(b), "structurally identical trees should be Equal regardless of position")

	c := NewBinary(Subtract, NewLeaf(IntLiteral, "1", 1, 1), NewLeaf(IntLiteral, "2", 1, 3), 1, 2)
	assert.False(t, a.Equal(c), "differing Kind must not be Equal")

	var nilNode *ParseNode
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func Test_ParseNode_Equal_detailsLengthMismatch(t *testing.T) {
	a := NewRunnable(1, 1, NewLeaf(Identifier, "x", 1, 1))
	b := NewRunnable(1, 1, NewLeaf(Identifier, "x", 1, 1), NewLeaf(Identifier, "y", 1, 1))
	assert.False(t, a.Equal(b))
}

func Test_ParseNode_String_includesValueOnlyWhenNonEmpty(t *testing.T) {
	withValue := NewLeaf(Identifier, "count", 1, 1)
	assert.Contains(t, withValue.String(), `IDENTIFIER "count"`)

	noValue := &ParseNode{Kind: Runnable}
	assert.NotContains(t, noValue.String(), `""`)
}
