package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/spacelang/diag"
)

func Test_Analyze_assigningToAConstantIsTypeMismatch(t *testing.T) {
	res := analyze(t, `
		const limit: int = 10;
		limit = 5;
	`, false)
	found := diagsOf(res, diag.TypeMismatch)
	require.NotEmpty(t, found)
	assert.Contains(t, found[0].Message, "constant")
}

func Test_Analyze_arithmeticBetweenIncompatibleNonNumericTypesIsTypeMismatch(t *testing.T) {
	res := analyze(t, `
		var x: int = 1;
		var y: string = "a";
		var z: int = x + y;
	`, false)
	assert.NotEmpty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_arithmeticBetweenMismatchedNumericOperandsIsTypeMismatch(t *testing.T) {
	// there is no general numeric widening hierarchy: long and short operands
	// do not agree under lenient equality even though both are numeric.
	res := analyze(t, `
		var a: long;
		var b: short;
		var c: long = a + b;
	`, false)
	assert.NotEmpty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_arithmeticBetweenDoubleAndFloatWidensToTheWiderOperand(t *testing.T) {
	res := analyze(t, `
		var a: double;
		var b: float;
		var c: double = a + b;
	`, false)
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_nestedArrayAccessDecrementsOneDimensionPerIndex(t *testing.T) {
	res := analyze(t, `
		var grid: int[][] = [];
		var cell: int = grid[0][0];
	`, false)
	assert.Empty(t, diagsOf(res, diag.NoSuchArrayDimension))
}

func Test_Analyze_indexingPastDeclaredDimensionIsNoSuchArrayDimension(t *testing.T) {
	res := analyze(t, `
		var xs: int[];
		var y: int = xs[0][0];
	`, false)
	assert.NotEmpty(t, diagsOf(res, diag.NoSuchArrayDimension))
}

func Test_Analyze_arrayIndexingAtTheEndOfAMemberAccessChain(t *testing.T) {
	res := analyze(t, `
		class Box {
			var items: int[];
		}
		var b: Box = new Box();
		var first: int = b.items[0];
	`, false)
	assert.Empty(t, diagsOf(res, diag.NoSuchArrayDimension))
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_arrayLiteralElementTypeFlowsThroughIndexing(t *testing.T) {
	res := analyze(t, `
		var xs: int[] = [1, 2, 3];
		var y: int = xs[0];
	`, false)
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_nullLiteralSatisfiesAClassTypedVariable(t *testing.T) {
	res := analyze(t, `
		class Account { }
		var acct: Account = null;
	`, false)
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_nullLiteralDoesNotSatisfyAPrimitiveScalar(t *testing.T) {
	res := analyze(t, `
		var x: int = null;
	`, false)
	assert.NotEmpty(t, diagsOf(res, diag.TypeMismatch))
}
