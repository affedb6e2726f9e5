package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/spacelang/diag"
)

// Test_Analyze_assignmentTypeCheckPasses covers the first named scenario: an
// assignment whose RHS satisfies the LHS's declared type reports nothing.
func Test_Analyze_assignmentTypeCheckPasses(t *testing.T) {
	res := analyze(t, `
		var x: int;
		x = 5;
	`, false)
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
}

// Test_Analyze_assignmentTypeMismatch covers the second named scenario: an
// assignment whose RHS cannot satisfy the LHS's declared type under any
// equality mode reports TypeMismatch.
func Test_Analyze_assignmentTypeMismatch(t *testing.T) {
	res := analyze(t, `
		var x: int;
		x = "hello";
	`, false)
	found := diagsOf(res, diag.TypeMismatch)
	assert.NotEmpty(t, found)
}

// Test_Analyze_constructorOverloading covers the third named scenario: two
// constructors with distinct parameter-type tuples coexist, but two with the
// same tuple collide as AlreadyDefined.
func Test_Analyze_constructorOverloading(t *testing.T) {
	t.Run("distinct signatures do not collide", func(t *testing.T) {
		res := analyze(t, `
			class Account {
				this::constructor(balance: int) { }
				this::constructor(balance: string) { }
			}
		`, false)
		assert.Empty(t, diagsOf(res, diag.AlreadyDefined))
	})

	t.Run("identical signatures collide", func(t *testing.T) {
		res := analyze(t, `
			class Account {
				this::constructor(balance: int) { }
				this::constructor(balance: int) { }
			}
		`, false)
		assert.NotEmpty(t, diagsOf(res, diag.AlreadyDefined))
	})
}

// Test_Analyze_privateAccessAcrossClasses covers the fourth named scenario:
// a private member is rejected from outside its declaring class but allowed
// from within it.
func Test_Analyze_privateAccessAcrossClasses(t *testing.T) {
	t.Run("access from outside the class is rejected", func(t *testing.T) {
		res := analyze(t, `
			class Account {
				private var secret: int = 0;
			}
			var acct: Account = new Account();
			acct.secret;
		`, false)
		assert.NotEmpty(t, diagsOf(res, diag.Modifier))
	})

	t.Run("access from within the declaring class is allowed", func(t *testing.T) {
		res := analyze(t, `
			class Account {
				private var secret: int = 0;
				function : int getSecret() {
					return this.secret;
				}
			}
		`, false)
		assert.Empty(t, diagsOf(res, diag.Modifier))
	})
}

// Test_Analyze_strayBreak covers the fifth named scenario: a break outside
// any enclosing loop is a misplaced statement.
func Test_Analyze_strayBreak(t *testing.T) {
	res := analyze(t, `break;`, false)
	assert.NotEmpty(t, diagsOf(res, diag.StatementMisplacement))
}

func Test_Analyze_breakInsideLoopIsFine(t *testing.T) {
	res := analyze(t, `while (true) { break; }`, false)
	assert.Empty(t, diagsOf(res, diag.StatementMisplacement))
}

// Test_Analyze_arrayOverIndex covers the sixth named scenario: indexing a
// value with no further array dimension reports NoSuchArrayDimension.
func Test_Analyze_arrayOverIndex(t *testing.T) {
	res := analyze(t, `
		var x: int;
		x[0];
	`, false)
	assert.NotEmpty(t, diagsOf(res, diag.NoSuchArrayDimension))
}

func Test_Analyze_arrayIndexingWithinDeclaredDimensionIsFine(t *testing.T) {
	res := analyze(t, `
		var xs: int[];
		xs[0];
	`, false)
	assert.Empty(t, diagsOf(res, diag.NoSuchArrayDimension))
}

func Test_Analyze_redeclarationInSameScopeIsAlreadyDefined(t *testing.T) {
	res := analyze(t, `
		var x: int;
		var x: string;
	`, false)
	assert.NotEmpty(t, diagsOf(res, diag.AlreadyDefined))
}

// Test_Analyze_redeclarationVisibleFromEnclosingScopeIsAlsoAlreadyDefined
// documents that redeclaration checks walk the full enclosing-scope chain,
// not just the current scope: shadowing an outer name is rejected the same
// way as redeclaring directly in the same scope.
func Test_Analyze_redeclarationVisibleFromEnclosingScopeIsAlsoAlreadyDefined(t *testing.T) {
	res := analyze(t, `
		var x: int;
		if (true) {
			var x: string;
		}
	`, false)
	assert.NotEmpty(t, diagsOf(res, diag.AlreadyDefined))
}

func Test_Analyze_distinctNamesInSiblingScopesDoNotCollide(t *testing.T) {
	res := analyze(t, `
		if (true) {
			var x: int;
		}
		if (true) {
			var x: string;
		}
	`, false)
	assert.Empty(t, diagsOf(res, diag.AlreadyDefined))
}

func Test_Analyze_undeclaredIdentifierIsNotDefined(t *testing.T) {
	res := analyze(t, `x = 5;`, false)
	assert.NotEmpty(t, diagsOf(res, diag.NotDefined))
}

func Test_Analyze_lenientModeStillRejectsMismatchedNumericArgument(t *testing.T) {
	res := analyze(t, `
		function : void take(n: long) { }
		var s: short;
		take(s);
	`, false)
	assert.NotEmpty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_lenientModeAcceptsDoubleFloatInterchangeOnAssignment(t *testing.T) {
	res := analyze(t, `
		var wide: double;
		var narrow: float;
		wide = narrow;
	`, false)
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_strictModeRejectsWideningOnAssignment(t *testing.T) {
	res := analyze(t, `
		var wide: long;
		var narrow: short;
		wide = narrow;
	`, true)
	assert.NotEmpty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_enumMixingExplicitAndOmittedValuesResolves(t *testing.T) {
	res := analyze(t, `
		enum Suit {
			Hearts,
			Spades : 5,
			Clubs
		}
		var s: int = Suit->Clubs;
	`, false)
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
	assert.Empty(t, diagsOf(res, diag.NotDefined))
}

func Test_Analyze_checkConstructStatementOpensAScopePerArm(t *testing.T) {
	res := analyze(t, `
		var status: int = 1;
		check (status) is 1 {
			var inArm: int = 1;
		} is 2 {
			var inArm: int = 2;
		}
	`, false)
	assert.Empty(t, res.Diagnostics.Diagnostics)
}

func Test_Analyze_singleCharLiteralIsScalarChar(t *testing.T) {
	res := analyze(t, `var c: char = 'a';`, false)
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_multiCharLiteralIsACharArray(t *testing.T) {
	res := analyze(t, `var cs: char[] = 'abc';`, false)
	assert.Empty(t, diagsOf(res, diag.TypeMismatch))
}

func Test_Analyze_singleCharLiteralDoesNotSatisfyACharArray(t *testing.T) {
	res := analyze(t, `var cs: char[] = 'a';`, false)
	assert.NotEmpty(t, diagsOf(res, diag.TypeMismatch))
}
