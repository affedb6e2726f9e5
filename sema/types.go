package sema

import (
	"fmt"

	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/symbols"
	"github.com/dekarrin/spacelang/types"
)

var arithmeticKind = map[ast.Kind]bool{
	ast.Add: true, ast.Subtract: true, ast.Multiply: true, ast.Divide: true, ast.Modulo: true,
}

// checkType evaluates an expression subtree to its VarType, emitting
// diagnostics for any mismatch found along the way. It returns a
// types.VarType with Base == types.Invalid when the expression's type
// could not be determined (e.g. after a NotDefined), so callers can skip
// further comparison against an already-reported failure.
func (a *Analyzer) checkType(n *ast.ParseNode, scope *symbols.SymbolTable) types.VarType {
	if n == nil {
		return types.VarType{}
	}

	switch n.Kind {
	case ast.IntLiteral:
		return types.Scalar(types.Integer)
	case ast.FloatLiteral:
		return types.Scalar(types.Double)
	case ast.StringLiteral:
		return types.Scalar(types.String)
	case ast.CharLiteral:
		runeCount := len([]rune(charLiteralContent(n.Value)))
		if runeCount > 1 {
			return types.Array(types.Char, 1)
		}
		return types.Scalar(types.Char)
	case ast.BoolLiteral:
		return types.Scalar(types.Boolean)
	case ast.NullLiteral:
		return types.Scalar(types.Null)

	case ast.Identifier:
		return a.applyArrayAccess(a.checkIdentifier(n, scope), n, scope)

	case ast.This:
		class := scope.EnclosingClass()
		if class == nil {
			return types.VarType{Base: types.Invalid}
		}
		return types.Class(class.Name)

	case ast.MemberAccess, ast.ClassAccess:
		return a.checkAccessChain(n, scope)

	case ast.FunctionCall:
		return a.applyArrayAccess(a.checkFunctionCall(n, scope, normalCall), n, scope)

	case ast.ConstructorCall:
		return a.checkConstructorCall(n, scope, constructorCall)

	case ast.ArrayAssignment:
		return a.checkArrayLiteral(n, scope)

	case ast.IncDec:
		return a.checkType(n.Left, scope)

	case ast.Assignment:
		a.checkAssignment(n, scope)
		return a.checkType(n.Left, scope)

	default:
		if arithmeticKind[n.Kind] {
			return a.checkArithmetic(n, scope)
		}
	}

	return types.VarType{Base: types.Invalid}
}

// charLiteralContent strips the surrounding single quotes the lexer leaves
// on a CharLiteral token's text, so the rune count reflects the character
// data itself rather than the quote delimiters.
func charLiteralContent(raw string) string {
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return raw[1 : len(raw)-1]
	}
	return raw
}

func (a *Analyzer) checkIdentifier(n *ast.ParseNode, scope *symbols.SymbolTable) types.VarType {
	entry, ok := scope.Lookup(n.Value, false)
	if !ok {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.NotDefined,
			Message:  "\"" + n.Value + "\" is not defined",
			Line:     n.Line,
			Column:   n.Column,
		})
		return types.VarType{Base: types.Invalid}
	}
	return entry.DeclaredType
}

// checkArithmetic requires both operands of a binary term operator to
// agree under the configured equality mode and yields the wider of the two
// as the expression's type.
func (a *Analyzer) checkArithmetic(n *ast.ParseNode, scope *symbols.SymbolTable) types.VarType {
	left := a.checkType(n.Left, scope)
	right := a.checkType(n.Right, scope)

	if left.Base == types.Invalid || right.Base == types.Invalid {
		return types.VarType{Base: types.Invalid}
	}
	if left.Base == types.External || right.Base == types.External {
		return types.Scalar(types.External)
	}

	if !left.Equal(right, a.strictByDefault) {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.TypeMismatch,
			Message:  fmt.Sprintf("expected %s, got %s", left, right),
			Line:     n.Line,
			Column:   n.Column,
		})
		return left
	}

	if numericRankOf(right) > numericRankOf(left) {
		return right
	}
	return left
}

func numericRankOf(v types.VarType) int {
	switch v.Base {
	case types.Short:
		return 1
	case types.Integer:
		return 2
	case types.Long:
		return 3
	case types.Float:
		return 4
	case types.Double:
		return 5
	default:
		return 0
	}
}

// checkAssignment checks a "lhs = rhs" (or compound-assign) node: the RHS
// must satisfy the LHS's declared type under the configured equality mode.
func (a *Analyzer) checkAssignment(n *ast.ParseNode, scope *symbols.SymbolTable) {
	lhsType := a.checkType(n.Left, scope)
	rhsType := a.checkType(n.Right, scope)

	if lhsType.Base == types.Invalid || rhsType.Base == types.Invalid {
		return
	}
	if lhsType.Constant {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.TypeMismatch,
			Message:  "cannot assign to a constant",
			Line:     n.Line,
			Column:   n.Column,
		})
		return
	}
	if !lhsType.Equal(rhsType, a.strictByDefault) {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.TypeMismatch,
			Message:  "expected " + lhsType.Name() + ", got " + rhsType.Name(),
			Line:     n.Right.Line,
			Column:   n.Right.Column,
		})
	}
}

// applyArrayAccess walks the chain of ARRAY_ACCESS nodes hanging off
// accessed.Left, if any, decrementing t's dimension by one per "[...]"
// layer and type-checking each layer's index expression along the way.
// Indexing past a scalar's last dimension emits NoSuchArrayDimension and
// yields Invalid; a node with no such chain (accessed.Left == nil or not
// an ARRAY_ACCESS node) returns t unchanged.
func (a *Analyzer) applyArrayAccess(t types.VarType, accessed *ast.ParseNode, scope *symbols.SymbolTable) types.VarType {
	if accessed.Left == nil || accessed.Left.Kind != ast.ArrayAccess || t.Base == types.Invalid {
		return t
	}

	for dim := accessed.Left; dim != nil; dim = dim.Right {
		a.checkType(dim.Left, scope)
		if t.Dimension < 1 {
			a.diagnostics.Add(diag.Diagnostic{
				Category: diag.NoSuchArrayDimension,
				Message:  "\"" + t.Name() + "\" has no further array dimension to index",
				Line:     accessed.Line,
				Column:   accessed.Column,
			})
			return types.VarType{Base: types.Invalid}
		}
		t.Dimension--
	}
	return t
}

func (a *Analyzer) checkArrayLiteral(n *ast.ParseNode, scope *symbols.SymbolTable) types.VarType {
	var elemType types.VarType
	for i, elem := range n.Details {
		t := a.checkType(elem, scope)
		if i == 0 {
			elemType = t
		}
	}
	elemType.Dimension++
	return elemType
}
