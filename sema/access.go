package sema

import (
	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/symbols"
	"github.com/dekarrin/spacelang/types"
)

// checkAccessChain evaluates a left-deep MEM_ACC/CLASS_ACC tree to its
// final member's type, validating each accessor along the way.
func (a *Analyzer) checkAccessChain(n *ast.ParseNode, scope *symbols.SymbolTable) types.VarType {
	t, _, _, _ := a.resolveAccess(n, scope)
	return t
}

// resolveAccess is the single recursive step behind checkAccessChain: it
// returns the node's type, the symbol table to resolve a further "." or
// "->" segment against (nil if the type carries no member scope), whether
// the node names a class/enum directly rather than an instance of one (so
// the next accessor must be "->", not "."), and whether resolution bottomed
// out at an External entry, which short-circuits all further checking.
func (a *Analyzer) resolveAccess(n *ast.ParseNode, scope *symbols.SymbolTable) (t types.VarType, table *symbols.SymbolTable, isDirectRef bool, external bool) {
	switch n.Kind {
	case ast.Identifier:
		entry, ok := scope.Lookup(n.Value, false)
		if !ok {
			a.diagnostics.Add(diag.Diagnostic{
				Category: diag.NotDefined,
				Message:  "\"" + n.Value + "\" is not defined",
				Line:     n.Line,
				Column:   n.Column,
			})
			return types.VarType{Base: types.Invalid}, nil, false, false
		}
		if entry.Kind == symbols.Class || entry.Kind == symbols.Enum {
			return entry.DeclaredType, entry.Reference, true, false
		}
		t := a.applyArrayAccess(entry.DeclaredType, n, scope)
		return a.typeToReceiver(t, scope)

	case ast.This:
		class := scope.EnclosingClass()
		if class == nil {
			return types.VarType{Base: types.Invalid}, nil, false, false
		}
		return types.Class(class.Name), class, false, false

	case ast.FunctionCall:
		t := a.applyArrayAccess(a.checkFunctionCall(n, scope, normalCall), n, scope)
		return a.typeToReceiver(t, scope)

	case ast.ConstructorCall:
		t := a.checkConstructorCall(n, scope, constructorCall)
		return a.typeToReceiver(t, scope)

	case ast.MemberAccess, ast.ClassAccess:
		return a.resolveAccessSegment(n, scope)

	default:
		t := a.checkType(n, scope)
		return a.typeToReceiver(t, scope)
	}
}

// typeToReceiver resolves a value type to the member-lookup table it
// carries, if any: a class-reference type resolves to that class's table;
// anything else (primitives, arrays of primitives) carries no members.
func (a *Analyzer) typeToReceiver(t types.VarType, scope *symbols.SymbolTable) (types.VarType, *symbols.SymbolTable, bool, bool) {
	if t.Base == types.External {
		return t, nil, false, true
	}
	if t.Base == types.ClassRef && !t.IsArray() {
		return t, a.resolveClassTable(scope, t.ClassRef), false, false
	}
	return t, nil, false, false
}

// resolveClassTable finds the symbol table owned by a declared class or
// enum name, searching outward from scope the same way an identifier
// lookup does.
func (a *Analyzer) resolveClassTable(scope *symbols.SymbolTable, name string) *symbols.SymbolTable {
	entry, ok := scope.Lookup(name, false)
	if !ok || (entry.Kind != symbols.Class && entry.Kind != symbols.Enum) {
		return nil
	}
	return entry.Reference
}

// resolveAccessSegment validates and resolves one "." or "->" link in a
// chain: the accessor must agree with whether the receiver names a
// class/enum directly (requiring "->") or an instance of one (requiring
// ".").
func (a *Analyzer) resolveAccessSegment(n *ast.ParseNode, scope *symbols.SymbolTable) (types.VarType, *symbols.SymbolTable, bool, bool) {
	_, leftTable, leftIsDirect, leftExternal := a.resolveAccess(n.Left, scope)
	if leftExternal {
		a.externalAccess = append(a.externalAccess, n)
		return types.Scalar(types.External), nil, false, true
	}

	usedClassAccessor := n.Value == "->"
	if usedClassAccessor != leftIsDirect {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.WrongAccessor,
			Message:  "wrong accessor: use \"->\" for class-scoped access and \".\" for instance members",
			Line:     n.Line,
			Column:   n.Column,
		})
	}

	if leftTable == nil {
		a.checkType(n.Right, scope)
		return types.VarType{Base: types.Invalid}, nil, false, false
	}

	memberName := n.Right.Value
	entry, ok := leftTable.Lookup(memberName, true)
	if !ok {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.NotDefined,
			Message:  "\"" + memberName + "\" is not a member of \"" + leftTable.Name + "\"",
			Line:     n.Right.Line,
			Column:   n.Right.Column,
		})
		return types.VarType{Base: types.Invalid}, nil, false, false
	}

	a.checkMemberVisibility(entry, leftTable, scope, n.Right)

	if n.Right.Kind == ast.FunctionCall {
		a.checkArguments(n.Right, entry.Reference, false, scope)
	}

	if entry.Kind == symbols.Class || entry.Kind == symbols.Enum {
		return entry.DeclaredType, entry.Reference, true, false
	}
	t := a.applyArrayAccess(entry.DeclaredType, n.Right, scope)
	return a.typeToReceiver(t, scope)
}
