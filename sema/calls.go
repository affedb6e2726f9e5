package sema

import (
	"fmt"

	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/internal/util"
	"github.com/dekarrin/spacelang/symbols"
	"github.com/dekarrin/spacelang/types"
)

// callKind distinguishes the three call-check routines the original
// source folded into one flag-driven function: a normal function call
// checks arguments leniently, a constructor call from the language checks
// strictly, and a constructor-existence check shares the same constructor
// lookup without reporting WrongArgument of its own. Nothing in this
// package passes constructorCheckCall; overload.go compares constructor
// signatures directly.
type callKind int

const (
	normalCall callKind = iota
	constructorCall
	constructorCheckCall
)

// checkFunctionCall validates a FNC_CALL node against its resolved
// function-entry signature. The callee itself is resolved as a plain
// identifier lookup; a call on a chain ("a.b()") is checked by
// checkAccessChain, which delegates the final segment here.
func (a *Analyzer) checkFunctionCall(n *ast.ParseNode, scope *symbols.SymbolTable, kind callKind) types.VarType {
	entry, ok := scope.Lookup(n.Value, false)
	if !ok {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.NotDefined,
			Message:  "\"" + n.Value + "\" is not defined",
			Line:     n.Line,
			Column:   n.Column,
		})
		for _, arg := range n.Details {
			a.checkType(arg, scope)
		}
		return types.VarType{Base: types.Invalid}
	}

	if entry.Kind != symbols.Function {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.TypeMismatch,
			Message:  "expected function call, got non-function call",
			Line:     n.Line,
			Column:   n.Column,
		})
		return types.VarType{Base: types.Invalid}
	}

	a.checkArguments(n, entry.Reference, kind == constructorCall || kind == constructorCheckCall, scope)
	return entry.DeclaredType
}

// checkConstructorCall validates a CONSTRUCTOR_CALL ("new Foo(...)") node:
// the named class must exist and have a matching constructor, strictly.
func (a *Analyzer) checkConstructorCall(n *ast.ParseNode, scope *symbols.SymbolTable, kind callKind) types.VarType {
	classEntry, ok := scope.Lookup(n.Value, false)
	if !ok || classEntry.Kind != symbols.Class {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.NotDefined,
			Message:  "\"" + n.Value + "\" is not a defined class",
			Line:     n.Line,
			Column:   n.Column,
		})
		for _, arg := range n.Details {
			a.checkType(arg, scope)
		}
		return types.VarType{Base: types.Invalid}
	}

	argc := len(n.Details)
	matched := a.findMatchingConstructor(classEntry.Reference, n, scope, argc)
	if !matched && kind != constructorCheckCall {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.WrongArgument,
			Message:  fmt.Sprintf("no constructor of %q matches %d argument(s)", n.Value, argc),
			Line:     n.Line,
			Column:   n.Column,
		})
	}

	return types.Class(n.Value)
}

// findMatchingConstructor looks for a constructor-parameter-list entry in
// classTable whose arity matches argc and whose parameter types are
// strictly equal, in order, to the call's argument types; ties prefer the
// first strict match.
func (a *Analyzer) findMatchingConstructor(classTable *symbols.SymbolTable, call *ast.ParseNode, scope *symbols.SymbolTable, argc int) bool {
	if classTable == nil {
		return false
	}

	argTypes := make([]types.VarType, len(call.Details))
	for i, arg := range call.Details {
		argTypes[i] = a.checkType(arg, scope)
	}

	for _, entry := range classTable.Symbols {
		if entry.Kind != symbols.Constructor || entry.Reference == nil {
			continue
		}
		params := entry.Reference.Params
		if len(params) != argc {
			continue
		}
		allMatch := true
		for i, p := range params {
			if !p.DeclaredType.EqualStrict(argTypes[i]) {
				allMatch = false
				break
			}
		}
		if allMatch {
			return true
		}
	}
	return false
}

// checkArguments compares a call's argument expressions to the callee's
// ordered parameter list: count first (WrongArgument), then per-argument
// type agreement under strict (constructor) or lenient (function) mode.
func (a *Analyzer) checkArguments(call *ast.ParseNode, callee *symbols.SymbolTable, strict bool, scope *symbols.SymbolTable) {
	if callee == nil {
		for _, arg := range call.Details {
			a.checkType(arg, scope)
		}
		return
	}

	if len(call.Details) != len(callee.Params) {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.WrongArgument,
			Message:  fmt.Sprintf("expected %d argument(s), got %d", len(callee.Params), len(call.Details)),
			Line:     call.Line,
			Column:   call.Column,
		})
	}

	n := len(call.Details)
	if len(callee.Params) < n {
		n = len(callee.Params)
	}
	for i := 0; i < n; i++ {
		argType := a.checkType(call.Details[i], scope)
		paramType := callee.Params[i].DeclaredType
		if argType.Base == types.Invalid {
			continue
		}
		ok := paramType.EqualLenient(argType)
		if strict {
			ok = paramType.EqualStrict(argType)
		}
		if !ok {
			expected := paramType.Name()
			if !strict {
				if targets := paramType.Base.WideningTargets(); len(targets) > 0 {
					expected = util.MakeTextList(targets)
				}
			}
			a.diagnostics.Add(diag.Diagnostic{
				Category: diag.TypeMismatch,
				Message:  "expected " + expected + ", got " + argType.Name(),
				Line:     call.Details[i].Line,
				Column:   call.Details[i].Column,
			})
		}
	}
}
