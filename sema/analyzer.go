// Package sema walks a parse tree built by package parser, populating a
// scope-structured symbol-table forest and reporting diagnostics as data
// rather than as control flow: a full run collects every recoverable
// finding into a diag.Bag instead of stopping at the first one.
package sema

import (
	"fmt"

	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/symbols"
	"github.com/dekarrin/spacelang/types"
)

// Result is everything one Analyze call produces: the populated Main
// table, the diagnostics collected along the way, and the external-access
// list (parse nodes reached through an External-typed receiver).
type Result struct {
	Main             *symbols.SymbolTable
	Diagnostics      *diag.Bag
	ExternalAccesses []*ast.ParseNode
}

// Analyzer holds the mutable state threaded through one tree walk:
// synthetic-name counters for anonymous scopes and the accumulating
// external-access list. It is not safe for concurrent use; one Analyzer
// serves one Analyze call.
type Analyzer struct {
	strictByDefault bool
	diagnostics     *diag.Bag
	externalAccess  []*ast.ParseNode
	anonCounters    map[*symbols.SymbolTable]map[string]int
}

// New builds an Analyzer. strictByDefault selects strict or lenient type
// equality when a construct does not request a mode explicitly (constructor
// overload checks and constructor calls are always strict, function-call
// arguments are always compared leniently; initializers, assignments and
// arithmetic use this default).
func New(strictByDefault bool) *Analyzer {
	return &Analyzer{
		strictByDefault: strictByDefault,
		diagnostics:     diag.NewBag(),
		anonCounters:    make(map[*symbols.SymbolTable]map[string]int),
	}
}

// walkCtx carries the information a statement handler needs beyond "what
// scope am I in": the kind of the immediately preceding sibling (for
// else-if/else and try/catch adjacency checks), and whether the current
// position is lexically inside a loop (for break/continue placement)
// without having crossed a function or class boundary to get there.
type walkCtx struct {
	prevSiblingKind ast.Kind
	hasPrevSibling  bool
	nextSiblingKind ast.Kind
	hasNextSibling  bool
	inLoop          bool
}

// Analyze builds the Main table and walks root's statement list into it.
func (a *Analyzer) Analyze(root *ast.ParseNode) Result {
	main := symbols.New("Main", symbols.Main, nil, root.Line, root.Column)

	a.walkBlock(root.Details, main, walkCtx{})

	return Result{
		Main:             main,
		Diagnostics:      a.diagnostics,
		ExternalAccesses: a.externalAccess,
	}
}

// walkBlock walks an ordered statement list, threading sibling-adjacency
// context from one statement to the next.
func (a *Analyzer) walkBlock(stmts []*ast.ParseNode, scope *symbols.SymbolTable, ctx walkCtx) {
	prevKind := ast.Invalid
	hasPrev := false
	for i, stmt := range stmts {
		stepCtx := ctx
		stepCtx.prevSiblingKind = prevKind
		stepCtx.hasPrevSibling = hasPrev
		stepCtx.hasNextSibling = i+1 < len(stmts)
		if stepCtx.hasNextSibling {
			stepCtx.nextSiblingKind = stmts[i+1].Kind
		} else {
			stepCtx.nextSiblingKind = ast.Invalid
		}
		a.walkStatement(stmt, scope, stepCtx)
		prevKind = stmt.Kind
		hasPrev = true
	}
}

// walkStatement dispatches one statement node to its handler. Scope
// construction happens inline in each handler that introduces a scope,
// since the shape of the new table depends on the construct.
func (a *Analyzer) walkStatement(n *ast.ParseNode, scope *symbols.SymbolTable, ctx walkCtx) {
	switch n.Kind {
	case ast.Var, ast.Const, ast.VarArray, ast.ConstArray, ast.VarConditional, ast.ConstConditional, ast.VarInstance, ast.ConstInstance:
		a.checkPlacementVarDecl(n, scope)
		a.declareVar(n, scope)

	case ast.Class:
		a.checkPlacementClass(n, scope)
		a.declareClass(n, scope)

	case ast.Enum:
		a.checkPlacementEnum(n, scope)
		a.declareEnum(n, scope)

	case ast.Include:
		a.checkPlacementInclude(n, scope)
		a.externalAccess = append(a.externalAccess, n)

	case ast.Function:
		a.checkPlacementFunction(n, scope)
		a.declareFunction(n, scope)

	case ast.Constructor:
		a.checkPlacementConstructor(n, scope)
		a.declareConstructor(n, scope)

	case ast.If:
		child := a.openAnonymousScope(n, scope, symbols.If, "if")
		a.checkCondition(n.Left, scope)
		a.walkBlock(n.Right.Details, child, walkCtx{inLoop: ctx.inLoop})

	case ast.ElseIf:
		a.checkElseAdjacency(n, ctx)
		child := a.openAnonymousScope(n, scope, symbols.ElseIf, "else_if")
		a.checkCondition(n.Left, scope)
		a.walkBlock(n.Right.Details, child, walkCtx{inLoop: ctx.inLoop})

	case ast.Else:
		a.checkElseAdjacency(n, ctx)
		child := a.openAnonymousScope(n, scope, symbols.Else, "else")
		a.walkBlock(n.Right.Details, child, walkCtx{inLoop: ctx.inLoop})

	case ast.While:
		child := a.openAnonymousScope(n, scope, symbols.While, "while")
		a.checkCondition(n.Left, scope)
		a.walkBlock(n.Right.Details, child, walkCtx{inLoop: true})

	case ast.Do:
		child := a.openAnonymousScope(n, scope, symbols.Do, "do")
		a.checkCondition(n.Left, scope)
		a.walkBlock(n.Right.Details, child, walkCtx{inLoop: true})

	case ast.For:
		child := a.openAnonymousScope(n, scope, symbols.For, "for")
		if n.Left != nil {
			a.declareVar(n.Left, child)
		}
		if len(n.Details) > 0 {
			a.checkCondition(n.Details[0], child)
		}
		a.walkBlock(n.Right.Details, child, walkCtx{inLoop: true})

	case ast.Try:
		a.checkTryCatchAdjacency(n, scope, ctx)
		child := a.openAnonymousScope(n, scope, symbols.Try, "try")
		a.walkBlock(n.Right.Details, child, walkCtx{inLoop: ctx.inLoop})

	case ast.Catch:
		a.checkTryCatchAdjacency(n, scope, ctx)
		child := a.openAnonymousScope(n, scope, symbols.Catch, "catch")
		if len(n.Details) > 0 {
			a.declareParam(n.Details[0], child, symbols.Catch)
		}
		a.walkBlock(n.Right.Details, child, walkCtx{inLoop: ctx.inLoop})

	case ast.Check:
		a.checkType(n.Left, scope)
		for _, arm := range n.Details {
			child := a.openAnonymousScope(arm, scope, symbols.Is, "is")
			a.walkBlock(arm.Right.Details, child, walkCtx{inLoop: true})
		}

	case ast.Return:
		if n.Left != nil {
			a.checkType(n.Left, scope)
		}

	case ast.Break, ast.Continue:
		if !ctx.inLoop {
			a.diagnostics.Add(diag.Diagnostic{
				Category: diag.StatementMisplacement,
				Message:  fmt.Sprintf("%s outside of an enclosing loop", n.Kind),
				Line:     n.Line,
				Column:   n.Column,
			})
		}

	case ast.Assignment:
		a.checkAssignment(n, scope)

	default:
		// bare expression statement: function calls, increment/decrement.
		a.checkType(n, scope)
	}
}

// openAnonymousScope creates a child table for a construct that does not
// name itself, assigning it a synthetic name unique within parent: the
// first scope of a label keeps the bare label and later ones get a numeric
// suffix ("while", "while_2", "while_3", ...). Anonymous control-flow
// scopes are not declared as named entries in parent, since they are not
// referenceable by name.
func (a *Analyzer) openAnonymousScope(n *ast.ParseNode, parent *symbols.SymbolTable, kind symbols.ScopeKind, label string) *symbols.SymbolTable {
	counters, ok := a.anonCounters[parent]
	if !ok {
		counters = make(map[string]int)
		a.anonCounters[parent] = counters
	}
	counters[label]++
	name := label
	if counters[label] > 1 {
		name = fmt.Sprintf("%s_%d", label, counters[label])
	}
	return symbols.New(name, kind, parent, n.Line, n.Column)
}

// checkCondition verifies a chained condition: every relational leaf's
// operands must satisfy the arithmetic type requirements a binary operator
// imposes, and every non-relational leaf must be boolean-typed.
func (a *Analyzer) checkCondition(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.And, ast.Or:
		a.checkCondition(n.Left, scope)
		a.checkCondition(n.Right, scope)
	case ast.RelEqual, ast.RelNotEqual, ast.RelLess, ast.RelGreater, ast.RelLessEqual, ast.RelGreaterEqual:
		a.checkType(n.Left, scope)
		a.checkType(n.Right, scope)
	default:
		got := a.checkType(n, scope)
		if got.Base != types.Invalid && got.Base != types.Boolean && got.Base != types.External {
			a.diagnostics.Add(diag.Diagnostic{
				Category: diag.TypeMismatch,
				Message:  fmt.Sprintf("expected %s, got %s", types.Scalar(types.Boolean), got),
				Line:     n.Line,
				Column:   n.Column,
			})
		}
	}
}
