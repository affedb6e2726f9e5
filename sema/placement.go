package sema

import (
	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/symbols"
)

func (a *Analyzer) misplaced(n *ast.ParseNode, message string) {
	a.diagnostics.Add(diag.Diagnostic{
		Category: diag.StatementMisplacement,
		Message:  message,
		Line:     n.Line,
		Column:   n.Column,
	})
}

// checkPlacementClass enforces that classes appear only at Main scope.
func (a *Analyzer) checkPlacementClass(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if scope.Kind != symbols.Main {
		a.misplaced(n, "a class may only be declared at the top level")
	}
}

// checkPlacementEnum enforces that enums appear only at Main scope.
func (a *Analyzer) checkPlacementEnum(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if scope.Kind != symbols.Main {
		a.misplaced(n, "an enum may only be declared at the top level")
	}
}

// checkPlacementInclude enforces that includes appear only at Main scope.
func (a *Analyzer) checkPlacementInclude(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if scope.Kind != symbols.Main {
		a.misplaced(n, "an include may only appear at the top level")
	}
}

// checkPlacementFunction enforces that functions appear only at Main or
// Class scope.
func (a *Analyzer) checkPlacementFunction(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if scope.Kind != symbols.Main && scope.Kind != symbols.Class {
		a.misplaced(n, "a function may only be declared at the top level or inside a class")
	}
}

// checkPlacementConstructor enforces that constructors appear only at
// Class scope.
func (a *Analyzer) checkPlacementConstructor(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if scope.Kind != symbols.Class {
		a.misplaced(n, "a constructor may only be declared inside a class")
	}
}

// checkPlacementVarDecl forbids var/const directly inside an enum body.
func (a *Analyzer) checkPlacementVarDecl(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if scope.Kind == symbols.Enum {
		a.misplaced(n, "a variable may not be declared inside an enum")
	}
}

// checkElseAdjacency enforces that "else if"/"else" immediately follow an
// "if" or "else if" sibling in the same statement list.
func (a *Analyzer) checkElseAdjacency(n *ast.ParseNode, ctx walkCtx) {
	if !ctx.hasPrevSibling || (ctx.prevSiblingKind != ast.If && ctx.prevSiblingKind != ast.ElseIf) {
		a.misplaced(n, n.Kind.String()+" must immediately follow an \"if\" or \"else if\"")
	}
}

// checkTryCatchAdjacency enforces that "try" is immediately followed by a
// "catch" sibling and "catch" immediately follows a "try" sibling. walkBlock
// threads both the previous and next sibling kind, so each half of the
// adjacency is checked from the node it's visited on.
func (a *Analyzer) checkTryCatchAdjacency(n *ast.ParseNode, scope *symbols.SymbolTable, ctx walkCtx) {
	if n.Kind == ast.Try {
		if !ctx.hasNextSibling || ctx.nextSiblingKind != ast.Catch {
			a.misplaced(n, "\"try\" must be immediately followed by a \"catch\"")
		}
	}
	if n.Kind == ast.Catch {
		if !ctx.hasPrevSibling || ctx.prevSiblingKind != ast.Try {
			a.misplaced(n, "\"catch\" must immediately follow a \"try\"")
		}
	}
}
