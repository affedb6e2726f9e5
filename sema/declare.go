package sema

import (
	"strings"

	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/symbols"
	"github.com/dekarrin/spacelang/types"
)

var baseKindSpellings = map[string]types.BaseKind{
	"int":     types.Integer,
	"long":    types.Long,
	"short":   types.Short,
	"double":  types.Double,
	"float":   types.Float,
	"char":    types.Char,
	"string":  types.String,
	"boolean": types.Boolean,
	"void":    types.Void,
	"custom":  types.Custom,
	"external": types.External,
}

// resolveTypeAnnotation turns the textual spelling buildTypeAnnotation
// produced ("int", "int[]", "Account[][]") into a types.VarType. A name
// not found among the base-kind spellings is treated as a class reference.
func resolveTypeAnnotation(spelling string) types.VarType {
	dim := 0
	name := spelling
	for strings.HasSuffix(name, "[]") {
		dim++
		name = name[:len(name)-2]
	}

	if base, ok := baseKindSpellings[name]; ok {
		return types.VarType{Base: base, Dimension: dim}
	}
	return types.VarType{Base: types.ClassRef, ClassRef: name, Dimension: dim}
}

// typeOf reads the type annotation stored in details[0] of an
// Identifier/Parameter node, per the tree invariant that an identifier
// decorated with a type carries it there.
func typeOf(n *ast.ParseNode) types.VarType {
	if n == nil || len(n.Details) == 0 {
		return types.VarType{}
	}
	return resolveTypeAnnotation(n.Details[0].Value)
}

// checkRedeclaration reports AlreadyDefined if name is visible (in the
// current scope's symbols/params, or any enclosing scope) and returns
// whether the declaration should proceed.
func (a *Analyzer) checkRedeclaration(name string, scope *symbols.SymbolTable, line, column int) bool {
	if _, found := scope.Lookup(name, false); found {
		a.diagnostics.Add(diag.Diagnostic{
			Category: diag.AlreadyDefined,
			Message:  "\"" + name + "\" is already defined in this scope or an enclosing one",
			Line:     line,
			Column:   column,
		})
		return false
	}
	return true
}

// declareVar declares a var/const entry (any of the four shape variants)
// in scope, after checking the initializer's type against the declared
// type.
func (a *Analyzer) declareVar(n *ast.ParseNode, scope *symbols.SymbolTable) {
	nameNode := n.Left
	if nameNode == nil {
		return
	}
	declared := typeOf(nameNode)
	declared.Constant = isConstKind(n.Kind)

	if n.Right != nil {
		got := a.checkType(n.Right, scope)
		if got.Base != types.Invalid && !declared.Equal(got, a.strictByDefault) {
			a.diagnostics.Add(diag.Diagnostic{
				Category: diag.TypeMismatch,
				Message:  "expected " + declared.Name() + ", got " + got.Name(),
				Line:     n.Right.Line,
				Column:   n.Right.Column,
			})
		}
	}

	if !a.checkRedeclaration(nameNode.Value, scope, nameNode.Line, nameNode.Column) {
		return
	}

	scope.Declare(symbols.SymbolEntry{
		Name:         nameNode.Value,
		DeclaredType: declared,
		Visibility:   visibilityOf(n),
		Kind:         symbols.Variable,
		Line:         nameNode.Line,
		Column:       nameNode.Column,
	})
}

func isConstKind(k ast.Kind) bool {
	switch k {
	case ast.Const, ast.ConstArray, ast.ConstConditional, ast.ConstInstance:
		return true
	default:
		return false
	}
}

// declareParam declares a single parameter/catch-binding entry directly
// into scope's ordered parameter list.
func (a *Analyzer) declareParam(n *ast.ParseNode, scope *symbols.SymbolTable, kind symbols.ScopeKind) {
	if !a.checkRedeclaration(n.Value, scope, n.Line, n.Column) {
		return
	}
	scope.AddParam(symbols.SymbolEntry{
		Name:         n.Value,
		DeclaredType: typeOf(n),
		Visibility:   symbols.PackageGlobal,
		Kind:         kind,
		Line:         n.Line,
		Column:       n.Column,
	})
}

// declareClass opens a Class scope, declares it in the parent table, and
// walks the class body into the new scope.
func (a *Analyzer) declareClass(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if !a.checkRedeclaration(n.Value, scope, n.Line, n.Column) {
		return
	}

	classTable := symbols.New(n.Value, symbols.Class, scope, n.Line, n.Column)
	scope.Declare(symbols.SymbolEntry{
		Name:       n.Value,
		Visibility: visibilityOf(n),
		Kind:       symbols.Class,
		Reference:  classTable,
		Line:       n.Line,
		Column:     n.Column,
	})

	a.walkBlock(n.Right.Details, classTable, walkCtx{})
}

// declareFunction opens a Function scope, declares its parameters, and
// walks the body into it.
func (a *Analyzer) declareFunction(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if !a.checkRedeclaration(n.Value, scope, n.Line, n.Column) {
		return
	}

	fnTable := symbols.New(n.Value, symbols.Function, scope, n.Line, n.Column)

	var retType types.VarType
	for _, d := range n.Details {
		if d.Kind == ast.ReturnType {
			retType = resolveTypeAnnotation(d.Value)
			continue
		}
		if d.Kind == ast.Parameter {
			a.declareParam(d, fnTable, symbols.Function)
		}
	}

	scope.Declare(symbols.SymbolEntry{
		Name:         n.Value,
		DeclaredType: retType,
		Visibility:   visibilityOf(n),
		Kind:         symbols.Function,
		Reference:    fnTable,
		Line:         n.Line,
		Column:       n.Column,
	})

	a.walkBlock(n.Right.Details, fnTable, walkCtx{})
}

// declareConstructor opens a Constructor scope tagged distinctly from an
// ordinary function scope, checks it against existing constructors for an
// overload collision, and walks the body.
func (a *Analyzer) declareConstructor(n *ast.ParseNode, scope *symbols.SymbolTable) {
	ctorTable := symbols.New("constructor", symbols.Constructor, scope, n.Line, n.Column)
	for _, param := range n.Details {
		a.declareParam(param, ctorTable, symbols.Constructor)
	}

	a.checkConstructorOverload(n, scope, ctorTable)

	entryName := "constructor#" + ctorSignature(ctorTable)
	scope.Declare(symbols.SymbolEntry{
		Name:       entryName,
		Visibility: visibilityOf(n),
		Kind:       symbols.Constructor,
		Reference:  ctorTable,
		Line:       n.Line,
		Column:     n.Column,
	})

	a.walkBlock(n.Right.Details, ctorTable, walkCtx{})
}

// declareEnum opens an Enum scope and declares each enumerator as a
// constant int. The loop numbers enumerators continue-from-explicit-value-
// plus-1, but a SymbolEntry has no field for a value, so the computed
// numbers are not recorded anywhere.
func (a *Analyzer) declareEnum(n *ast.ParseNode, scope *symbols.SymbolTable) {
	if !a.checkRedeclaration(n.Value, scope, n.Line, n.Column) {
		return
	}

	enumTable := symbols.New(n.Value, symbols.Enum, scope, n.Line, n.Column)
	scope.Declare(symbols.SymbolEntry{
		Name:      n.Value,
		Kind:      symbols.Enum,
		Reference: enumTable,
		Line:      n.Line,
		Column:    n.Column,
	})

	next := 0
	for _, enumerator := range n.Details {
		value := next
		if enumerator.Right != nil {
			if v, ok := parseIntLiteral(enumerator.Right.Value); ok {
				value = v
			}
		}
		next = value + 1

		if !a.checkRedeclaration(enumerator.Value, enumTable, enumerator.Line, enumerator.Column) {
			continue
		}
		enumTable.Declare(symbols.SymbolEntry{
			Name:         enumerator.Value,
			DeclaredType: types.Scalar(types.Integer).AsConstant(),
			Kind:         symbols.Enumerator,
			Line:         enumerator.Line,
			Column:       enumerator.Column,
		})
	}
}

func parseIntLiteral(s string) (int, bool) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	n := 0
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

// visibilityOf reads a declaration's leading modifier, defaulting to
// PackageGlobal when none is present.
func visibilityOf(n *ast.ParseNode) symbols.Visibility {
	mod := modifierOf(n)
	if mod == nil {
		return symbols.PackageGlobal
	}
	switch mod.Value {
	case "global":
		return symbols.Global
	case "secure":
		return symbols.Secure
	case "private":
		return symbols.Private
	case "export":
		return symbols.Global
	default:
		return symbols.PackageGlobal
	}
}

// modifierOf finds the Modifier node attached to a declaration, regardless
// of which slot the builder put it in (var/const details; enum/class/
// function/constructor left).
func modifierOf(n *ast.ParseNode) *ast.ParseNode {
	if n.Left != nil && n.Left.Kind == ast.Modifier {
		return n.Left
	}
	for _, d := range n.Details {
		if d != nil && d.Kind == ast.Modifier {
			return d
		}
	}
	return nil
}
