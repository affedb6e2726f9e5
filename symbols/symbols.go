// Package symbols implements the scope-structured symbol tables sema
// builds while walking a parse tree: a parent-pointer tree of tables, each
// owning an ordered parameter list (for scopes that take one) and an
// unordered map of declared names. The ownership shape follows the
// teacher's server/dao/inmem store-of-repositories pattern, generalized
// from "a store owns repositories" to "a table owns child tables".
package symbols

import "github.com/dekarrin/spacelang/types"

// Visibility is the access modifier attached to a class member. It is a
// closed enum ordered from widest to narrowest access.
type Visibility int

const (
	PackageGlobal Visibility = iota
	Global
	Secure
	Private
)

var visibilityNames = map[Visibility]string{
	PackageGlobal: "PACKAGE_GLOBAL",
	Global:        "GLOBAL",
	Secure:        "SECURE",
	Private:       "PRIVATE",
}

func (v Visibility) String() string {
	if s, ok := visibilityNames[v]; ok {
		return s
	}
	return "UNKNOWN_VISIBILITY"
}

// ScopeKind identifies what kind of construct a SymbolTable was opened for.
// It is a closed enum; every construct that introduces a scope in the
// grammar has a ScopeKind here.
type ScopeKind int

const (
	Main ScopeKind = iota
	Class
	Function
	Constructor
	Enum
	Enumerator
	Variable
	If
	ElseIf
	Else
	While
	Do
	For
	Try
	Catch
	Is
	External
	FunctionCall
)

var scopeKindNames = map[ScopeKind]string{
	Main:         "MAIN",
	Class:        "CLASS",
	Function:     "FUNCTION",
	Constructor:  "CONSTRUCTOR",
	Enum:         "ENUM",
	Enumerator:   "ENUMERATOR",
	Variable:     "VARIABLE",
	If:           "IF",
	ElseIf:       "ELSE_IF",
	Else:         "ELSE",
	While:        "WHILE",
	Do:           "DO",
	For:          "FOR",
	Try:          "TRY",
	Catch:        "CATCH",
	Is:           "IS",
	External:     "EXTERNAL",
	FunctionCall: "FUNCTION_CALL",
}

func (k ScopeKind) String() string {
	if s, ok := scopeKindNames[k]; ok {
		return s
	}
	return "UNKNOWN_SCOPE"
}

// SymbolEntry is one declared name: its type, visibility, the scope it
// opens (if any, e.g. a function or class name), and the source position
// of its declaration for use in AlreadyDefined diagnostics.
type SymbolEntry struct {
	Name         string
	DeclaredType types.VarType
	Visibility   Visibility
	Kind         ScopeKind
	Reference    *SymbolTable
	Line         int
	Column       int
}

// SymbolTable is one lexical scope: an optional ordered parameter list (for
// function, constructor, and catch scopes, which bind names positionally)
// and an unordered map of every other name declared directly in the scope.
type SymbolTable struct {
	Name    string
	Kind    ScopeKind
	Parent  *SymbolTable
	Params  []SymbolEntry
	Symbols map[string]SymbolEntry
	Line    int
	Column  int
}

// New creates an empty table of the given kind, linked to parent. parent
// may be nil only for the single root Main table.
func New(name string, kind ScopeKind, parent *SymbolTable, line, column int) *SymbolTable {
	return &SymbolTable{
		Name:    name,
		Kind:    kind,
		Parent:  parent,
		Symbols: make(map[string]SymbolEntry),
		Line:    line,
		Column:  column,
	}
}

// Declare adds e directly to t's own symbol map. It does not check for
// redeclaration; callers that must reject AlreadyDefined conditions should
// call Lookup(e.Name, true) first.
func (t *SymbolTable) Declare(e SymbolEntry) {
	t.Symbols[e.Name] = e
}

// AddParam appends e to t's ordered parameter list and also declares it in
// t's symbol map, so lookups by name find parameters the same way they
// find any other local declaration.
func (t *SymbolTable) AddParam(e SymbolEntry) {
	t.Params = append(t.Params, e)
	t.Declare(e)
}

// Lookup searches for name. If localOnly is true, only t's own map is
// searched; otherwise the search walks up through Parent until found or
// the root is exhausted.
func (t *SymbolTable) Lookup(name string, localOnly bool) (SymbolEntry, bool) {
	for scope := t; scope != nil; scope = scope.Parent {
		if e, ok := scope.Symbols[name]; ok {
			return e, true
		}
		if localOnly {
			break
		}
	}
	return SymbolEntry{}, false
}

// Depth returns the number of ancestors between t and the root, with the
// root itself at depth 0.
func (t *SymbolTable) Depth() int {
	d := 0
	for s := t.Parent; s != nil; s = s.Parent {
		d++
	}
	return d
}

// EnclosingClass walks up from t to find the nearest Class-kind ancestor
// (or t itself), used by sema's visibility checks to determine which
// class a reference site belongs to.
func (t *SymbolTable) EnclosingClass() *SymbolTable {
	for s := t; s != nil; s = s.Parent {
		if s.Kind == Class {
			return s
		}
	}
	return nil
}
