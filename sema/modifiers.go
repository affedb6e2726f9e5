package sema

import (
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/symbols"
)

// checkMemberVisibility rejects access to a Private or Secure member from
// outside the class that declares it. Access from within the same class
// (including from one of its own methods) is always permitted, regardless
// of visibility.
func (a *Analyzer) checkMemberVisibility(entry symbols.SymbolEntry, owner *symbols.SymbolTable, useScope *symbols.SymbolTable, site interface {
	Pos() (int, int)
}) {
	if entry.Visibility == symbols.PackageGlobal || entry.Visibility == symbols.Global {
		return
	}

	// useScope's EnclosingClass is compared against owner by identity, not
	// name, so two distinct classes that happen to share a name (which
	// AlreadyDefined would in practice prevent at Main scope) can never be
	// confused with each other.
	accessingClass := useScope.EnclosingClass()
	if accessingClass == owner {
		return
	}

	line, column := site.Pos()
	a.diagnostics.Add(diag.Diagnostic{
		Category: diag.Modifier,
		Message:  "\"" + entry.Name + "\" is " + entry.Visibility.String() + " and not accessible from this scope",
		Line:     line,
		Column:   column,
	})
}
