package sema

import (
	"fmt"
	"strings"

	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/diag"
	"github.com/dekarrin/spacelang/symbols"
)

// checkConstructorOverload enumerates the constructor entries already
// declared in the enclosing class table and emits AlreadyDefined if any
// existing constructor's parameter-type tuple is strictly equal, in order,
// to the one just declared.
func (a *Analyzer) checkConstructorOverload(n *ast.ParseNode, classScope *symbols.SymbolTable, newCtor *symbols.SymbolTable) {
	newSig := ctorSignature(newCtor)

	for _, entry := range classScope.Symbols {
		if entry.Kind != symbols.Constructor || entry.Reference == nil {
			continue
		}
		if ctorSignature(entry.Reference) == newSig {
			a.diagnostics.Add(diag.Diagnostic{
				Category: diag.AlreadyDefined,
				Message:  fmt.Sprintf("a constructor with parameter signature (%s) is already defined", newSig),
				Line:     n.Line,
				Column:   n.Column,
			})
			return
		}
	}
}

// ctorSignature renders a constructor's ordered parameter types as a
// comma-joined strict-equality key, suitable both as an overload-collision
// comparison key and as a unique per-signature symbol-table entry name
// (see declare.go's declareConstructor).
func ctorSignature(ctorTable *symbols.SymbolTable) string {
	names := make([]string, len(ctorTable.Params))
	for i, p := range ctorTable.Params {
		names[i] = p.DeclaredType.Name()
	}
	return strings.Join(names, ",")
}
