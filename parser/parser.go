// Package parser builds a typed parse tree from a token sequence: a
// table-of-contents recursive descent over []token.Token, split across
// this file (top-level statement dispatch) and term.go (arithmetic
// precedence), condition.go (chained and/or conditions), access.go
// (member/class access chains and calls), and statements.go (one
// constructor per statement kind).
package parser

import (
	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/token"
)

// Parse consumes the full token sequence and returns the root RUNNABLE
// node of the program, or the first SyntaxError encountered. Every
// top-level construct recognized by buildStatement is legal at this
// level; placement restrictions (classes/enums/includes only at Main
// scope, and so on) are sema's responsibility, not the builder's.
func Parse(tokens []token.Token) (*ast.ParseNode, error) {
	p := newParser(tokens)

	var stmts []*ast.ParseNode
	for !p.atEOF() {
		stmt, _, err := p.buildStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return ast.NewRunnable(1, 1, stmts...), nil
}
