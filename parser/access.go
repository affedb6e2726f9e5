package parser

import (
	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/token"
)

// buildAccessChain parses an identifier/this, followed by zero or more
// accessor segments ('.' or '->'), function calls, and array accesses. A
// bare identifier or a single call is returned directly; each accessor
// adds one MEM_ACC/CLASS_ACC node, so one or more accessors produce a
// left-deep tree and evaluation proceeds left to right.
func (p *Parser) buildAccessChain() (*ast.ParseNode, int, error) {
	start := p.mark()

	node, err := p.buildAccessPrimary()
	if err != nil {
		return nil, 0, err
	}

	for p.at(token.Dot) || p.at(token.Arrow) {
		accTok := p.next()
		kind := ast.MemberAccess
		if accTok.Kind == token.Arrow {
			kind = ast.ClassAccess
		}

		right, err := p.buildAccessPrimary()
		if err != nil {
			return nil, 0, err
		}

		binary := ast.NewBinary(kind, node, right, accTok.Line, accTok.Column)
		binary.Value = accTok.Text
		node = binary
	}

	return node, p.consumedSince(start), nil
}

// buildAccessPrimary parses one segment of an access chain: an identifier
// or "this", immediately followed by an optional call-argument list and any
// number of array-index suffixes.
func (p *Parser) buildAccessPrimary() (*ast.ParseNode, error) {
	tok := p.peek()

	var node *ast.ParseNode
	switch tok.Kind {
	case token.KwThis:
		p.next()
		node = ast.NewLeaf(ast.This, tok.Text, tok.Line, tok.Column)
	case token.Identifier:
		p.next()
		node = ast.NewLeaf(ast.Identifier, tok.Text, tok.Line, tok.Column)
	default:
		return nil, &SyntaxError{Tok: tok, Message: "expected an identifier or \"this\""}
	}

	if p.at(token.LParen) {
		args, err := p.buildArgumentList()
		if err != nil {
			return nil, err
		}
		call := &ast.ParseNode{Kind: ast.FunctionCall, Value: node.Value, Line: node.Line, Column: node.Column, Details: args}
		node = call
	}

	if p.at(token.LBracket) {
		var chainHead, chainTail *ast.ParseNode
		for p.at(token.LBracket) {
			brTok := p.next()
			index, _, err := p.buildTerm()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return nil, err
			}

			// each dimension is its own ARRAY_ACCESS node holding that
			// dimension's index expression in Left; the chain of further
			// dimensions hangs off Right, and the whole chain attaches to
			// the accessed value through the value node's own Left.
			dim := &ast.ParseNode{Kind: ast.ArrayAccess, Left: index, Line: brTok.Line, Column: brTok.Column}
			if chainHead == nil {
				chainHead = dim
			} else {
				chainTail.Right = dim
			}
			chainTail = dim
		}
		node.Left = chainHead
	}

	return node, nil
}

// buildArgumentList parses a parenthesized, comma-separated argument list
// at the cursor (which must be sitting on the opening '(') by splitting at
// top bracket depth.
func (p *Parser) buildArgumentList() ([]*ast.ParseNode, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	var args []*ast.ParseNode
	if p.at(token.RParen) {
		p.next()
		return args, nil
	}

	for {
		arg, _, err := p.buildTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return args, nil
}
