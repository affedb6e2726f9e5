package parser

import (
	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/token"
)

// termKind lists the arithmetic term operators and the ast.Kind each
// builds; token.Kind.LBP() supplies each one's binding power (+/- bind
// loosest, */ % bind tightest), so a lookahead of higher binding power than
// the operator currently accumulating into the cache defers to a nested
// sub-term before the looser operator resumes.
var termKind = map[token.Kind]ast.Kind{
	token.Plus:    ast.Add,
	token.Minus:   ast.Subtract,
	token.Star:    ast.Multiply,
	token.Slash:   ast.Divide,
	token.Percent: ast.Modulo,
}

// buildTerm parses a term (the arithmetic sub-grammar) starting at the
// cursor and returns the resulting node plus how many tokens it consumed.
// It runs a left-to-right scan: cache holds the partial tree built so far,
// and before folding the next operator in, it first climbs any run of
// strictly-higher-precedence operators following it, so "*","/","%" always
// bind tighter than any deferred "+"/"-".
func (p *Parser) buildTerm() (*ast.ParseNode, int, error) {
	start := p.mark()

	cache, err := p.buildTermOperand()
	if err != nil {
		return nil, 0, err
	}

	for isTermOperator(p.peek().Kind) {
		cache, err = p.climbTerm(cache, 0)
		if err != nil {
			return nil, 0, err
		}
	}

	return cache, p.consumedSince(start), nil
}

// climbTerm folds operators binding tighter than minBP into cache, one at a
// time, then returns. It is the recursive step that lets "*"/"/" consume
// their right operand directly while a run of "+"/"-" only ever combines
// operands of equal precedence left to right.
func (p *Parser) climbTerm(cache *ast.ParseNode, minBP int) (*ast.ParseNode, error) {
	opTok := p.peek()
	if !isTermOperator(opTok.Kind) {
		return cache, nil
	}
	bp := opTok.Kind.LBP()
	if bp < minBP {
		return cache, nil
	}
	p.next()

	right, err := p.buildTermOperand()
	if err != nil {
		return nil, err
	}

	for isTermOperator(p.peek().Kind) && p.peek().Kind.LBP() > bp {
		right, err = p.climbTerm(right, bp+1)
		if err != nil {
			return nil, err
		}
	}

	return ast.NewBinary(termKind[opTok.Kind], cache, right, opTok.Line, opTok.Column), nil
}

func isTermOperator(k token.Kind) bool {
	_, ok := termKind[k]
	return ok
}

// buildTermOperand parses one operand of a term: a parenthesized
// sub-term, a unary-minus-wrapped operand, a literal, or an access chain
// (identifier, field access, function/constructor call, array access).
func (p *Parser) buildTermOperand() (*ast.ParseNode, error) {
	tok := p.peek()

	switch tok.Kind {
	case token.LParen:
		p.next()
		inner, _, err := p.buildTerm()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil

	case token.Minus:
		p.next()
		operand, err := p.buildTermOperand()
		if err != nil {
			return nil, err
		}
		zero := ast.NewLeaf(ast.IntLiteral, "0", tok.Line, tok.Column)
		return ast.NewBinary(ast.Subtract, zero, operand, tok.Line, tok.Column), nil

	case token.IntLiteral:
		p.next()
		return ast.NewLeaf(ast.IntLiteral, tok.Text, tok.Line, tok.Column), nil

	case token.FloatLiteral:
		p.next()
		return ast.NewLeaf(ast.FloatLiteral, tok.Text, tok.Line, tok.Column), nil

	case token.StringLiteral:
		p.next()
		return ast.NewLeaf(ast.StringLiteral, tok.Text, tok.Line, tok.Column), nil

	case token.CharLiteral:
		p.next()
		return ast.NewLeaf(ast.CharLiteral, tok.Text, tok.Line, tok.Column), nil

	case token.KwTrue, token.KwFalse:
		p.next()
		return ast.NewLeaf(ast.BoolLiteral, tok.Text, tok.Line, tok.Column), nil

	case token.KwNull:
		p.next()
		return ast.NewLeaf(ast.NullLiteral, tok.Text, tok.Line, tok.Column), nil

	case token.KwThis, token.Identifier:
		node, _, err := p.buildAccessChain()
		if err != nil {
			return nil, err
		}
		return node, nil

	default:
		return nil, &SyntaxError{Tok: tok, Message: "expected a term operand"}
	}
}
