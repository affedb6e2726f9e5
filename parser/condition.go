package parser

import (
	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/token"
)

var relKind = map[token.Kind]ast.Kind{
	token.Eq:        ast.RelEqual,
	token.NotEq:     ast.RelNotEqual,
	token.Less:      ast.RelLess,
	token.Greater:   ast.RelGreater,
	token.LessEq:    ast.RelLessEqual,
	token.GreaterEq: ast.RelGreaterEqual,
}

var chainKind = map[token.Kind]ast.Kind{
	token.KwAnd: ast.And,
	token.KwOr:  ast.Or,
}

// buildCondition parses a chained boolean condition: "and"/"or" connect
// condition leaves at equal precedence, associating strictly left to right
// ("a and b or c" is "((a and b) or c)"). Parentheses around a
// sub-condition override the left-to-right association.
func (p *Parser) buildCondition() (*ast.ParseNode, int, error) {
	start := p.mark()

	left, err := p.buildConditionLeaf()
	if err != nil {
		return nil, 0, err
	}

	for p.at(token.KwAnd) || p.at(token.KwOr) {
		opTok := p.next()
		right, err := p.buildConditionLeaf()
		if err != nil {
			return nil, 0, err
		}
		left = ast.NewBinary(chainKind[opTok.Kind], left, right, opTok.Line, opTok.Column)
	}

	return left, p.consumedSince(start), nil
}

// buildConditionLeaf parses one leaf of a condition chain: a parenthesized
// sub-condition, or a relational comparison, or a single boolean-typed
// expression standing alone.
func (p *Parser) buildConditionLeaf() (*ast.ParseNode, error) {
	if p.at(token.LParen) {
		p.next()
		inner, _, err := p.buildCondition()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return inner, nil
	}

	left, _, err := p.buildTerm()
	if err != nil {
		return nil, err
	}

	if relK, ok := relKind[p.peek().Kind]; ok {
		opTok := p.next()
		right, _, err := p.buildTerm()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(relK, left, right, opTok.Line, opTok.Column), nil
	}

	// no relational operator follows: the leaf is just the expression
	// itself, which must evaluate to a boolean at analysis time.
	return left, nil
}
