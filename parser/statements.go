package parser

import (
	"github.com/dekarrin/spacelang/ast"
	"github.com/dekarrin/spacelang/internal/util"
	"github.com/dekarrin/spacelang/token"
)

var modifierKeywords = util.KeySetOf([]token.Kind{
	token.KwGlobal,
	token.KwSecure,
	token.KwPrivate,
	token.KwExport,
})

// buildStatement dispatches on the current token to the constructor for
// one statement form, per the table-of-contents recursive-descent design:
// every branch returns (node, tokensConsumed) so the caller advances by the
// reported amount.
func (p *Parser) buildStatement() (*ast.ParseNode, int, error) {
	start := p.mark()

	var modifier *ast.ParseNode
	if modifierKeywords.Has(p.peek().Kind) {
		modTok := p.next()
		modifier = ast.NewLeaf(ast.Modifier, modTok.Text, modTok.Line, modTok.Column)
	}

	switch p.peek().Kind {
	case token.KwVar, token.KwConst:
		node, err := p.buildVarDecl(modifier)
		return node, p.consumedSince(start), err

	case token.KwClass:
		node, err := p.buildClass(modifier)
		return node, p.consumedSince(start), err

	case token.KwFunction:
		node, err := p.buildFunction(modifier)
		return node, p.consumedSince(start), err

	case token.KwThis:
		if p.peekAt(1).Kind == token.Colon {
			node, err := p.buildConstructor(modifier)
			return node, p.consumedSince(start), err
		}
		// "this.member ..." is an ordinary expression statement.
		node, err := p.buildExpressionStatement()
		return node, p.consumedSince(start), err

	case token.KwIf:
		node, err := p.buildIf()
		return node, p.consumedSince(start), err

	case token.KwElse:
		node, err := p.buildElse()
		return node, p.consumedSince(start), err

	case token.KwWhile:
		node, err := p.buildWhile()
		return node, p.consumedSince(start), err

	case token.KwDo:
		node, err := p.buildDo()
		return node, p.consumedSince(start), err

	case token.KwFor:
		node, err := p.buildFor()
		return node, p.consumedSince(start), err

	case token.KwTry:
		node, err := p.buildTry()
		return node, p.consumedSince(start), err

	case token.KwCatch:
		node, err := p.buildCatch()
		return node, p.consumedSince(start), err

	case token.KwReturn:
		node, err := p.buildReturn()
		return node, p.consumedSince(start), err

	case token.KwBreak:
		tok := p.next()
		node := ast.NewLeaf(ast.Break, tok.Text, tok.Line, tok.Column)
		if p.at(token.Semicolon) {
			p.next()
		}
		return node, p.consumedSince(start), nil

	case token.KwContinue:
		tok := p.next()
		node := ast.NewLeaf(ast.Continue, tok.Text, tok.Line, tok.Column)
		if p.at(token.Semicolon) {
			p.next()
		}
		return node, p.consumedSince(start), nil

	case token.KwEnum:
		node, err := p.buildEnum(modifier)
		return node, p.consumedSince(start), err

	case token.KwInclude:
		node, err := p.buildInclude()
		return node, p.consumedSince(start), err

	case token.KwCheck:
		node, err := p.buildCheck()
		return node, p.consumedSince(start), err

	default:
		// a bare expression statement (assignment, call, increment/decrement).
		node, err := p.buildExpressionStatement()
		return node, p.consumedSince(start), err
	}
}

// buildRunnable parses a brace-delimited block of statements into a
// RUNNABLE node owning the ordered statement list.
func (p *Parser) buildRunnable() (*ast.ParseNode, error) {
	open, err := p.expect(token.LBrace)
	if err != nil {
		return nil, err
	}

	var stmts []*ast.ParseNode
	for !p.at(token.RBrace) && !p.atEOF() {
		stmt, _, err := p.buildStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}

	return ast.NewRunnable(open.Line, open.Column, stmts...), nil
}

// buildTypeAnnotation parses ":" followed by a base-type or class-name
// identifier and zero or more "[]" array-dimension suffixes, returning a
// leaf Identifier node whose Value is the type spelling with any "[]"
// suffixes appended (e.g. "int", "int[]", "Account[][]"). Resolving that
// spelling to a types.VarType is package sema's job.
func (p *Parser) buildTypeAnnotation() (*ast.ParseNode, error) {
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	name := nameTok.Text
	for p.at(token.LBracket) {
		p.next()
		if _, err := p.expect(token.RBracket); err != nil {
			return nil, err
		}
		name += "[]"
	}

	return ast.NewLeaf(ast.Identifier, name, nameTok.Line, nameTok.Column), nil
}

// buildVarDecl parses a var/const declaration. The shape of the right-hand
// side determines which of the four variable NodeKinds is produced: "[...]"
// is an array initializer, a leading "?" is a conditional initializer, "new"
// is an instance initializer, anything else is a normal initializer.
func (p *Parser) buildVarDecl(modifier *ast.ParseNode) (*ast.ParseNode, error) {
	kwTok := p.next() // var or const
	isConst := kwTok.Kind == token.KwConst

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	nameNode := ast.NewLeaf(ast.Identifier, nameTok.Text, nameTok.Line, nameTok.Column)

	typeNode, err := p.buildTypeAnnotation()
	if err != nil {
		return nil, err
	}
	nameNode.Details = []*ast.ParseNode{typeNode}

	var rhs *ast.ParseNode
	shape := shapeNormal
	if p.at(token.Assign) {
		p.next()

		switch {
		case p.at(token.LBracket):
			rhs, err = p.buildArrayLiteral()
			shape = shapeArray
		case p.at(token.Question):
			qTok := p.next()
			cond, _, cerr := p.buildCondition()
			if cerr != nil {
				return nil, cerr
			}
			rhs = ast.NewLeaf(ast.Identifier, "?", qTok.Line, qTok.Column)
			rhs.Left = cond
			shape = shapeConditional
		case p.at(token.KwNew):
			rhs, err = p.buildConstructorCall()
			shape = shapeInstance
		default:
			rhs, _, err = p.buildTerm()
		}
		if err != nil {
			return nil, err
		}
	}
	kind := varKind(isConst, shape)

	if p.at(token.Semicolon) {
		p.next()
	}

	node := &ast.ParseNode{Kind: kind, Left: nameNode, Right: rhs, Line: kwTok.Line, Column: kwTok.Column}
	if modifier != nil {
		node.Details = []*ast.ParseNode{modifier}
	}
	return node, nil
}

// varShape is the RHS-determined shape of a var/const declaration: "[…]"
// on the right makes it an array, a leading "?" makes it conditional,
// "new" on the right makes it an instance declaration, anything else (or
// no initializer at all) is normal.
type varShape int

const (
	shapeNormal varShape = iota
	shapeArray
	shapeConditional
	shapeInstance
)

var varKindTable = map[varShape][2]ast.Kind{
	shapeNormal:      {ast.Var, ast.Const},
	shapeArray:       {ast.VarArray, ast.ConstArray},
	shapeConditional: {ast.VarConditional, ast.ConstConditional},
	shapeInstance:    {ast.VarInstance, ast.ConstInstance},
}

func varKind(isConst bool, shape varShape) ast.Kind {
	pair := varKindTable[shape]
	if isConst {
		return pair[1]
	}
	return pair[0]
}

// buildArrayLiteral parses a "[" elem, elem, ... "]" array initializer.
func (p *Parser) buildArrayLiteral() (*ast.ParseNode, error) {
	open, err := p.expect(token.LBracket)
	if err != nil {
		return nil, err
	}

	var elems []*ast.ParseNode
	if !p.at(token.RBracket) {
		for {
			elem, _, err := p.buildTerm()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if p.at(token.Comma) {
				p.next()
				continue
			}
			break
		}
	}

	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}

	return &ast.ParseNode{Kind: ast.ArrayAssignment, Details: elems, Line: open.Line, Column: open.Column}, nil
}

// buildConstructorCall parses "new" ClassName "(" args ")".
func (p *Parser) buildConstructorCall() (*ast.ParseNode, error) {
	newTok, err := p.expect(token.KwNew)
	if err != nil {
		return nil, err
	}
	classTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	args, err := p.buildArgumentList()
	if err != nil {
		return nil, err
	}
	return &ast.ParseNode{Kind: ast.ConstructorCall, Value: classTok.Text, Details: args, Line: newTok.Line, Column: newTok.Column}, nil
}

func (p *Parser) buildIf() (*ast.ParseNode, error) {
	ifTok, err := p.expect(token.KwIf)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, _, err := p.buildCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}
	return &ast.ParseNode{Kind: ast.If, Left: cond, Right: body, Line: ifTok.Line, Column: ifTok.Column}, nil
}

// buildElse parses both "else if (...)" and bare "else", since both start
// with the "else" keyword.
func (p *Parser) buildElse() (*ast.ParseNode, error) {
	elseTok, err := p.expect(token.KwElse)
	if err != nil {
		return nil, err
	}

	if p.at(token.KwIf) {
		p.next()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		cond, _, err := p.buildCondition()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		body, err := p.buildRunnable()
		if err != nil {
			return nil, err
		}
		return &ast.ParseNode{Kind: ast.ElseIf, Left: cond, Right: body, Line: elseTok.Line, Column: elseTok.Column}, nil
	}

	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}
	return &ast.ParseNode{Kind: ast.Else, Right: body, Line: elseTok.Line, Column: elseTok.Column}, nil
}

func (p *Parser) buildWhile() (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwWhile)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, _, err := p.buildCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}
	return &ast.ParseNode{Kind: ast.While, Left: cond, Right: body, Line: tok.Line, Column: tok.Column}, nil
}

// buildDo parses "do { ... } while ( cond ) ;".
func (p *Parser) buildDo() (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwDo)
	if err != nil {
		return nil, err
	}
	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwWhile); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	cond, _, err := p.buildCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	if p.at(token.Semicolon) {
		p.next()
	}
	return &ast.ParseNode{Kind: ast.Do, Left: cond, Right: body, Line: tok.Line, Column: tok.Column}, nil
}

// buildFor parses "for ( init ; cond ; step ) { body }", storing the
// condition in details[0], the step in details[1], the initializer in
// left, and the body in right.
func (p *Parser) buildFor() (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwFor)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	var init *ast.ParseNode
	if !p.at(token.Semicolon) {
		init, err = p.buildVarDecl(nil)
		if err != nil {
			return nil, err
		}
	} else {
		p.next()
	}

	cond, _, err := p.buildCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	step, err := p.buildExpressionStatement()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}

	return &ast.ParseNode{
		Kind:    ast.For,
		Left:    init,
		Right:   body,
		Details: []*ast.ParseNode{cond, step},
		Line:    tok.Line,
		Column:  tok.Column,
	}, nil
}

func (p *Parser) buildTry() (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwTry)
	if err != nil {
		return nil, err
	}
	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}
	return &ast.ParseNode{Kind: ast.Try, Right: body, Line: tok.Line, Column: tok.Column}, nil
}

// buildCatch parses "catch ( name : type ) { body }"; the single caught
// parameter becomes a one-entry parameter list on the catch scope's table,
// built by sema from the Parameter node in details[0].
func (p *Parser) buildCatch() (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwCatch)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	param, err := p.buildParameter()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}
	return &ast.ParseNode{Kind: ast.Catch, Right: body, Details: []*ast.ParseNode{param}, Line: tok.Line, Column: tok.Column}, nil
}

// buildReturn parses "return" followed by an optional expression (term,
// conditional, constructor-call, or array-initializer form) and ";".
func (p *Parser) buildReturn() (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwReturn)
	if err != nil {
		return nil, err
	}

	var expr *ast.ParseNode
	if !p.at(token.Semicolon) {
		switch {
		case p.at(token.LBracket):
			expr, err = p.buildArrayLiteral()
		case p.at(token.KwNew):
			expr, err = p.buildConstructorCall()
		case p.at(token.Question):
			qTok := p.next()
			cond, _, cerr := p.buildCondition()
			err = cerr
			if err == nil {
				expr = ast.NewLeaf(ast.Identifier, "?", qTok.Line, qTok.Column)
				expr.Left = cond
			}
		default:
			expr, _, err = p.buildTerm()
		}
		if err != nil {
			return nil, err
		}
	}

	if p.at(token.Semicolon) {
		p.next()
	}

	return &ast.ParseNode{Kind: ast.Return, Left: expr, Line: tok.Line, Column: tok.Column}, nil
}

// buildEnum parses "enum Name { A, B : 3, C }". Each enumerator's explicit
// value (if any) is stored as a VALUE node in the enumerator's right slot;
// auto-assignment of omitted values is sema's job.
func (p *Parser) buildEnum(modifier *ast.ParseNode) (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwEnum)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	var enumerators []*ast.ParseNode
	for !p.at(token.RBrace) && !p.atEOF() {
		entryTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		entry := ast.NewLeaf(ast.Enumerator, entryTok.Text, entryTok.Line, entryTok.Column)

		if p.at(token.Colon) {
			p.next()
			valTok, err := p.expect(token.IntLiteral)
			if err != nil {
				return nil, err
			}
			entry.Right = ast.NewLeaf(ast.Value, valTok.Text, valTok.Line, valTok.Column)
		}

		enumerators = append(enumerators, entry)

		if p.at(token.Comma) {
			p.next()
			continue
		}
		break
	}

	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}

	node := &ast.ParseNode{Kind: ast.Enum, Value: nameTok.Text, Details: enumerators, Line: tok.Line, Column: tok.Column}
	if modifier != nil {
		node.Left = modifier
	}
	return node, nil
}

// buildInclude parses "include" followed by a dotted path, stored as a
// left-deep member-access tree under the include node.
func (p *Parser) buildInclude() (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwInclude)
	if err != nil {
		return nil, err
	}

	segTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	path := ast.NewLeaf(ast.Identifier, segTok.Text, segTok.Line, segTok.Column)

	for p.at(token.Dot) {
		dotTok := p.next()
		nextTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		next := ast.NewLeaf(ast.Identifier, nextTok.Text, nextTok.Line, nextTok.Column)
		path = ast.NewBinary(ast.MemberAccess, path, next, dotTok.Line, dotTok.Column)
	}

	if p.at(token.Semicolon) {
		p.next()
	}

	return &ast.ParseNode{Kind: ast.Include, Left: path, Line: tok.Line, Column: tok.Column}, nil
}

// buildParameter parses "name : type".
func (p *Parser) buildParameter() (*ast.ParseNode, error) {
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	typeNode, err := p.buildTypeAnnotation()
	if err != nil {
		return nil, err
	}
	param := ast.NewLeaf(ast.Parameter, nameTok.Text, nameTok.Line, nameTok.Column)
	param.Details = []*ast.ParseNode{typeNode}
	return param, nil
}

// buildParameterList parses "( p1 : t1 , p2 : t2 , ... )".
func (p *Parser) buildParameterList() ([]*ast.ParseNode, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	var params []*ast.ParseNode
	if !p.at(token.RParen) {
		for {
			param, err := p.buildParameter()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if p.at(token.Comma) {
				p.next()
				continue
			}
			break
		}
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

// buildFunction parses "function : returnType name ( params ) { body }".
func (p *Parser) buildFunction(modifier *ast.ParseNode) (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwFunction)
	if err != nil {
		return nil, err
	}

	retType, err := p.buildTypeAnnotation()
	if err != nil {
		return nil, err
	}
	retNode := &ast.ParseNode{Kind: ast.ReturnType, Value: retType.Value, Line: retType.Line, Column: retType.Column}

	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	params, err := p.buildParameterList()
	if err != nil {
		return nil, err
	}

	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}

	details := append([]*ast.ParseNode{retNode}, params...)
	node := &ast.ParseNode{Kind: ast.Function, Value: nameTok.Text, Right: body, Details: details, Line: tok.Line, Column: tok.Column}
	if modifier != nil {
		node.Left = modifier
	}
	return node, nil
}

// buildConstructor parses "this::constructor ( params ) { body }".
func (p *Parser) buildConstructor(modifier *ast.ParseNode) (*ast.ParseNode, error) {
	thisTok, err := p.expect(token.KwThis)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwConstructor); err != nil {
		return nil, err
	}

	// constructor parameters are collected into a node of kind Constructor
	// rather than Function, so sema can tag their table entries distinctly
	// and keep overload resolution from crossing the two kinds.
	params, err := p.buildParameterList()
	if err != nil {
		return nil, err
	}

	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}

	node := &ast.ParseNode{Kind: ast.Constructor, Right: body, Details: params, Line: thisTok.Line, Column: thisTok.Column}
	if modifier != nil {
		node.Left = modifier
	}
	return node, nil
}

// buildClass parses "class Name [extends Parent] [with I1, I2] { body }".
// left holds the modifier; details[0] holds the inheritance node if
// present; any interface names follow it in details.
func (p *Parser) buildClass(modifier *ast.ParseNode) (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwClass)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	var details []*ast.ParseNode
	if p.at(token.KwExtends) {
		extTok := p.next()
		parentTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		details = append(details, ast.NewLeaf(ast.Inheritance, parentTok.Text, extTok.Line, extTok.Column))
	}

	if p.at(token.KwWith) {
		p.next()
		for {
			ifaceTok, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			details = append(details, ast.NewLeaf(ast.Interface, ifaceTok.Text, ifaceTok.Line, ifaceTok.Column))
			if p.at(token.Comma) {
				p.next()
				continue
			}
			break
		}
	}

	body, err := p.buildRunnable()
	if err != nil {
		return nil, err
	}

	node := &ast.ParseNode{Kind: ast.Class, Value: nameTok.Text, Right: body, Details: details, Line: tok.Line, Column: tok.Column}
	if modifier != nil {
		node.Left = modifier
	}
	return node, nil
}

// buildCheck parses the "check (expr) is value1 { body } is value2 { body }"
// multi-way dispatch: each "is" arm opens its own scope and is a valid
// break/continue target, the same as a loop body.
func (p *Parser) buildCheck() (*ast.ParseNode, error) {
	tok, err := p.expect(token.KwCheck)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	discriminant, _, err := p.buildTerm()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}

	var arms []*ast.ParseNode
	for p.at(token.KwIs) {
		isTok := p.next()
		value, _, err := p.buildTerm()
		if err != nil {
			return nil, err
		}
		body, err := p.buildRunnable()
		if err != nil {
			return nil, err
		}
		arms = append(arms, &ast.ParseNode{Kind: ast.IsArm, Left: value, Right: body, Line: isTok.Line, Column: isTok.Column})
	}

	return &ast.ParseNode{Kind: ast.Check, Left: discriminant, Details: arms, Line: tok.Line, Column: tok.Column}, nil
}

// buildExpressionStatement parses a standalone expression statement:
// assignment ("x = expr", "x += expr", ...), increment/decrement
// ("x++", "x--"), or a bare call, terminated by ";" when one follows.
func (p *Parser) buildExpressionStatement() (*ast.ParseNode, error) {
	lhs, _, err := p.buildAccessChain()
	if err != nil {
		return nil, err
	}

	var node *ast.ParseNode
	switch p.peek().Kind {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign:
		opTok := p.next()
		rhs, _, err := p.buildTerm()
		if err != nil {
			return nil, err
		}
		node = ast.NewBinary(ast.Assignment, lhs, rhs, opTok.Line, opTok.Column)
		node.Value = opTok.Text

	case token.Increment, token.Decrement:
		opTok := p.next()
		node = &ast.ParseNode{Kind: ast.IncDec, Value: opTok.Text, Left: lhs, Line: opTok.Line, Column: opTok.Column}

	default:
		node = lhs
	}

	if p.at(token.Semicolon) {
		p.next()
	}
	return node, nil
}
