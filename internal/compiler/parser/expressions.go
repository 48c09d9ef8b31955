package parser

import (
	"github.com/natalie-lang/natalie-sub003/internal/compiler/ast"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/errors"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
)

// parseExpression is the Pratt core: it parses a null-denotation (prefix)
// form, then repeatedly extends it with left-denotation (infix/suffix)
// forms as long as the next token's precedence exceeds prec. Assignment is
// right-associative: a `=` seen while prec == ASSIGNMENT still binds, since
// the right-hand side of an assignment is itself allowed to be an
// assignment.
func (p *Parser) parseExpression(prec Precedence) ast.Node {
	left := p.parseNullDenotation()
	if p.err != nil {
		return left
	}

	for !p.isAtEnd() && !p.peek().IsEOL() {
		next := p.peekPrecedence()
		if prec > next {
			break
		}
		if prec == next && next != ASSIGNMENT {
			break
		}
		left = p.parseLeftDenotation(left)
		if p.err != nil {
			return left
		}
	}
	return left
}

// parseNullDenotation dispatches on the current token to parse whatever
// can start an expression: a literal, an identifier, a prefix operator,
// a grouping, or a block-introducing keyword.
func (p *Parser) parseNullDenotation() ast.Node {
	tok := p.peek()
	switch tok.Type {
	case lexer.TOKEN_INTEGER:
		p.advance()
		return ast.NewInteger(tok, tok.Literal.(int64))
	case lexer.TOKEN_FLOAT:
		p.advance()
		return ast.NewFloat(tok, tok.Literal.(float64))
	case lexer.TOKEN_STRING:
		p.advance()
		return ast.NewString(tok, literalString(tok))
	case lexer.TOKEN_SYMBOL:
		p.advance()
		return ast.NewSymbol(tok, literalString(tok))
	case lexer.TOKEN_REGEXP:
		p.advance()
		return ast.NewRegexp(tok, literalString(tok), tok.Options)
	case lexer.TOKEN_SHELL:
		p.advance()
		return ast.NewShell(tok, literalString(tok))
	case lexer.TOKEN_INTERPOLATED_STRING_BEGIN:
		return p.parseInterpolatedString()
	case lexer.TOKEN_INTERPOLATED_REGEXP_BEGIN:
		return p.parseInterpolatedRegexp()
	case lexer.TOKEN_INTERPOLATED_SHELL_BEGIN:
		return p.parseInterpolatedShell()
	case lexer.TOKEN_TRUE_KEYWORD:
		p.advance()
		return ast.NewTrue(tok)
	case lexer.TOKEN_FALSE_KEYWORD:
		p.advance()
		return ast.NewFalse(tok)
	case lexer.TOKEN_NIL_KEYWORD:
		p.advance()
		return ast.NewNil(tok)
	case lexer.TOKEN_SELF_KEYWORD:
		p.advance()
		return ast.NewSelf(tok)
	case lexer.TOKEN_BARE_NAME:
		return p.parseBareName()
	case lexer.TOKEN_CONSTANT:
		return p.parseConstant()
	case lexer.TOKEN_CONSTANT_RESOLUTION:
		return p.parseColon3()
	case lexer.TOKEN_GLOBAL_VARIABLE, lexer.TOKEN_INSTANCE_VARIABLE, lexer.TOKEN_CLASS_VARIABLE:
		p.advance()
		return ast.NewIdentifier(tok, tok.Lexeme, false)
	case lexer.TOKEN_NOT, lexer.TOKEN_NOT_KEYWORD:
		p.advance()
		operand := p.parseExpression(LOGICALNOT)
		return ast.NewNot(tok, operand)
	case lexer.TOKEN_MINUS:
		p.advance()
		return p.parseUnaryMinus(tok)
	case lexer.TOKEN_PLUS:
		p.advance()
		return p.parseExpression(UNARY)
	case lexer.TOKEN_BINARY_ONES_COMPLEMENT:
		p.advance()
		operand := p.parseExpression(UNARY)
		return ast.NewCall(tok, operand, "~", nil)
	case lexer.TOKEN_MULTIPLY:
		p.advance()
		value := p.parseExpression(SPLAT)
		return ast.NewSplatValue(tok, value)
	case lexer.TOKEN_BITWISE_AND:
		p.advance()
		value := p.parseExpression(SPLAT)
		return ast.NewBlockPass(tok, value)
	case lexer.TOKEN_LPAREN:
		return p.parseGroupedExpression()
	case lexer.TOKEN_LBRACKET:
		return p.parseArrayLiteral()
	case lexer.TOKEN_LCURLY_BRACE:
		return p.parseHashLiteral()
	case lexer.TOKEN_PERCENT_LOWER_I, lexer.TOKEN_PERCENT_UPPER_I:
		return p.parseSymbolArrayLiteral()
	case lexer.TOKEN_PERCENT_LOWER_W, lexer.TOKEN_PERCENT_UPPER_W:
		return p.parseWordArrayLiteral()
	case lexer.TOKEN_ARROW:
		return p.parseStabbyProc()
	case lexer.TOKEN_DEFINED_KEYWORD:
		p.advance()
		parens := p.match(lexer.TOKEN_LPAREN)
		value := p.parseExpression(DEFARGS)
		if parens {
			p.consume(lexer.TOKEN_RPAREN, "')'")
		}
		return ast.NewDefined(tok, value)
	case lexer.TOKEN_YIELD_KEYWORD:
		return p.parseYield()
	case lexer.TOKEN_SUPER_KEYWORD:
		return p.parseSuper()
	case lexer.TOKEN_IF_KEYWORD:
		return p.parseIfExpression(false)
	case lexer.TOKEN_UNLESS_KEYWORD:
		return p.parseIfExpression(true)
	case lexer.TOKEN_WHILE_KEYWORD:
		return p.parseWhileExpression(false)
	case lexer.TOKEN_UNTIL_KEYWORD:
		return p.parseWhileExpression(true)
	case lexer.TOKEN_CASE_KEYWORD:
		return p.parseCase()
	case lexer.TOKEN_BEGIN_KEYWORD:
		return p.parseBeginExpression()
	case lexer.TOKEN_DEF_KEYWORD:
		return p.parseDef()
	case lexer.TOKEN_CLASS_KEYWORD:
		return p.parseClassOrSclass()
	case lexer.TOKEN_MODULE_KEYWORD:
		return p.parseModule()
	case lexer.TOKEN_ALIAS_KEYWORD:
		return p.parseAlias()
	case lexer.TOKEN_RETURN_KEYWORD:
		p.advance()
		return ast.NewReturn(tok, p.parseOptionalValue())
	case lexer.TOKEN_BREAK_KEYWORD:
		p.advance()
		return ast.NewBreak(tok, p.parseOptionalValue())
	case lexer.TOKEN_NEXT_KEYWORD:
		p.advance()
		return ast.NewNext(tok, p.parseOptionalValue())
	default:
		err := errors.NewUnexpectedToken(p.loc(tok), p.display(tok), "expression")
		if tok.Err != nil {
			err.Message = tok.Err.Message
		}
		p.errorAt(tok, err)
		return nil
	}
}

// parseOptionalValue parses the value after return/break/next when one is
// present — i.e. when the following token can itself start an expression.
func (p *Parser) parseOptionalValue() ast.Node {
	if p.peek().IsEndOfExpression() || p.check(lexer.TOKEN_RPAREN) || p.check(lexer.TOKEN_RCURLY_BRACE) {
		return nil
	}
	return p.parseExpression(LOWEST)
}

func (p *Parser) parseUnaryMinus(tok lexer.Token) ast.Node {
	if p.check(lexer.TOKEN_INTEGER) && !p.peek().WhitespacePrecedes {
		lit := p.advance()
		return ast.NewInteger(tok, -lit.Literal.(int64))
	}
	if p.check(lexer.TOKEN_FLOAT) && !p.peek().WhitespacePrecedes {
		lit := p.advance()
		return ast.NewFloat(tok, -lit.Literal.(float64))
	}
	operand := p.parseExpression(UNARY)
	return ast.NewCall(tok, operand, "-@", nil)
}

// parseBareName decides, whether a lowercase
// identifier is a local-variable read or an implicit method call on self,
// and whether it opens a parenthesis-less argument list (§4.2.3).
func (p *Parser) parseBareName() ast.Node {
	tok := p.advance()
	name := tok.Lexeme

	if p.check(lexer.TOKEN_LPAREN) && !p.peek().WhitespacePrecedes {
		p.advance()
		args := p.parseCallArgs(lexer.TOKEN_RPAREN)
		call := ast.NewCall(tok, nil, name, args)
		return p.attachBlock(call)
	}

	if p.scope.isLocal(name) {
		return ast.NewIdentifier(tok, name, true)
	}

	if p.peek().CanBeFirstArgOfImplicitCall() && p.peek().WhitespacePrecedes && !p.endsExpression() {
		args := p.parseImplicitCallArgs()
		call := ast.NewCall(tok, nil, name, args)
		return p.attachBlock(call)
	}

	call := ast.NewCall(tok, nil, name, nil)
	return p.attachBlock(call)
}

// endsExpression reports whether the current token cannot start an
// argument list because it terminates the enclosing expression instead.
func (p *Parser) endsExpression() bool {
	return p.peek().IsEndOfExpression() || p.checkAny(lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET, lexer.TOKEN_RCURLY_BRACE, lexer.TOKEN_COMMA)
}

func (p *Parser) parseConstant() ast.Node {
	tok := p.advance()
	node := ast.Node(ast.NewConstant(tok, tok.Lexeme))
	for p.check(lexer.TOKEN_CONSTANT_RESOLUTION) {
		p.advance()
		name := p.consume(lexer.TOKEN_CONSTANT, "constant name")
		node = ast.NewColon2(tok, node, name.Lexeme)
	}
	if p.check(lexer.TOKEN_LPAREN) && !p.peek().WhitespacePrecedes {
		p.advance()
		args := p.parseCallArgs(lexer.TOKEN_RPAREN)
		call := ast.NewCall(tok, nil, constantNameOf(node), args)
		return p.attachBlock(call)
	}
	return node
}

func constantNameOf(n ast.Node) string {
	if c, ok := n.(*ast.ConstantNode); ok {
		return c.Name
	}
	return ""
}

func (p *Parser) parseColon3() ast.Node {
	tok := p.advance()
	name := p.consume(lexer.TOKEN_CONSTANT, "constant name")
	return ast.NewColon3(tok, name.Lexeme)
}

func (p *Parser) parseGroupedExpression() ast.Node {
	p.advance()
	p.skipEOLs()
	expr := p.parseExpression(LOWEST)
	p.skipEOLs()
	p.consume(lexer.TOKEN_RPAREN, "')'")
	return expr
}

func (p *Parser) parseArrayLiteral() ast.Node {
	tok := p.advance()
	var items []ast.Node
	p.skipEOLs()
	for !p.check(lexer.TOKEN_RBRACKET) && p.err == nil {
		items = append(items, p.parseArrayElement())
		p.skipEOLs()
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
		p.skipEOLs()
	}
	p.consume(lexer.TOKEN_RBRACKET, "']'")
	return ast.NewArray(tok, items)
}

func (p *Parser) parseArrayElement() ast.Node {
	return p.parseExpression(ARRAY)
}

func (p *Parser) parseHashLiteral() ast.Node {
	tok := p.advance()
	var keys, values []ast.Node
	p.skipEOLs()
	for !p.check(lexer.TOKEN_RCURLY_BRACE) && p.err == nil {
		if p.check(lexer.TOKEN_EXPONENT) {
			p.advance()
			keys = append(keys, nil)
			values = append(values, ast.NewKeywordSplat(p.peek(), p.parseExpression(HASH)))
		} else if p.check(lexer.TOKEN_SYMBOL_KEY) {
			keyTok := p.advance()
			keys = append(keys, ast.NewSymbol(keyTok, literalString(keyTok)))
			values = append(values, p.parseExpression(HASH))
		} else {
			k := p.parseExpression(HASH)
			p.consume(lexer.TOKEN_HASH_ROCKET, "'=>'")
			v := p.parseExpression(HASH)
			keys = append(keys, k)
			values = append(values, v)
		}
		p.skipEOLs()
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
		p.skipEOLs()
	}
	p.consume(lexer.TOKEN_RCURLY_BRACE, "'}'")
	return ast.NewHash(tok, keys, values)
}

func (p *Parser) parseSymbolArrayLiteral() ast.Node {
	tok := p.advance()
	var items []ast.Node
	for p.check(lexer.TOKEN_BARE_NAME) || p.check(lexer.TOKEN_SYMBOL) || p.check(lexer.TOKEN_CONSTANT) {
		t := p.advance()
		items = append(items, ast.NewSymbol(t, t.Lexeme))
	}
	return ast.NewArray(tok, items)
}

func (p *Parser) parseWordArrayLiteral() ast.Node {
	tok := p.advance()
	var items []ast.Node
	for p.check(lexer.TOKEN_STRING) || p.check(lexer.TOKEN_BARE_NAME) {
		t := p.advance()
		items = append(items, ast.NewString(t, literalString(t)))
	}
	return ast.NewArray(tok, items)
}

func (p *Parser) parseStabbyProc() ast.Node {
	tok := p.advance()
	p.scope = newScope(p.scope, false)
	defer func() { p.scope = p.scope.parent }()
	var params []*ast.ArgNode
	if p.match(lexer.TOKEN_LPAREN) {
		params = p.parseParamList(lexer.TOKEN_RPAREN)
		p.consume(lexer.TOKEN_RPAREN, "')'")
	}
	var body []ast.Node
	if p.match(lexer.TOKEN_LCURLY_BRACE) {
		body = p.parseStatements(func() bool { return p.check(lexer.TOKEN_RCURLY_BRACE) })
		p.consume(lexer.TOKEN_RCURLY_BRACE, "'}'")
	} else {
		p.consume(lexer.TOKEN_DO_KEYWORD, "'do'")
		body = p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
		p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	}
	return ast.NewStabbyProc(tok, params, body)
}

func (p *Parser) parseYield() ast.Node {
	tok := p.advance()
	var args []ast.Node
	if p.check(lexer.TOKEN_LPAREN) && !p.peek().WhitespacePrecedes {
		p.advance()
		args = p.parseCallArgs(lexer.TOKEN_RPAREN)
	} else if p.peek().CanBeFirstArgOfImplicitCall() && !p.endsExpression() {
		args = p.parseImplicitCallArgs()
	}
	return ast.NewYield(tok, args)
}

func (p *Parser) parseSuper() ast.Node {
	tok := p.advance()
	if p.check(lexer.TOKEN_LPAREN) && !p.peek().WhitespacePrecedes {
		p.advance()
		args := p.parseCallArgs(lexer.TOKEN_RPAREN)
		return ast.NewSuper(tok, args, true)
	}
	if p.peek().CanBeFirstArgOfImplicitCall() && !p.endsExpression() {
		args := p.parseImplicitCallArgs()
		return ast.NewSuper(tok, args, false)
	}
	return ast.NewSuper(tok, nil, false)
}

func (p *Parser) skipEOLs() {
	for p.check(lexer.TOKEN_EOL) {
		p.advance()
	}
}

func literalString(tok lexer.Token) string {
	if s, ok := tok.Literal.(string); ok {
		return s
	}
	return tok.Lexeme
}
