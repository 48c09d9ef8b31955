package parser

import (
	"github.com/natalie-lang/natalie-sub003/internal/compiler/ast"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/errors"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
)

var binaryOpNames = map[lexer.TokenType]string{
	lexer.TOKEN_PLUS:                  "+",
	lexer.TOKEN_MINUS:                 "-",
	lexer.TOKEN_MULTIPLY:              "*",
	lexer.TOKEN_DIVIDE:                "/",
	lexer.TOKEN_MODULUS:               "%",
	lexer.TOKEN_EXPONENT:              "**",
	lexer.TOKEN_EQUAL_EQUAL:           "==",
	lexer.TOKEN_EQUAL_EQUAL_EQUAL:     "===",
	lexer.TOKEN_NOT_EQUAL:             "!=",
	lexer.TOKEN_COMPARISON:            "<=>",
	lexer.TOKEN_LESS_THAN:             "<",
	lexer.TOKEN_LESS_THAN_OR_EQUAL:    "<=",
	lexer.TOKEN_GREATER_THAN:          ">",
	lexer.TOKEN_GREATER_THAN_OR_EQUAL: ">=",
	lexer.TOKEN_LEFT_SHIFT:            "<<",
	lexer.TOKEN_RIGHT_SHIFT:           ">>",
	lexer.TOKEN_BITWISE_AND:           "&",
	lexer.TOKEN_BITWISE_OR:            "|",
	lexer.TOKEN_BITWISE_XOR:           "^",
}

var opAssignNames = map[lexer.TokenType]string{
	lexer.TOKEN_PLUS_EQUAL:       "+",
	lexer.TOKEN_MINUS_EQUAL:      "-",
	lexer.TOKEN_MULTIPLY_EQUAL:   "*",
	lexer.TOKEN_DIVIDE_EQUAL:     "/",
	lexer.TOKEN_MODULUS_EQUAL:    "%",
	lexer.TOKEN_EXPONENT_EQUAL:   "**",
	lexer.TOKEN_LEFT_SHIFT_EQUAL: "<<",
	lexer.TOKEN_RIGHT_SHIFT_EQUAL: ">>",
	lexer.TOKEN_BITWISE_AND_EQUAL: "&",
	lexer.TOKEN_BITWISE_OR_EQUAL:  "|",
	lexer.TOKEN_BITWISE_XOR_EQUAL: "^",
}

// parseLeftDenotation extends left with whatever infix/suffix form the
// current token introduces, per the precedence table in precedence.go.
func (p *Parser) parseLeftDenotation(left ast.Node) ast.Node {
	tok := p.peek()
	switch {
	case tok.Type == lexer.TOKEN_EQUAL:
		return p.parseAssignment(left)
	case opAssignNames[tok.Type] != "":
		return p.parseOpAssign(left)
	case tok.Type == lexer.TOKEN_AND_EQUAL:
		p.advance()
		return ast.NewOpAssignAnd(tok, left, p.parseExpression(OPASSIGNMENT))
	case tok.Type == lexer.TOKEN_OR_EQUAL:
		p.advance()
		return ast.NewOpAssignOr(tok, left, p.parseExpression(OPASSIGNMENT))
	case binaryOpNames[tok.Type] != "":
		p.advance()
		right := p.parseExpression(p.peekPrecedenceFor(tok.Type))
		return ast.NewCall(tok, left, binaryOpNames[tok.Type], []ast.Node{right})
	case tok.Type == lexer.TOKEN_MATCH:
		p.advance()
		right := p.parseExpression(EQUALITY)
		return ast.NewMatch(tok, left, right)
	case tok.Type == lexer.TOKEN_NOT_MATCH:
		p.advance()
		right := p.parseExpression(EQUALITY)
		return ast.NewNot(tok, ast.NewMatch(tok, left, right))
	case tok.Type == lexer.TOKEN_AND || tok.Type == lexer.TOKEN_AND_KEYWORD:
		p.advance()
		right := p.parseExpression(LOGICALAND)
		return ast.NewLogicalAnd(tok, left, right)
	case tok.Type == lexer.TOKEN_OR || tok.Type == lexer.TOKEN_OR_KEYWORD:
		p.advance()
		right := p.parseExpression(LOGICALOR)
		return ast.NewLogicalOr(tok, left, right)
	case tok.Type == lexer.TOKEN_DOT_DOT:
		p.advance()
		right := p.parseRangeEnd()
		return ast.NewRange(tok, left, right, false)
	case tok.Type == lexer.TOKEN_DOT_DOT_DOT:
		p.advance()
		right := p.parseRangeEnd()
		return ast.NewRange(tok, left, right, true)
	case tok.Type == lexer.TOKEN_TERNARY_QUESTION:
		return p.parseTernary(left)
	case tok.Type == lexer.TOKEN_DOT:
		return p.parseMethodCall(left, false)
	case tok.Type == lexer.TOKEN_SAFE_NAVIGATION:
		return p.parseMethodCall(left, true)
	case tok.Type == lexer.TOKEN_CONSTANT_RESOLUTION:
		p.advance()
		name := p.consume(lexer.TOKEN_CONSTANT, "constant name")
		return ast.NewColon2(tok, left, name.Lexeme)
	case tok.Type == lexer.TOKEN_LBRACKET:
		return p.parseIndex(left)
	case tok.Type == lexer.TOKEN_IF_KEYWORD:
		p.advance()
		cond := p.parseExpression(LOWEST)
		return ast.NewIf(tok, cond, []ast.Node{left}, nil)
	case tok.Type == lexer.TOKEN_UNLESS_KEYWORD:
		p.advance()
		cond := p.parseExpression(LOWEST)
		return ast.NewIf(tok, ast.NewNot(tok, cond), []ast.Node{left}, nil)
	case tok.Type == lexer.TOKEN_WHILE_KEYWORD:
		p.advance()
		cond := p.parseExpression(LOWEST)
		return ast.NewWhile(tok, cond, []ast.Node{left}, !isBeginNode(left))
	case tok.Type == lexer.TOKEN_UNTIL_KEYWORD:
		p.advance()
		cond := p.parseExpression(LOWEST)
		return ast.NewUntil(tok, cond, []ast.Node{left}, !isBeginNode(left))
	case tok.Type == lexer.TOKEN_RESCUE_KEYWORD:
		return p.parseRescueModifier(left)
	case tok.Type == lexer.TOKEN_LPAREN:
		return p.parseCallOnResult(left)
	case tok.Type == lexer.TOKEN_DO_KEYWORD, tok.Type == lexer.TOKEN_LCURLY_BRACE:
		return p.attachBlock(left)
	default:
		p.errorAt(tok, errors.NewUnexpectedToken(p.loc(tok), p.display(tok), "operator"))
		return left
	}
}

func isBeginNode(n ast.Node) bool {
	_, ok := n.(*ast.BeginNode)
	return ok
}

func (p *Parser) peekPrecedenceFor(t lexer.TokenType) Precedence {
	if prec, ok := precedences[t]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseRangeEnd() ast.Node {
	if p.endsExpression() || p.checkAny(lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET) {
		return nil
	}
	return p.parseExpression(RANGE + 1)
}

// parseAssignment handles `target = value`, desugaring a comma-separated
// target list into a MultipleAssignmentNode and registering every bound
// identifier as local in the current scope.
func (p *Parser) parseAssignment(left ast.Node) ast.Node {
	tok := p.advance()
	value := p.parseExpression(ASSIGNMENT)
	p.registerAssignmentLocals(left)
	return ast.NewAssignment(tok, left, value)
}

func (p *Parser) registerAssignmentLocals(target ast.Node) {
	switch t := target.(type) {
	case *ast.IdentifierNode:
		p.scope.declare(t.Name)
	case *ast.CallNode:
		if t.Receiver == nil {
			p.scope.declare(t.Message)
		}
	case *ast.SplatNode:
		p.registerAssignmentLocals(t.Value)
	case *ast.MultipleAssignmentNode:
		locals := make(map[string]bool)
		t.AddLocals(locals)
		for name := range locals {
			p.scope.declare(name)
		}
	}
}

func (p *Parser) parseOpAssign(left ast.Node) ast.Node {
	tok := p.advance()
	op := opAssignNames[tok.Type]
	value := p.parseExpression(OPASSIGNMENT)
	if call, ok := left.(*ast.CallNode); ok && call.Receiver != nil {
		return ast.NewOpAssignAccessor(tok, call.Receiver, call.Message, op, call.Args, value)
	}
	p.registerAssignmentLocals(left)
	return ast.NewOpAssign(tok, left, op, value)
}

func (p *Parser) parseTernary(left ast.Node) ast.Node {
	tok := p.advance()
	p.skipEOLs()
	thenBranch := p.parseExpression(TERNARY)
	p.skipEOLs()
	p.consume(lexer.TOKEN_TERNARY_COLON, "':'")
	p.skipEOLs()
	elseBranch := p.parseExpression(TERNARY)
	return ast.NewIf(tok, left, []ast.Node{thenBranch}, []ast.Node{elseBranch})
}

// parseMethodCall handles `.message` / `&.message`, with or without a
// parenthesized or parenthesis-less argument list, and an attached block.
func (p *Parser) parseMethodCall(left ast.Node, safe bool) ast.Node {
	tok := p.advance()
	p.skipEOLs()
	var message string
	switch {
	case p.check(lexer.TOKEN_CLASS_KEYWORD):
		message = p.advance().Lexeme
		if message == "" {
			message = "class"
		}
	case p.peek().IsOperator(), p.check(lexer.TOKEN_LBRACKET_RBRACKET), p.check(lexer.TOKEN_LBRACKET_RBRACKET_EQUAL):
		message = p.advance().Lexeme
	default:
		name := p.consume(lexer.TOKEN_BARE_NAME, "method name")
		message = name.Lexeme
	}

	var args []ast.Node
	if p.check(lexer.TOKEN_LPAREN) && !p.peek().WhitespacePrecedes {
		p.advance()
		args = p.parseCallArgs(lexer.TOKEN_RPAREN)
	} else if p.peek().CanBeFirstArgOfImplicitCall() && p.peek().WhitespacePrecedes && !p.endsExpression() {
		args = p.parseImplicitCallArgs()
	}

	var call ast.Node
	if safe {
		call = ast.NewSafeCall(tok, left, message, args)
	} else {
		call = ast.NewCall(tok, left, message, args)
	}
	return p.attachBlock(call)
}

func (p *Parser) parseIndex(left ast.Node) ast.Node {
	tok := p.advance()
	args := p.parseCallArgs(lexer.TOKEN_RBRACKET)
	return ast.NewCall(tok, left, "[]", args)
}

// parseCallOnResult handles `expr(...)`, used when a grouped or otherwise
// parenthesized expression yields something callable (e.g. `foo.()`).
func (p *Parser) parseCallOnResult(left ast.Node) ast.Node {
	tok := p.advance()
	args := p.parseCallArgs(lexer.TOKEN_RPAREN)
	return ast.NewCall(tok, left, "call", args)
}

// parseRescueModifier handles the `expr rescue fallback` statement modifier,
// desugared into a single-rescue BeginNode.
func (p *Parser) parseRescueModifier(left ast.Node) ast.Node {
	tok := p.advance()
	fallback := p.parseExpression(LOWEST)
	begin := ast.NewBegin(tok)
	begin.Body = []ast.Node{left}
	rescue := ast.NewBeginRescue(tok)
	rescue.Body = []ast.Node{fallback}
	begin.RescueNodes = []*ast.BeginRescueNode{rescue}
	return begin
}

// attachBlock consumes a trailing `do...end` or `{...}` block and wraps
// call in an IterNode, or returns call unchanged if none follows.
// attachBlock consumes a trailing `{...}`/`do...end` block and wraps call in
// an IterNode. A block shares the enclosing scope's locals (// blocks are not isolated like method/class/module bodies) but still needs
// its own scope layer so its own parameters don't leak into the caller.
func (p *Parser) attachBlock(call ast.Node) ast.Node {
	tok := p.peek()
	switch tok.Type {
	case lexer.TOKEN_LCURLY_BRACE:
		p.advance()
		p.scope = newScope(p.scope, false)
		params := p.parseBlockParams()
		body := p.parseStatements(func() bool { return p.check(lexer.TOKEN_RCURLY_BRACE) })
		p.scope = p.scope.parent
		p.consume(lexer.TOKEN_RCURLY_BRACE, "'}'")
		return ast.NewIter(tok, call, params, body)
	case lexer.TOKEN_DO_KEYWORD:
		p.advance()
		p.skipEOLs()
		p.scope = newScope(p.scope, false)
		params := p.parseBlockParams()
		body := p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
		p.scope = p.scope.parent
		p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
		return ast.NewIter(tok, call, params, body)
	default:
		return call
	}
}

func (p *Parser) parseBlockParams() []*ast.ArgNode {
	if !p.match(lexer.TOKEN_BITWISE_OR) {
		return nil
	}
	params := p.parseParamList(lexer.TOKEN_BITWISE_OR)
	p.consume(lexer.TOKEN_BITWISE_OR, "'|'")
	return params
}
