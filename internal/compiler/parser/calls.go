package parser

import (
	"github.com/natalie-lang/natalie-sub003/internal/compiler/ast"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
)

// parseCallArgs parses a comma-separated, parenthesized argument list up to
// (and consuming) closer.
func (p *Parser) parseCallArgs(closer lexer.TokenType) []ast.Node {
	var args []ast.Node
	p.skipEOLs()
	for !p.check(closer) && p.err == nil {
		args = append(args, p.parseCallArg())
		p.skipEOLs()
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
		p.skipEOLs()
	}
	p.consume(closer, closerDisplay(closer))
	return args
}

func closerDisplay(t lexer.TokenType) string {
	switch t {
	case lexer.TOKEN_RPAREN:
		return "')'"
	case lexer.TOKEN_RBRACKET:
		return "']'"
	case lexer.TOKEN_BITWISE_OR:
		return "'|'"
	default:
		return t.String()
	}
}

// parseImplicitCallArgs parses a parenthesis-less argument list: a
// comma-separated run of expressions, starting from a token already known
// to satisfy CanBeFirstArgOfImplicitCall.
func (p *Parser) parseImplicitCallArgs() []ast.Node {
	var args []ast.Node
	for {
		args = append(args, p.parseCallArg())
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}
	return args
}

// parseCallArg parses one argument: a keyword argument (`name: value`), a
// splat (`*value`), a double-splat (`**value`), a block pass (`&value`),
// or a plain expression.
func (p *Parser) parseCallArg() ast.Node {
	tok := p.peek()
	if tok.Type == lexer.TOKEN_SYMBOL_KEY {
		p.advance()
		value := p.parseExpression(CALLARGS)
		return ast.NewKeywordArg(tok, literalString(tok), value)
	}
	if tok.Type == lexer.TOKEN_EXPONENT && p.peekAt(1).Type != lexer.TOKEN_EOL {
		p.advance()
		value := p.parseExpression(CALLARGS)
		return ast.NewKeywordSplat(tok, value)
	}
	if tok.Type == lexer.TOKEN_BITWISE_AND {
		p.advance()
		value := p.parseExpression(CALLARGS)
		return ast.NewBlockPass(tok, value)
	}
	return p.parseExpression(CALLARGS)
}

// parseParamList parses a comma-separated method/block parameter list up to
// (not consuming) closer: required names, `name = default`, `*splat`,
// `**kwsplat`, `name:`/`name: default` keyword params, and `&block`.
func (p *Parser) parseParamList(closer lexer.TokenType) []*ast.ArgNode {
	var params []*ast.ArgNode
	p.skipEOLs()
	for !p.check(closer) && p.err == nil {
		params = append(params, p.parseParam())
		p.scope.declare(params[len(params)-1].Name)
		p.skipEOLs()
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
		p.skipEOLs()
	}
	return params
}

func (p *Parser) parseParam() *ast.ArgNode {
	tok := p.peek()
	switch tok.Type {
	case lexer.TOKEN_MULTIPLY:
		p.advance()
		name := p.parseParamName()
		arg := ast.NewArg(tok, name)
		arg.Splat = true
		return arg
	case lexer.TOKEN_EXPONENT:
		p.advance()
		name := p.parseParamName()
		arg := ast.NewArg(tok, name)
		arg.KwSplat = true
		return arg
	case lexer.TOKEN_BITWISE_AND:
		p.advance()
		name := p.parseParamName()
		arg := ast.NewArg(tok, name)
		arg.Block = true
		return arg
	case lexer.TOKEN_SYMBOL_KEY:
		p.advance()
		arg := ast.NewArg(tok, literalString(tok))
		arg.Keyword = true
		if !p.checkAny(keywordParamTerminators...) {
			arg.Default = p.parseExpression(CALLARGS)
		}
		return arg
	default:
		nameTok := p.consume(lexer.TOKEN_BARE_NAME, "parameter name")
		arg := ast.NewArg(nameTok, nameTok.Lexeme)
		if p.match(lexer.TOKEN_TERNARY_COLON) {
			arg.Keyword = true
			if !p.checkAny(keywordParamTerminators...) {
				arg.Default = p.parseExpression(CALLARGS)
			}
		} else if p.match(lexer.TOKEN_EQUAL) {
			arg.Default = p.parseExpression(CALLARGS)
		}
		return arg
	}
}

var keywordParamTerminators = []lexer.TokenType{lexer.TOKEN_COMMA, lexer.TOKEN_RPAREN, lexer.TOKEN_BITWISE_OR, lexer.TOKEN_EOL}

func (p *Parser) parseParamName() string {
	if p.check(lexer.TOKEN_BARE_NAME) {
		return p.advance().Lexeme
	}
	return ""
}
