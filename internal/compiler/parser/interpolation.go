package parser

import (
	"github.com/natalie-lang/natalie-sub003/internal/compiler/ast"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
)

// parseInterpolatedString, parseInterpolatedRegexp, and parseInterpolatedShell
// consume the Begin/segment/End token run the lexer's post-lexical expansion
// pass (internal/compiler/lexer/interpolation.go) produces for a literal
// containing `#{...}`, reading each #{...} span as its own sub-parse.

func (p *Parser) parseInterpolatedString() ast.Node {
	tok := p.advance()
	segments := p.parseInterpolationSegments(lexer.TOKEN_INTERPOLATED_STRING_END)
	p.consume(lexer.TOKEN_INTERPOLATED_STRING_END, "end of interpolated string")
	return ast.NewInterpolatedString(tok, segments)
}

func (p *Parser) parseInterpolatedRegexp() ast.Node {
	tok := p.advance()
	segments := p.parseInterpolationSegments(lexer.TOKEN_INTERPOLATED_REGEXP_END)
	end := p.consume(lexer.TOKEN_INTERPOLATED_REGEXP_END, "end of interpolated regexp")
	return ast.NewInterpolatedRegexp(tok, segments, end.Options)
}

func (p *Parser) parseInterpolatedShell() ast.Node {
	tok := p.advance()
	segments := p.parseInterpolationSegments(lexer.TOKEN_INTERPOLATED_SHELL_END)
	p.consume(lexer.TOKEN_INTERPOLATED_SHELL_END, "end of interpolated shell command")
	return ast.NewInterpolatedShell(tok, segments)
}

func (p *Parser) parseInterpolationSegments(end lexer.TokenType) []ast.Node {
	var segments []ast.Node
	for !p.check(end) && p.err == nil {
		if p.check(lexer.TOKEN_EVALUATE_TO_STRING_BEGIN) {
			segments = append(segments, p.parseEvaluateToString())
			continue
		}
		t := p.advance()
		segments = append(segments, ast.NewString(t, literalString(t)))
	}
	return segments
}

func (p *Parser) parseEvaluateToString() ast.Node {
	tok := p.advance()
	body := p.parseStatements(func() bool { return p.check(lexer.TOKEN_EVALUATE_TO_STRING_END) })
	p.consume(lexer.TOKEN_EVALUATE_TO_STRING_END, "'}'")
	return ast.NewEvaluateToString(tok, body)
}
