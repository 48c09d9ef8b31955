// Package parser implements the Pratt-style parser that turns a lexer
// token stream into the AST defined in internal/compiler/ast.
package parser

import (
	"github.com/natalie-lang/natalie-sub003/internal/compiler/ast"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/errors"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
)

// scope tracks the set of identifiers known to be local variables in one
// lexical scope Blocks share their enclosing scope's
// reads (parent != nil, isolated == false); method/class/module bodies
// start a fresh, isolated scope that cannot see outer locals.
type scope struct {
	locals   map[string]bool
	parent   *scope
	isolated bool
}

func newScope(parent *scope, isolated bool) *scope {
	return &scope{locals: make(map[string]bool), parent: parent, isolated: isolated}
}

func (s *scope) declare(name string) { s.locals[name] = true }

func (s *scope) isLocal(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.locals[name] {
			return true
		}
		if cur.isolated {
			break
		}
	}
	return false
}

// Parser transforms a token stream into an AST, halting at the first
// syntax error — there is no panic-mode recovery.
type Parser struct {
	tokens  []lexer.Token
	current int
	file    string
	scope   *scope
	err     *errors.SyntaxError
}

// New creates a parser for the given token stream. file is used only for
// error messages (the tokens already carry their own File field).
func New(tokens []lexer.Token, file string) *Parser {
	return &Parser{tokens: tokens, file: file, scope: newScope(nil, true)}
}

// Tree parses the whole token stream and returns the root BlockNode, or
// nil plus the first syntax error encountered.
func (p *Parser) Tree() (*ast.BlockNode, *errors.SyntaxError) {
	start := p.peek()
	body := p.parseStatements(func() bool { return p.isAtEnd() })
	if p.err != nil {
		return nil, p.err
	}
	return ast.NewBlock(start, body), nil
}

// parseStatements parses statements until stop() reports true or an error
// occurs, skipping blank statement separators between them.
func (p *Parser) parseStatements(stop func() bool) []ast.Node {
	var statements []ast.Node
	for !stop() && p.err == nil {
		for p.check(lexer.TOKEN_EOL) {
			p.advance()
		}
		if stop() || p.err != nil {
			break
		}
		stmt := p.parseStatement()
		if p.err != nil {
			return statements
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
		if !p.check(lexer.TOKEN_EOL) && !stop() {
			p.errorAt(p.peek(), errors.NewUnexpectedToken(p.loc(p.peek()), p.display(p.peek()), "statement"))
			return statements
		}
		for p.check(lexer.TOKEN_EOL) {
			p.advance()
		}
	}
	return statements
}

// Token stream navigation: peek/previous/advance/check/match/consume/isAtEnd,
// underneath the Pratt dispatch this package adds on top.

func (p *Parser) peek() lexer.Token {
	if p.current >= len(p.tokens) {
		if len(p.tokens) > 0 {
			return p.tokens[len(p.tokens)-1]
		}
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.current + offset
	if idx < 0 || idx >= len(p.tokens) {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[idx]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return lexer.Token{Type: lexer.TOKEN_EOF}
	}
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == t
}

func (p *Parser) checkAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			return true
		}
	}
	return false
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	if p.checkAny(types...) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, expected string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAt(p.peek(), errors.NewExpectedToken(p.loc(p.peek()), expected, p.display(p.peek())))
	return lexer.Token{Type: lexer.TOKEN_INVALID}
}

func (p *Parser) isAtEnd() bool {
	return p.current >= len(p.tokens) || p.tokens[p.current].Type == lexer.TOKEN_EOF
}

func (p *Parser) loc(tok lexer.Token) errors.Location {
	file := tok.File
	if file == "" {
		file = p.file
	}
	return errors.Location{File: file, Line: tok.Line, Column: tok.Column}
}

func (p *Parser) display(tok lexer.Token) string {
	if v := tok.Type.DisplayValue(); v != "" {
		return "'" + v + "'"
	}
	if tok.Lexeme != "" {
		return "'" + tok.Lexeme + "'"
	}
	return tok.Type.String()
}

// errorAt records the first syntax error; subsequent calls are no-ops so
// the first failure always wins.
func (p *Parser) errorAt(tok lexer.Token, err *errors.SyntaxError) {
	if p.err != nil {
		return
	}
	p.err = err
}
