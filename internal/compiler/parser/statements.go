package parser

import (
	"github.com/natalie-lang/natalie-sub003/internal/compiler/ast"
	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
)

// parseStatement parses one top-level statement: either a bare expression
// (itself possibly a control-flow prefix form) or a comma-separated
// multiple-assignment target list.
func (p *Parser) parseStatement() ast.Node {
	if p.looksLikeMultipleAssignmentTargets() {
		return p.parseMultipleAssignment()
	}
	return p.parseExpression(LOWEST)
}

// looksLikeMultipleAssignmentTargets scans ahead (without consuming) for a
// `target, target, ... =` pattern at the start of a statement.
func (p *Parser) looksLikeMultipleAssignmentTargets() bool {
	if !p.checkAny(lexer.TOKEN_BARE_NAME, lexer.TOKEN_MULTIPLY, lexer.TOKEN_CONSTANT,
		lexer.TOKEN_INSTANCE_VARIABLE, lexer.TOKEN_GLOBAL_VARIABLE, lexer.TOKEN_CLASS_VARIABLE) {
		return false
	}
	depth := 0
	sawComma := false
	for i := 0; ; i++ {
		t := p.peekAt(i)
		switch t.Type {
		case lexer.TOKEN_LPAREN, lexer.TOKEN_LBRACKET, lexer.TOKEN_LCURLY_BRACE:
			depth++
		case lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET, lexer.TOKEN_RCURLY_BRACE:
			depth--
		case lexer.TOKEN_COMMA:
			if depth == 0 {
				sawComma = true
			}
		case lexer.TOKEN_EQUAL:
			return depth == 0 && sawComma
		case lexer.TOKEN_EOL, lexer.TOKEN_EOF, lexer.TOKEN_SEMICOLON:
			return false
		}
		if depth < 0 {
			return false
		}
	}
}

// parseMultipleAssignment parses `a, b, *c = value` (a masgn), registering
// every bound identifier as local.
func (p *Parser) parseMultipleAssignment() ast.Node {
	tok := p.peek()
	var targets []ast.Node
	for {
		targets = append(targets, p.parseAssignmentTarget())
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}
	p.consume(lexer.TOKEN_EQUAL, "'='")
	value := p.parseExpression(LOWEST)
	if p.check(lexer.TOKEN_COMMA) {
		values := []ast.Node{value}
		for p.match(lexer.TOKEN_COMMA) {
			values = append(values, p.parseExpression(LOWEST))
		}
		value = ast.NewArray(tok, values)
	}
	masgn := ast.NewMultipleAssignment(tok, targets, value)
	locals := make(map[string]bool)
	masgn.AddLocals(locals)
	for name := range locals {
		p.scope.declare(name)
	}
	return masgn
}

func (p *Parser) parseAssignmentTarget() ast.Node {
	if p.check(lexer.TOKEN_MULTIPLY) {
		tok := p.advance()
		if p.checkAny(lexer.TOKEN_COMMA, lexer.TOKEN_EQUAL) {
			return ast.NewSplat(tok, nil)
		}
		return ast.NewSplat(tok, p.parseExpression(OPASSIGNMENT))
	}
	if p.match(lexer.TOKEN_LPAREN) {
		var nested []ast.Node
		for {
			nested = append(nested, p.parseAssignmentTarget())
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
		p.consume(lexer.TOKEN_RPAREN, "')'")
		return ast.NewMultipleAssignment(p.previous(), nested, nil)
	}
	return p.parseExpression(OPASSIGNMENT)
}

// parseIfExpression parses `if cond; then; elsif cond2; ...; else; end`, or
// `unless cond; then; else; end` (negated is true for unless).
func (p *Parser) parseIfExpression(negated bool) ast.Node {
	tok := p.advance()
	cond := p.parseExpression(LOWEST)
	if negated {
		cond = ast.NewNot(tok, cond)
	}
	p.match(lexer.TOKEN_THEN_KEYWORD)
	p.skipEOLs()
	then := p.parseStatements(func() bool {
		return p.checkAny(lexer.TOKEN_ELSIF_KEYWORD, lexer.TOKEN_ELSE_KEYWORD, lexer.TOKEN_END_KEYWORD)
	})
	els := p.parseElseChain()
	p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	return ast.NewIf(tok, cond, then, els)
}

func (p *Parser) parseElseChain() []ast.Node {
	if p.check(lexer.TOKEN_ELSIF_KEYWORD) {
		tok := p.advance()
		cond := p.parseExpression(LOWEST)
		p.match(lexer.TOKEN_THEN_KEYWORD)
		p.skipEOLs()
		then := p.parseStatements(func() bool {
			return p.checkAny(lexer.TOKEN_ELSIF_KEYWORD, lexer.TOKEN_ELSE_KEYWORD, lexer.TOKEN_END_KEYWORD)
		})
		els := p.parseElseChain()
		return []ast.Node{ast.NewIf(tok, cond, then, els)}
	}
	if p.match(lexer.TOKEN_ELSE_KEYWORD) {
		p.skipEOLs()
		return p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
	}
	return nil
}

// parseWhileExpression parses `while cond; body; end` / `until cond; body; end`.
func (p *Parser) parseWhileExpression(negated bool) ast.Node {
	tok := p.advance()
	cond := p.parseExpression(LOWEST)
	p.match(lexer.TOKEN_DO_KEYWORD)
	p.skipEOLs()
	body := p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
	p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	if negated {
		return ast.NewUntil(tok, cond, body, true)
	}
	return ast.NewWhile(tok, cond, body, true)
}

// parseCase parses both `case subject; when ...; end` and, when the body
// opens with `in` instead of `when`, the pattern-matching `case/in` form.
func (p *Parser) parseCase() ast.Node {
	tok := p.advance()
	var subject ast.Node
	if !p.peek().IsEOL() {
		subject = p.parseExpression(CASE)
	}
	p.skipEOLs()

	if p.check(lexer.TOKEN_IN_KEYWORD) {
		return p.parseCaseIn(tok, subject)
	}

	node := ast.NewCase(tok, subject)
	for p.check(lexer.TOKEN_WHEN_KEYWORD) {
		whenTok := p.advance()
		var conditions []ast.Node
		for {
			conditions = append(conditions, p.parseExpression(CASE))
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
			p.skipEOLs()
		}
		p.match(lexer.TOKEN_THEN_KEYWORD)
		p.skipEOLs()
		body := p.parseStatements(func() bool {
			return p.checkAny(lexer.TOKEN_WHEN_KEYWORD, lexer.TOKEN_ELSE_KEYWORD, lexer.TOKEN_END_KEYWORD)
		})
		node.Whens = append(node.Whens, ast.NewCaseWhen(whenTok, conditions, body))
	}
	if p.match(lexer.TOKEN_ELSE_KEYWORD) {
		p.skipEOLs()
		node.Else = p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
	}
	p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	return node
}

func (p *Parser) parseCaseIn(tok lexer.Token, subject ast.Node) ast.Node {
	node := ast.NewCaseIn(tok, subject)
	for p.check(lexer.TOKEN_IN_KEYWORD) {
		inTok := p.advance()
		pattern := p.parsePattern()
		p.match(lexer.TOKEN_THEN_KEYWORD)
		p.skipEOLs()
		body := p.parseStatements(func() bool {
			return p.checkAny(lexer.TOKEN_IN_KEYWORD, lexer.TOKEN_ELSE_KEYWORD, lexer.TOKEN_END_KEYWORD)
		})
		node.Patterns = append(node.Patterns, ast.NewCaseWhen(inTok, []ast.Node{pattern}, body))
	}
	if p.match(lexer.TOKEN_ELSE_KEYWORD) {
		p.skipEOLs()
		node.Else = p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
	}
	p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	return node
}

// parsePattern parses one `in` pattern: an array pattern `[a, b, *rest]`, a
// hash pattern `{a:, b:}`, a pin `^expr`, or a plain binding/literal.
func (p *Parser) parsePattern() ast.Node {
	tok := p.peek()
	switch tok.Type {
	case lexer.TOKEN_LBRACKET:
		return p.parseArrayPattern()
	case lexer.TOKEN_LCURLY_BRACE:
		return p.parseHashPattern()
	case lexer.TOKEN_BITWISE_XOR:
		p.advance()
		if p.match(lexer.TOKEN_LPAREN) {
			inner := p.parseExpression(LOWEST)
			p.consume(lexer.TOKEN_RPAREN, "')'")
			return ast.NewPin(tok, inner)
		}
		return ast.NewPin(tok, p.parseExpression(CASE))
	default:
		return p.parseExpression(CASE)
	}
}

func (p *Parser) parseArrayPattern() ast.Node {
	tok := p.advance()
	var items []ast.Node
	var splat ast.Node
	for !p.check(lexer.TOKEN_RBRACKET) && p.err == nil {
		if p.check(lexer.TOKEN_MULTIPLY) {
			splatTok := p.advance()
			name := p.parseParamName()
			if name != "" {
				p.scope.declare(name)
				splat = ast.NewSplat(splatTok, ast.NewIdentifier(splatTok, name, true))
			} else {
				splat = ast.NewSplat(splatTok, nil)
			}
		} else {
			items = append(items, p.parsePattern())
		}
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}
	p.consume(lexer.TOKEN_RBRACKET, "']'")
	return ast.NewArrayPattern(tok, items, splat)
}

func (p *Parser) parseHashPattern() ast.Node {
	tok := p.advance()
	var keys []string
	var values []ast.Node
	var rest ast.Node
	for !p.check(lexer.TOKEN_RCURLY_BRACE) && p.err == nil {
		if p.check(lexer.TOKEN_EXPONENT) {
			p.advance()
			name := p.parseParamName()
			if name != "" {
				p.scope.declare(name)
				rest = ast.NewIdentifier(tok, name, true)
			}
		} else {
			keyTok := p.consume(lexer.TOKEN_SYMBOL_KEY, "hash pattern key")
			keys = append(keys, literalString(keyTok))
			if p.checkAny(lexer.TOKEN_COMMA, lexer.TOKEN_RCURLY_BRACE) {
				p.scope.declare(literalString(keyTok))
				values = append(values, ast.NewIdentifier(keyTok, literalString(keyTok), true))
			} else {
				values = append(values, p.parsePattern())
			}
		}
		if !p.match(lexer.TOKEN_COMMA) {
			break
		}
	}
	p.consume(lexer.TOKEN_RCURLY_BRACE, "'}'")
	return ast.NewHashPattern(tok, keys, values, rest)
}

// parseBeginExpression parses `begin; body; rescue ...; else ...; ensure
// ...; end`, collapsing the whole form into a single BeginNode.
func (p *Parser) parseBeginExpression() ast.Node {
	tok := p.advance()
	p.skipEOLs()
	node := ast.NewBegin(tok)
	node.Body = p.parseStatements(func() bool {
		return p.checkAny(lexer.TOKEN_RESCUE_KEYWORD, lexer.TOKEN_ELSE_KEYWORD, lexer.TOKEN_ENSURE_KEYWORD, lexer.TOKEN_END_KEYWORD)
	})
	for p.check(lexer.TOKEN_RESCUE_KEYWORD) {
		node.RescueNodes = append(node.RescueNodes, p.parseRescueClause())
	}
	if p.match(lexer.TOKEN_ELSE_KEYWORD) {
		p.skipEOLs()
		node.ElseBody = p.parseStatements(func() bool {
			return p.checkAny(lexer.TOKEN_ENSURE_KEYWORD, lexer.TOKEN_END_KEYWORD)
		})
	}
	if p.match(lexer.TOKEN_ENSURE_KEYWORD) {
		p.skipEOLs()
		node.EnsureBody = p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
	}
	p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	return node
}

func (p *Parser) parseRescueClause() *ast.BeginRescueNode {
	tok := p.advance()
	rescue := ast.NewBeginRescue(tok)
	if !p.checkAny(lexer.TOKEN_HASH_ROCKET, lexer.TOKEN_THEN_KEYWORD, lexer.TOKEN_EOL) {
		for {
			rescue.Exceptions = append(rescue.Exceptions, p.parseExpression(CASE))
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}
	if p.match(lexer.TOKEN_HASH_ROCKET) {
		rescue.Name = p.parseExpression(CASE)
		p.registerAssignmentLocals(rescue.Name)
	}
	p.match(lexer.TOKEN_THEN_KEYWORD)
	p.skipEOLs()
	rescue.Body = p.parseStatements(func() bool {
		return p.checkAny(lexer.TOKEN_RESCUE_KEYWORD, lexer.TOKEN_ELSE_KEYWORD, lexer.TOKEN_ENSURE_KEYWORD, lexer.TOKEN_END_KEYWORD)
	})
	return rescue
}

// parseDef parses `def name(params) ... end` / `def self.name(params) ... end`,
// opening an isolated scope for the body
func (p *Parser) parseDef() ast.Node {
	tok := p.advance()
	selfReceiver := false
	if p.check(lexer.TOKEN_SELF_KEYWORD) && p.peekAt(1).Type == lexer.TOKEN_DOT {
		p.advance()
		p.advance()
		selfReceiver = true
	}
	name := p.parseDefName()

	p.scope = newScope(p.scope, true)
	var params []*ast.ArgNode
	if p.match(lexer.TOKEN_LPAREN) {
		params = p.parseParamList(lexer.TOKEN_RPAREN)
		p.consume(lexer.TOKEN_RPAREN, "')'")
	} else if !p.peek().IsEndOfExpression() {
		params = p.parseParamList(lexer.TOKEN_EOL)
	}
	p.skipEOLs()
	body := p.parseStatements(func() bool {
		return p.checkAny(lexer.TOKEN_RESCUE_KEYWORD, lexer.TOKEN_ENSURE_KEYWORD, lexer.TOKEN_END_KEYWORD)
	})
	if p.checkAny(lexer.TOKEN_RESCUE_KEYWORD, lexer.TOKEN_ENSURE_KEYWORD) {
		body = []ast.Node{p.wrapImplicitBegin(tok, body)}
	}
	p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	p.scope = p.scope.parent

	def := ast.NewDef(tok, name, params, body)
	def.SelfReceiver = selfReceiver
	return def
}

// wrapImplicitBegin handles a def body that runs straight into rescue/ensure
// clauses without an explicit `begin`.
func (p *Parser) wrapImplicitBegin(tok lexer.Token, body []ast.Node) ast.Node {
	node := ast.NewBegin(tok)
	node.Body = body
	for p.check(lexer.TOKEN_RESCUE_KEYWORD) {
		node.RescueNodes = append(node.RescueNodes, p.parseRescueClause())
	}
	if p.match(lexer.TOKEN_ELSE_KEYWORD) {
		p.skipEOLs()
		node.ElseBody = p.parseStatements(func() bool {
			return p.checkAny(lexer.TOKEN_ENSURE_KEYWORD, lexer.TOKEN_END_KEYWORD)
		})
	}
	if p.match(lexer.TOKEN_ENSURE_KEYWORD) {
		p.skipEOLs()
		node.EnsureBody = p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
	}
	return node
}

func (p *Parser) parseDefName() string {
	if p.peek().IsOperator() || p.checkAny(lexer.TOKEN_LBRACKET_RBRACKET, lexer.TOKEN_LBRACKET_RBRACKET_EQUAL) {
		return p.advance().Lexeme
	}
	tok := p.consume(lexer.TOKEN_BARE_NAME, "method name")
	name := tok.Lexeme
	if p.check(lexer.TOKEN_EQUAL) && !p.peek().WhitespacePrecedes {
		p.advance()
		name += "="
	}
	return name
}

// parseClassOrSclass parses `class Name < Super ... end` and the singleton
// reopen form `class << value ... end`.
func (p *Parser) parseClassOrSclass() ast.Node {
	tok := p.advance()
	if p.match(lexer.TOKEN_LEFT_SHIFT) {
		value := p.parseExpression(LOWEST)
		p.skipEOLs()
		p.scope = newScope(p.scope, true)
		body := p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
		p.scope = p.scope.parent
		p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
		return ast.NewSclass(tok, value, body)
	}

	name := p.parseConstantPath()
	var superclass ast.Node
	if p.match(lexer.TOKEN_LESS_THAN) {
		superclass = p.parseExpression(LOWEST)
	}
	p.skipEOLs()
	p.scope = newScope(p.scope, true)
	body := p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
	p.scope = p.scope.parent
	p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	return ast.NewClass(tok, name, superclass, body)
}

// parseModule parses `module Name ... end`.
func (p *Parser) parseModule() ast.Node {
	tok := p.advance()
	name := p.parseConstantPath()
	p.skipEOLs()
	p.scope = newScope(p.scope, true)
	body := p.parseStatements(func() bool { return p.check(lexer.TOKEN_END_KEYWORD) })
	p.scope = p.scope.parent
	p.consume(lexer.TOKEN_END_KEYWORD, "'end'")
	return ast.NewModule(tok, name, body)
}

func (p *Parser) parseConstantPath() ast.Node {
	tok := p.consume(lexer.TOKEN_CONSTANT, "constant name")
	node := ast.Node(ast.NewConstant(tok, tok.Lexeme))
	for p.check(lexer.TOKEN_CONSTANT_RESOLUTION) {
		p.advance()
		next := p.consume(lexer.TOKEN_CONSTANT, "constant name")
		node = ast.NewColon2(tok, node, next.Lexeme)
	}
	return node
}

// parseAlias parses `alias new_name existing_name`.
func (p *Parser) parseAlias() ast.Node {
	tok := p.advance()
	newName := p.parseAliasTarget()
	existingName := p.parseAliasTarget()
	return ast.NewAlias(tok, newName, existingName)
}

func (p *Parser) parseAliasTarget() ast.Node {
	tok := p.peek()
	if tok.Type == lexer.TOKEN_SYMBOL {
		p.advance()
		return ast.NewSymbol(tok, literalString(tok))
	}
	if tok.Type == lexer.TOKEN_GLOBAL_VARIABLE {
		p.advance()
		return ast.NewIdentifier(tok, tok.Lexeme, false)
	}
	p.advance()
	return ast.NewSymbol(tok, tok.Lexeme)
}
