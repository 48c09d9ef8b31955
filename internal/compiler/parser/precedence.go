package parser

import "github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"

// Precedence orders operators low to high
type Precedence int

const (
	LOWEST Precedence = iota
	ARRAY
	HASH
	EXPRMODIFIER
	CASE
	SPLAT
	CALLARGS
	COMPOSITION
	ASSIGNMENT
	OPASSIGNMENT
	RANGE
	TERNARY
	ITER
	LOGICALNOT
	LOGICALOR
	LOGICALAND
	EQUALITY
	LESSGREATER
	BITWISEOR
	BITWISEAND
	BITWISESHIFT
	DEFARGS
	SUM
	PRODUCT
	PREFIX
	CONSTANTRESOLUTION
	UNARY
	EXPONENT
	DOT
	CALL
	REF
)

// precedences maps a token type to the precedence it binds at when used as
// a left-denotation (infix/suffix) operator. Tokens absent from this map
// have no left-denotation and can only begin an expression (or end one).
var precedences = map[lexer.TokenType]Precedence{
	lexer.TOKEN_EQUAL:                  ASSIGNMENT,
	lexer.TOKEN_PLUS_EQUAL:             OPASSIGNMENT,
	lexer.TOKEN_MINUS_EQUAL:            OPASSIGNMENT,
	lexer.TOKEN_MULTIPLY_EQUAL:         OPASSIGNMENT,
	lexer.TOKEN_DIVIDE_EQUAL:           OPASSIGNMENT,
	lexer.TOKEN_MODULUS_EQUAL:          OPASSIGNMENT,
	lexer.TOKEN_EXPONENT_EQUAL:         OPASSIGNMENT,
	lexer.TOKEN_LEFT_SHIFT_EQUAL:       OPASSIGNMENT,
	lexer.TOKEN_RIGHT_SHIFT_EQUAL:      OPASSIGNMENT,
	lexer.TOKEN_BITWISE_AND_EQUAL:      OPASSIGNMENT,
	lexer.TOKEN_BITWISE_OR_EQUAL:       OPASSIGNMENT,
	lexer.TOKEN_BITWISE_XOR_EQUAL:      OPASSIGNMENT,
	lexer.TOKEN_AND_EQUAL:              OPASSIGNMENT,
	lexer.TOKEN_OR_EQUAL:               OPASSIGNMENT,
	lexer.TOKEN_DOT_DOT:                RANGE,
	lexer.TOKEN_DOT_DOT_DOT:            RANGE,
	lexer.TOKEN_TERNARY_QUESTION:       TERNARY,
	lexer.TOKEN_OR_KEYWORD:             LOGICALOR,
	lexer.TOKEN_OR:                     LOGICALOR,
	lexer.TOKEN_AND_KEYWORD:            LOGICALAND,
	lexer.TOKEN_AND:                    LOGICALAND,
	lexer.TOKEN_EQUAL_EQUAL:            EQUALITY,
	lexer.TOKEN_EQUAL_EQUAL_EQUAL:      EQUALITY,
	lexer.TOKEN_NOT_EQUAL:              EQUALITY,
	lexer.TOKEN_MATCH:                  EQUALITY,
	lexer.TOKEN_NOT_MATCH:              EQUALITY,
	lexer.TOKEN_LESS_THAN:              LESSGREATER,
	lexer.TOKEN_LESS_THAN_OR_EQUAL:     LESSGREATER,
	lexer.TOKEN_GREATER_THAN:           LESSGREATER,
	lexer.TOKEN_GREATER_THAN_OR_EQUAL:  LESSGREATER,
	lexer.TOKEN_COMPARISON:             LESSGREATER,
	lexer.TOKEN_BITWISE_OR:             BITWISEOR,
	lexer.TOKEN_BITWISE_XOR:            BITWISEOR,
	lexer.TOKEN_BITWISE_AND:            BITWISEAND,
	lexer.TOKEN_LEFT_SHIFT:             BITWISESHIFT,
	lexer.TOKEN_RIGHT_SHIFT:            BITWISESHIFT,
	lexer.TOKEN_PLUS:                   SUM,
	lexer.TOKEN_MINUS:                  SUM,
	lexer.TOKEN_MULTIPLY:               PRODUCT,
	lexer.TOKEN_DIVIDE:                 PRODUCT,
	lexer.TOKEN_MODULUS:                PRODUCT,
	lexer.TOKEN_EXPONENT:               EXPONENT,
	lexer.TOKEN_CONSTANT_RESOLUTION:    CONSTANTRESOLUTION,
	lexer.TOKEN_DOT:                    DOT,
	lexer.TOKEN_SAFE_NAVIGATION:        DOT,
	lexer.TOKEN_LPAREN:                 CALL,
	lexer.TOKEN_LBRACKET:               REF,
	lexer.TOKEN_IF_KEYWORD:             EXPRMODIFIER,
	lexer.TOKEN_UNLESS_KEYWORD:         EXPRMODIFIER,
	lexer.TOKEN_WHILE_KEYWORD:          EXPRMODIFIER,
	lexer.TOKEN_UNTIL_KEYWORD:          EXPRMODIFIER,
	lexer.TOKEN_RESCUE_KEYWORD:         EXPRMODIFIER,
	lexer.TOKEN_DO_KEYWORD:             ITER,
	lexer.TOKEN_LCURLY_BRACE:           ITER,
}

func (p *Parser) peekPrecedence() Precedence {
	if prec, ok := precedences[p.peek().Type]; ok {
		return prec
	}
	return LOWEST
}
