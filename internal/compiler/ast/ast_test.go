package ast

import (
	"testing"

	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tok(typ lexer.TokenType, lexeme string) lexer.Token {
	return lexer.Token{Type: typ, Lexeme: lexeme, File: "test.rb", Line: 1, Column: 1}
}

func TestIntegerNode_ToSexp(t *testing.T) {
	n := NewInteger(tok(lexer.TOKEN_INTEGER, "42"), 42)
	assert.Equal(t, "(:lit 42)", n.ToSexp().String())
	assert.Equal(t, Integer, n.Type())
}

func TestCallNode_ToSexp_ImplicitSelf(t *testing.T) {
	n := NewCall(tok(lexer.TOKEN_BARE_NAME, "foo"), nil, "foo", nil)
	assert.Equal(t, "(:call nil \"foo\")", n.ToSexp().String())
}

func TestCallNode_ToSexp_WithReceiverAndArgs(t *testing.T) {
	recv := NewIdentifier(tok(lexer.TOKEN_BARE_NAME, "x"), "x", true)
	arg := NewInteger(tok(lexer.TOKEN_INTEGER, "1"), 1)
	n := NewCall(tok(lexer.TOKEN_DOT, "."), recv, "bar", []Node{arg})
	require.Equal(t, `(:call (:lvar "x") "bar" (:lit 1))`, n.ToSexp().String())
}

func TestIfNode_ToSexp(t *testing.T) {
	cond := NewTrue(tok(lexer.TOKEN_TRUE_KEYWORD, "true"))
	then := []Node{NewInteger(tok(lexer.TOKEN_INTEGER, "1"), 1)}
	n := NewIf(tok(lexer.TOKEN_IF_KEYWORD, "if"), cond, then, nil)
	assert.Equal(t, "(:if (:true) (:then (:lit 1)))", n.ToSexp().String())
}

func TestRangeNode_ToSexp_InclusiveAndExclusive(t *testing.T) {
	first := NewInteger(tok(lexer.TOKEN_INTEGER, "1"), 1)
	last := NewInteger(tok(lexer.TOKEN_INTEGER, "10"), 10)
	incl := NewRange(tok(lexer.TOKEN_DOT_DOT, ".."), first, last, false)
	excl := NewRange(tok(lexer.TOKEN_DOT_DOT_DOT, "..."), first, last, true)
	assert.Equal(t, "(:irange (:lit 1) (:lit 10))", incl.ToSexp().String())
	assert.Equal(t, "(:erange (:lit 1) (:lit 10))", excl.ToSexp().String())
}

func TestMultipleAssignmentNode_AddLocals(t *testing.T) {
	a := NewIdentifier(tok(lexer.TOKEN_BARE_NAME, "a"), "a", false)
	rest := NewSplat(tok(lexer.TOKEN_MULTIPLY, "*"), NewIdentifier(tok(lexer.TOKEN_BARE_NAME, "rest"), "rest", false))
	n := NewMultipleAssignment(tok(lexer.TOKEN_COMMA, ","), []Node{a, rest}, nil)

	locals := map[string]bool{}
	n.AddLocals(locals)
	assert.True(t, locals["a"])
	assert.True(t, locals["rest"])
}

func TestNilSexpNode_ToSexp_IsNil(t *testing.T) {
	n := NewNilSexp(tok(lexer.TOKEN_EOF, ""))
	assert.Nil(t, n.ToSexp())
}

func TestSuperNode_ToSexp_Zsuper(t *testing.T) {
	n := NewSuper(tok(lexer.TOKEN_SUPER_KEYWORD, "super"), nil, false)
	assert.Equal(t, "(:zsuper)", n.ToSexp().String())
}
