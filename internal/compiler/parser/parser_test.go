package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natalie-lang/natalie-sub003/internal/compiler/lexer"
)

func parseSource(t *testing.T, source string) *Parser {
	t.Helper()
	toks, lexErrs := lexer.New(source, "test.rb").Tokens()
	require.Empty(t, lexErrs)
	return New(toks, "test.rb")
}

func treeSexp(t *testing.T, source string) string {
	t.Helper()
	p := parseSource(t, source)
	tree, err := p.Tree()
	require.Nil(t, err, "unexpected syntax error: %v", err)
	return tree.ToSexp().String()
}

func TestParser_IntegerLiteral(t *testing.T) {
	assert.Equal(t, "(:lit 42)", treeSexp(t, "42"))
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	// 1 + 2 * 3 must bind as 1 + (2 * 3), not (1 + 2) * 3.
	got := treeSexp(t, "1 + 2 * 3")
	want := `(:call (:lit 1) "+" (:call (:lit 2) "*" (:lit 3)))`
	assert.Equal(t, want, got)
}

func TestParser_ExponentLeftAssociative(t *testing.T) {
	got := treeSexp(t, "2 ** 3 ** 2")
	want := `(:call (:call (:lit 2) "**" (:lit 3)) "**" (:lit 2))`
	assert.Equal(t, want, got)
}

func TestParser_AssignmentRightAssociative(t *testing.T) {
	got := treeSexp(t, "a = b = 1")
	want := `(:asgn (:call nil "a") (:asgn (:call nil "b") (:lit 1)))`
	assert.Equal(t, got, want)
}

func TestParser_BareNameBeforeAssignment_IsCall(t *testing.T) {
	got := treeSexp(t, "foo")
	assert.Equal(t, `(:call nil "foo")`, got)
}

func TestParser_BareNameAfterAssignment_IsLocal(t *testing.T) {
	// Once `x` has appeared on the left of an assignment in this scope, a
	// later bare reference to `x` parses as a local-variable read, not a
	// zero-arg method call.
	p := parseSource(t, "x = 1\nx")
	tree, err := p.Tree()
	require.Nil(t, err)
	require.Len(t, tree.Statements, 2)
	assert.Equal(t, `(:lvar "x")`, tree.Statements[1].ToSexp().String())
}

func TestParser_ImplicitCallArgsWithoutParens(t *testing.T) {
	got := treeSexp(t, "puts 1, 2")
	want := `(:call nil "puts" (:lit 1) (:lit 2))`
	assert.Equal(t, want, got)
}

func TestParser_MethodCallWithReceiver(t *testing.T) {
	got := treeSexp(t, "foo.bar(1)")
	want := `(:call (:call nil "foo") "bar" (:lit 1))`
	assert.Equal(t, want, got)
}

func TestParser_SafeNavigation(t *testing.T) {
	got := treeSexp(t, "foo&.bar")
	want := `(:safe_call (:call nil "foo") "bar")`
	assert.Equal(t, got, want)
}

func TestParser_IfExpression(t *testing.T) {
	got := treeSexp(t, "if true\n  1\nelse\n  2\nend")
	want := "(:if (:true) (:then (:lit 1)) (:else (:lit 2)))"
	assert.Equal(t, want, got)
}

func TestParser_IfModifier(t *testing.T) {
	got := treeSexp(t, "1 if true")
	want := "(:if (:true) (:then (:lit 1)))"
	assert.Equal(t, want, got)
}

func TestParser_UnlessModifierNegatesCondition(t *testing.T) {
	got := treeSexp(t, "1 unless true")
	want := "(:if (:not (:true)) (:then (:lit 1)))"
	assert.Equal(t, want, got)
}

func TestParser_WhileLoop(t *testing.T) {
	got := treeSexp(t, "while true\n  1\nend")
	want := "(:while (:true) (:body (:lit 1)) true)"
	assert.Equal(t, got, want)
}

func TestParser_TernaryExpression(t *testing.T) {
	got := treeSexp(t, "true ? 1 : 2")
	want := "(:if (:true) (:then (:lit 1)) (:else (:lit 2)))"
	assert.Equal(t, got, want)
}

func TestParser_RangeInclusiveAndExclusive(t *testing.T) {
	assert.Equal(t, "(:irange (:lit 1) (:lit 5))", treeSexp(t, "1..5"))
	assert.Equal(t, "(:erange (:lit 1) (:lit 5))", treeSexp(t, "1...5"))
}

func TestParser_ArrayLiteral(t *testing.T) {
	got := treeSexp(t, "[1, 2, 3]")
	want := "(:array (:lit 1) (:lit 2) (:lit 3))"
	assert.Equal(t, got, want)
}

func TestParser_HashLiteralWithSymbolKeys(t *testing.T) {
	got := treeSexp(t, "{a: 1, b: 2}")
	want := `(:hash (:sym "a") (:lit 1) (:sym "b") (:lit 2))`
	assert.Equal(t, got, want)
}

func TestParser_KeywordArgumentInCall(t *testing.T) {
	got := treeSexp(t, "foo(a: 1, b: 2)")
	want := `(:call nil "foo" (:kwarg "a" (:lit 1)) (:kwarg "b" (:lit 2)))`
	assert.Equal(t, want, got)
}

func TestParser_DoubleSplatInHashLiteral(t *testing.T) {
	got := treeSexp(t, "{a: 1, **opts}")
	want := `(:hash (:sym "a") (:lit 1) nil (:kwsplat (:call nil "opts")))`
	assert.Equal(t, want, got)
}

func TestParser_MultipleAssignment(t *testing.T) {
	got := treeSexp(t, "a, b = 1, 2")
	assert.Contains(t, got, ":masgn")
}

func TestParser_DefWithParams(t *testing.T) {
	got := treeSexp(t, "def add(a, b)\n  a + b\nend")
	want := `(:def "add" (:args (:arg "a") (:arg "b")) (:body (:call (:lvar "a") "+" (:lvar "b"))))`
	assert.Equal(t, got, want)
}

func TestParser_ClassWithSuperclass(t *testing.T) {
	got := treeSexp(t, "class Dog < Animal\nend")
	want := "(:class (:const \"Dog\") (:const \"Animal\") (:body))"
	assert.Equal(t, got, want)
}

func TestParser_BlockAttachesToCall(t *testing.T) {
	got := treeSexp(t, "items.each do |x|\n  x\nend")
	want := `(:iter (:call (:call nil "items") "each") (:args (:arg "x")) (:body (:lvar "x")))`
	assert.Equal(t, got, want)
}

func TestParser_BeginRescue(t *testing.T) {
	got := treeSexp(t, "begin\n  1\nrescue StandardError => e\n  2\nend")
	assert.Contains(t, got, ":resbody")
	assert.Contains(t, got, ":begin")
}

func TestParser_CaseWhen(t *testing.T) {
	got := treeSexp(t, "case x\nwhen 1\n  :one\nwhen 2\n  :two\nend")
	assert.Contains(t, got, ":case")
	assert.Contains(t, got, ":when")
}

func TestParser_UnexpectedTokenHaltsImmediately(t *testing.T) {
	// The parser halts at the first error; there is no panic-mode recovery
	// or synchronization to a later statement boundary.
	p := parseSource(t, "1 +")
	tree, err := p.Tree()
	assert.Nil(t, tree)
	require.NotNil(t, err)
	assert.Equal(t, "SYN001", string(err.Code))
}

func TestParser_MissingClosingParenIsSyntaxError(t *testing.T) {
	p := parseSource(t, "foo(1, 2")
	tree, err := p.Tree()
	assert.Nil(t, tree)
	require.NotNil(t, err)
	assert.Equal(t, "SYN002", string(err.Code))
}
