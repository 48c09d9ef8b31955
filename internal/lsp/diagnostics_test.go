package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose_ValidSourceProducesNoDiagnostics(t *testing.T) {
	diags := diagnose("valid.rb", "1 + 2")
	assert.Empty(t, diags)
}

func TestDiagnose_UnterminatedStringProducesLexDiagnostic(t *testing.T) {
	diags := diagnose("bad.rb", `"unterminated`)
	require.NotEmpty(t, diags)
	assert.Equal(t, "natalie-lexer", diags[0].Source)
}

func TestDiagnose_UnbalancedParenProducesSyntaxDiagnostic(t *testing.T) {
	diags := diagnose("bad.rb", "foo(1, 2")
	require.NotEmpty(t, diags)

	found := false
	for _, d := range diags {
		if d.Source == "natalie-parser" {
			found = true
		}
	}
	assert.True(t, found, "expected a natalie-parser diagnostic among %v", diags)
}

func TestDiagnose_ParsingHaltsAtFirstSyntaxError(t *testing.T) {
	diags := diagnose("bad.rb", "foo(1, 2")
	count := 0
	for _, d := range diags {
		if d.Source == "natalie-parser" {
			count++
		}
	}
	assert.LessOrEqual(t, count, 1)
}

func TestLspLine_ConvertsOneBasedToZeroBased(t *testing.T) {
	assert.Equal(t, uint32(0), lspLine(1))
	assert.Equal(t, uint32(9), lspLine(10))
	assert.Equal(t, uint32(0), lspLine(0))
}

func TestLspColumn_ConvertsOneBasedToZeroBased(t *testing.T) {
	assert.Equal(t, uint32(0), lspColumn(1))
	assert.Equal(t, uint32(4), lspColumn(5))
	assert.Equal(t, uint32(0), lspColumn(-1))
}
