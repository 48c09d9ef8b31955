package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxError_Error(t *testing.T) {
	e := NewExpectedToken(Location{File: "a.rb", Line: 3, Column: 5}, "')'", "end of file")
	assert.Equal(t, "a.rb:3:5: expected ')' but found end of file", e.Error())
}

func TestSyntaxError_ToJSON(t *testing.T) {
	e := NewUnterminatedString(Location{File: "a.rb", Line: 1, Column: 1}, "string")
	js, err := e.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, js, `"code": "SYN003"`)
	assert.Contains(t, js, `"file": "a.rb"`)
}

func TestFormatTerminal_IncludesExcerptAndCaret(t *testing.T) {
	e := NewUnexpectedToken(Location{File: "a.rb", Line: 2, Column: 7}, "'end'", "expression")
	e.Excerpt = "  x = end"
	out := FormatTerminal(e)
	assert.True(t, strings.Contains(out, "a.rb:2:7"))
	assert.True(t, strings.Contains(out, "x = end"))
	assert.True(t, strings.Contains(out, "^"))
}

func TestFormatCompact(t *testing.T) {
	e := NewInvalidNumber(Location{File: "a.rb", Line: 1, Column: 1}, "0b")
	assert.Equal(t, `a.rb:1:1: invalid number literal "0b" [SYN004]`, FormatCompact(e))
}
