package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntern_SameNameReturnsSamePointer(t *testing.T) {
	a := Intern("foo")
	b := Intern("foo")
	assert.Same(t, a, b)
}

func TestIntern_DifferentNamesReturnDifferentPointers(t *testing.T) {
	a := Intern("foo")
	b := Intern("bar")
	assert.NotSame(t, a, b)
}

func TestSymbol_Name(t *testing.T) {
	s := Intern("hello")
	assert.Equal(t, "hello", s.Name())
}
