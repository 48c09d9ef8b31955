package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonNil_DerefReturnsThePointee(t *testing.T) {
	x := 42
	n := NewNonNil(&x)
	assert.Equal(t, &x, n.Deref())
	assert.Equal(t, 42, *n.Deref())
}

func TestNonNil_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		NewNonNil[int](nil)
	})
}
