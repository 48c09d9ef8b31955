package object

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestRecursionGuard_FirstRunIsNotRecursive(t *testing.T) {
	var x int
	g := NewRecursionGuard(unsafe.Pointer(&x))
	var seenRecursive bool
	g.Run(func(isRecursive bool) Value {
		seenRecursive = isRecursive
		return nil
	})
	assert.False(t, seenRecursive)
}

func TestRecursionGuard_NestedRunOnSameInstanceIsRecursive(t *testing.T) {
	var x int
	g := NewRecursionGuard(unsafe.Pointer(&x))
	var innerSeenRecursive bool
	g.Run(func(isRecursive bool) Value {
		g.Run(func(inner bool) Value {
			innerSeenRecursive = inner
			return nil
		})
		return nil
	})
	assert.True(t, innerSeenRecursive)
}

func TestRecursionGuard_MarkIsClearedAfterRun(t *testing.T) {
	var x int
	g := NewRecursionGuard(unsafe.Pointer(&x))
	g.Run(func(bool) Value { return nil })

	var secondRunRecursive bool
	g.Run(func(isRecursive bool) Value {
		secondRunRecursive = isRecursive
		return nil
	})
	assert.False(t, secondRunRecursive, "the mark must not leak past the Run call that set it")
}

func TestRecursionGuard_DistinctInstancesDoNotInterfere(t *testing.T) {
	var x, y int
	gx := NewRecursionGuard(unsafe.Pointer(&x))
	gy := NewRecursionGuard(unsafe.Pointer(&y))

	var yRecursiveWhileXRunning bool
	gx.Run(func(bool) Value {
		gy.Run(func(isRecursive bool) Value {
			yRecursiveWhileXRunning = isRecursive
			return nil
		})
		return nil
	})
	assert.False(t, yRecursiveWhileXRunning)
}

func TestPairRecursionGuard_OrderMatters(t *testing.T) {
	var a, b int
	pa, pb := unsafe.Pointer(&a), unsafe.Pointer(&b)

	g1 := NewPairRecursionGuard(pa, pb)
	var reversedPairRecursive bool
	g1.Run(func(bool) Value {
		g2 := NewPairRecursionGuard(pb, pa)
		g2.Run(func(isRecursive bool) Value {
			reversedPairRecursive = isRecursive
			return nil
		})
		return nil
	})
	assert.False(t, reversedPairRecursive, "(b,a) is a different ordered pair than (a,b)")
}

func TestPairRecursionGuard_SamePairIsRecursive(t *testing.T) {
	var a, b int
	pa, pb := unsafe.Pointer(&a), unsafe.Pointer(&b)

	g := NewPairRecursionGuard(pa, pb)
	var innerRecursive bool
	g.Run(func(bool) Value {
		again := NewPairRecursionGuard(pa, pb)
		again.Run(func(isRecursive bool) Value {
			innerRecursive = isRecursive
			return nil
		})
		return nil
	})
	assert.True(t, innerRecursive)
}
