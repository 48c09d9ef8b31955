package object

import (
	"unsafe"

	"github.com/natalie-lang/natalie-sub003/internal/runtime/hashmap"
)

// RecursionGuard protects a recursive operation (e.g., inspect on a cyclic
// array) by maintaining a process-wide identity set of "currently visiting"
// instances, backed by a hashmap of pointer identities. The single-threaded
// cooperative scheduling model means the shared set needs no lock.
type RecursionGuard struct {
	instance unsafe.Pointer
}

var recursionSeen = hashmap.NewPointerMap[bool](16)

// NewRecursionGuard builds a guard keyed on instance's identity.
func NewRecursionGuard(instance unsafe.Pointer) *RecursionGuard {
	return &RecursionGuard{instance: instance}
}

// Run invokes fn, passing true if this guard's instance is already being
// visited higher up the call stack, false otherwise. The visiting mark is
// cleared on return regardless of how fn exits.
func (g *RecursionGuard) Run(fn func(isRecursive bool) Value) Value {
	if _, seen := recursionSeen.Get(g.instance); seen {
		return fn(true)
	}
	recursionSeen.Put(g.instance, true)
	defer recursionSeen.Remove(g.instance)
	return fn(false)
}

// PairRecursionGuard is RecursionGuard generalized to an ordered pair,
// guarding mutual recursion (e.g. two arrays comparing equal to each
// other) with a nested hashmap keyed first by instance, then by other.
type PairRecursionGuard struct {
	instance, other unsafe.Pointer
}

var pairRecursionSeen = hashmap.NewPointerMap[*hashmap.Map[unsafe.Pointer, bool]](16)

// NewPairRecursionGuard builds a guard keyed on the ordered pair
// (instance, other).
func NewPairRecursionGuard(instance, other unsafe.Pointer) *PairRecursionGuard {
	return &PairRecursionGuard{instance: instance, other: other}
}

// Run invokes fn, passing true if this exact ordered pair is already being
// visited higher up the call stack.
func (g *PairRecursionGuard) Run(fn func(isRecursive bool) Value) Value {
	if companions, ok := pairRecursionSeen.Get(g.instance); ok {
		if _, seen := companions.Get(g.other); seen {
			return fn(true)
		}
	}

	companions, ok := pairRecursionSeen.Get(g.instance)
	if !ok {
		companions = hashmap.NewPointerMap[bool](4)
		pairRecursionSeen.Put(g.instance, companions)
	}
	companions.Put(g.other, true)
	defer func() {
		companions.Remove(g.other)
		if companions.IsEmpty() {
			pairRecursionSeen.Remove(g.instance)
		}
	}()
	return fn(false)
}
