package heap

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Heap is the top-level allocator/collector: one Allocator per size class,
// mark-sweep, non-moving, non-generational.
//
// Conservative stack scanning (scan the stack between bottom_of_stack and
// the current frame, treating every aligned word as a candidate pointer)
// has no portable Go equivalent: the language gives no supported way to
// read a goroutine's raw stack words, and Go's own
// runtime already performs its own (real, precise) stack scan that this
// package cannot see or influence. SetBottomOfStack is kept as part of the
// public contract for API fidelity but is inert; Collect instead takes an
// explicit root slice, pushing the conservative-root-gathering
// responsibility onto the caller (the one place in the runtime that
// legitimately knows which Values are live on the Go stack at the GC call
// site). This is recorded as a resolved Open Question in DESIGN.md.
type Heap struct {
	id            uuid.UUID
	allocators    map[int]*Allocator
	bottomOfStack uintptr
	gcDisabled    bool
	logger        *zap.Logger
}

// New builds a Heap with one Allocator per size class in SizeClasses.
// Passing a nil logger disables heap event logging entirely.
func New(logger *zap.Logger) *Heap {
	h := &Heap{
		id:         uuid.New(),
		allocators: make(map[int]*Allocator, len(SizeClasses)),
		logger:     logger,
	}
	for _, size := range SizeClasses {
		h.allocators[size] = newAllocator(size, logger)
	}
	return h
}

// ID is this Heap instance's correlation id, stamped once at construction so
// log lines from concurrent heaps can be told apart.
func (h *Heap) ID() uuid.UUID { return h.id }

// Allocate rounds size up to the nearest size class and hands cell a slot in
// that class's allocator. Panics if size exceeds the largest size class.
//
// Allocate never collects on its own: a load over HighLoadThreshold within
// a size class would normally trigger collection, but that presumes the
// collector can gather its own roots by scanning the stack. This package
// cannot (see the Heap doc comment), so it has no root set to collect with
// at an arbitrary allocation site — blindly sweeping with an empty root set
// here would free every cell the caller hasn't told us about, which is
// worse than not collecting. ShouldCollect reports when that threshold is
// crossed so the caller, which does know its own live roots, can decide
// when to call Collect.
func (h *Heap) Allocate(size int, cell Cell) Ref {
	a := h.findAllocator(size)
	return a.allocate(cell)
}

// ShouldCollect reports whether the size class serving size has crossed
// HighLoadThreshold and a caller-driven Collect call is due.
func (h *Heap) ShouldCollect(size int) bool {
	return h.findAllocator(size).overHighLoadThreshold()
}

func (h *Heap) findAllocator(size int) *Allocator {
	for _, sc := range SizeClasses {
		if sc >= size {
			return h.allocators[sc]
		}
	}
	panic(fmt.Sprintf("heap: allocation of %d bytes exceeds the largest size class (%d)", size, SizeClasses[len(SizeClasses)-1]))
}

// SetBottomOfStack is retained for API fidelity with the heap's public
// contract; see the Heap doc comment for why it cannot drive real
// conservative root gathering in Go.
func (h *Heap) SetBottomOfStack(ptr uintptr) { h.bottomOfStack = ptr }

// DisableGC suppresses Collect for measurement or critical sections.
// EnableGC restores normal collection.
func (h *Heap) DisableGC() { h.gcDisabled = true }
func (h *Heap) EnableGC()  { h.gcDisabled = false }

// Collect performs one mark-sweep cycle from roots: mark
// transitively via a MarkingVisitor, then sweep every allocator, freeing
// every cell that was not reached; freed cells are counted for the debug log
// and are not finalized. A nil/empty roots slice still
// sweeps — every live cell must be reachable from some caller-held root, so
// an empty root set collects everything, matching a full GC with no live
// objects outstanding.
func (h *Heap) Collect(roots []Cell) {
	if h.gcDisabled {
		return
	}
	visitor := &MarkingVisitor{}
	for _, r := range roots {
		visitor.Visit(r)
	}
	visitor.VisitAll()

	var freed []Cell
	for _, sc := range SizeClasses {
		h.allocators[sc].sweep(&freed)
	}

	if h.logger != nil {
		h.logger.Debug("heap: collection complete",
			zap.String("heap_id", h.id.String()),
			zap.Int("roots", len(roots)),
			zap.Int("freed", len(freed)))
	}

	for _, sc := range SizeClasses {
		a := h.allocators[sc]
		if len(a.blocks) > 0 && a.loadFactor() > HighLoadThreshold {
			a.addBlock()
		}
	}
}

// Stats reports free-cell percentage per size class, keyed by cell size.
func (h *Heap) Stats() map[int]int {
	stats := make(map[int]int, len(SizeClasses))
	for _, sc := range SizeClasses {
		stats[sc] = h.allocators[sc].FreeCellsPercentage()
	}
	return stats
}
