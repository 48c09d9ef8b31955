package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCell is a minimal Cell used only to exercise the allocator/collector;
// Children lets tests build an arbitrary reference graph.
type testCell struct {
	CellHeader
	name     string
	children []Cell
}

func newTestCell(name string, children ...Cell) *testCell {
	return &testCell{name: name, children: children}
}

func (c *testCell) VisitChildren(visitor *MarkingVisitor) {
	for _, child := range c.children {
		visitor.Visit(child)
	}
}

func TestHeap_AllocateRoundsToSizeClass(t *testing.T) {
	h := New(nil)
	ref := h.Allocate(10, newTestCell("a"))
	require.True(t, ref.Valid())
	assert.Equal(t, 16, ref.Block().cellSize)
}

func TestHeap_AllocateOversizePanics(t *testing.T) {
	h := New(nil)
	assert.Panics(t, func() {
		h.Allocate(2048, newTestCell("too big"))
	})
}

func TestHeap_AllocateGrowsBlocksWhenFull(t *testing.T) {
	h := New(nil)
	a := h.allocators[16]
	capacity := BlockSize / 16
	for i := 0; i < capacity+1; i++ {
		h.Allocate(16, newTestCell("x"))
	}
	assert.Len(t, a.blocks, 2)
}

func TestHeap_CollectSweepsUnreachableCells(t *testing.T) {
	h := New(nil)
	reachable := newTestCell("reachable")
	unreachable := newTestCell("unreachable")
	h.Allocate(16, reachable)
	h.Allocate(16, unreachable)

	h.Collect([]Cell{reachable})

	assert.True(t, reachable.IsVisited() == false, "surviving cells are unmarked after sweep, ready for the next cycle")
	a := h.allocators[16]
	liveCount := 0
	for _, b := range a.blocks {
		b.Each(func(_ int, c Cell) { liveCount++ })
	}
	assert.Equal(t, 1, liveCount)
}

func TestHeap_CollectRetainsTransitiveChildren(t *testing.T) {
	h := New(nil)
	leaf := newTestCell("leaf")
	root := newTestCell("root", leaf)
	h.Allocate(16, root)
	h.Allocate(16, leaf)

	h.Collect([]Cell{root})

	a := h.allocators[16]
	liveCount := 0
	for _, b := range a.blocks {
		b.Each(func(_ int, c Cell) { liveCount++ })
	}
	assert.Equal(t, 2, liveCount, "leaf is reachable transitively through root and must survive")
}

func TestHeap_DisableGCSuppressesCollection(t *testing.T) {
	h := New(nil)
	unreachable := newTestCell("unreachable")
	h.Allocate(16, unreachable)

	h.DisableGC()
	h.Collect([]Cell{})
	h.EnableGC()

	a := h.allocators[16]
	assert.Equal(t, a.TotalCells()-1, a.FreeCells())
}

func TestHeap_RefDereferencesToNilAfterFree(t *testing.T) {
	h := New(nil)
	cell := newTestCell("gone")
	ref := h.Allocate(16, cell)

	h.Collect(nil)

	assert.Nil(t, ref.Cell())
}

func TestHeap_ShouldCollectCrossesThreshold(t *testing.T) {
	h := New(nil)
	capacity := BlockSize / 16
	assert.False(t, h.ShouldCollect(16))
	for i := 0; i < capacity; i++ {
		h.Allocate(16, newTestCell("x"))
	}
	assert.True(t, h.ShouldCollect(16))
}

func TestHeap_StatsReportsPerSizeClass(t *testing.T) {
	h := New(nil)
	h.Allocate(16, newTestCell("a"))
	stats := h.Stats()
	assert.Contains(t, stats, 16)
	assert.Contains(t, stats, 1024)
}
