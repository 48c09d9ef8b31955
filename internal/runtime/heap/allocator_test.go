package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_AddsBlockOnlyWhenNeeded(t *testing.T) {
	a := newAllocator(1024, nil)
	assert.Equal(t, 0, len(a.blocks))
	a.allocate(newTestCell("a"))
	assert.Equal(t, 1, len(a.blocks))
}

func TestAllocator_FreeCellsPercentageIsZeroBeforeFirstBlock(t *testing.T) {
	a := newAllocator(16, nil)
	assert.Equal(t, 0, a.FreeCellsPercentage())
}

func TestAllocator_ReusesFreedSlotBeforeGrowing(t *testing.T) {
	a := newAllocator(1024, nil)
	capacity := BlockSize / 1024
	refs := make([]Ref, 0, capacity)
	for i := 0; i < capacity; i++ {
		refs = append(refs, a.allocate(newTestCell("x")))
	}
	assert.Equal(t, 1, len(a.blocks))

	refs[0].Block().FreeCellAt(refs[0].index)
	a.allocate(newTestCell("y"))
	assert.Equal(t, 1, len(a.blocks), "a freed slot must be reused before a new block is added")
}

func TestAllocator_IsMyBlock(t *testing.T) {
	a := newAllocator(16, nil)
	a.allocate(newTestCell("a"))
	other := newAllocator(16, nil)
	other.allocate(newTestCell("b"))

	assert.True(t, a.isMyBlock(a.blocks[0]))
	assert.False(t, a.isMyBlock(other.blocks[0]))
}

func TestAllocator_SweepFreesUnmarkedCells(t *testing.T) {
	a := newAllocator(16, nil)
	marked := newTestCell("marked")
	unmarked := newTestCell("unmarked")
	a.allocate(marked)
	a.allocate(unmarked)
	marked.Mark()

	var freed []Cell
	a.sweep(&freed)

	assert.Len(t, freed, 1)
	assert.Equal(t, "unmarked", freed[0].(*testCell).name)
	assert.False(t, marked.IsVisited(), "survivors are unmarked after sweep")
}
