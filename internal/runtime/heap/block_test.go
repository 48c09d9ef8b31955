package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapBlock_TotalCountMatchesSizeClass(t *testing.T) {
	b := newHeapBlock(64)
	assert.Equal(t, BlockSize/64, b.totalCount)
	assert.True(t, b.HasFree())
}

func TestHeapBlock_NextFreeMarksCellInUse(t *testing.T) {
	b := newHeapBlock(16)
	ref := b.NextFree(newTestCell("a"))
	require.True(t, ref.Valid())
	assert.True(t, b.CellInUse(ref.index))
	assert.Equal(t, b.totalCount-1, b.freeCount)
}

func TestHeapBlock_FreeCellAtReturnsSlotToFreeList(t *testing.T) {
	b := newHeapBlock(16)
	ref := b.NextFree(newTestCell("a"))
	b.FreeCellAt(ref.index)
	assert.False(t, b.CellInUse(ref.index))
	assert.Equal(t, b.totalCount, b.freeCount)
}

func TestHeapBlock_NextFreePanicsWhenFull(t *testing.T) {
	b := newHeapBlock(BlockSize) // a single-cell block, trivial to fill
	b.NextFree(newTestCell("only"))
	assert.False(t, b.HasFree())
	assert.Panics(t, func() { b.NextFree(newTestCell("overflow")) })
}

func TestRef_BlockRecoversOwningBlockWithoutAddressMasking(t *testing.T) {
	b := newHeapBlock(16)
	ref := b.NextFree(newTestCell("a"))
	assert.Same(t, b, ref.Block())
}

func TestRef_CellReturnsNilOnceFreed(t *testing.T) {
	b := newHeapBlock(16)
	cell := newTestCell("a")
	ref := b.NextFree(cell)
	require.Equal(t, cell, ref.Cell())
	b.FreeCellAt(ref.index)
	assert.Nil(t, ref.Cell())
}
