package heap

// BlockSize is the alignment and size of every HeapBlock: 32 KiB. A C
// allocator can recover a block header from any cell pointer by masking the
// pointer with ~(BlockSize-1); Go gives no safe, portable way to do that kind
// of address arithmetic over memory its own runtime manages (see DESIGN.md),
// so HeapBlock instead hands back a Ref that already carries its owning
// block — the masking trick's invariant ("recover the block from the cell")
// is preserved, just through an explicit field rather than pointer-bit
// surgery.
const BlockSize = 32 * 1024

// SizeClasses are the seven fixed cell sizes every Allocator is keyed by.
var SizeClasses = []int{16, 32, 64, 128, 256, 512, 1024}

// HeapBlock is a fixed-size-cell arena: a used-bit per cell plus an implicit
// free list recovered by scanning that bitmap.
type HeapBlock struct {
	cellSize   int
	totalCount int
	freeCount  int
	used       []bool
	slots      []Cell
}

func newHeapBlock(cellSize int) *HeapBlock {
	total := BlockSize / cellSize
	return &HeapBlock{
		cellSize:   cellSize,
		totalCount: total,
		freeCount:  total,
		used:       make([]bool, total),
		slots:      make([]Cell, total),
	}
}

// HasFree reports whether this block has at least one unused cell.
func (b *HeapBlock) HasFree() bool { return b.freeCount > 0 }

// NextFree scans the used-bitmap for the first unused cell, marks it
// in-use, and returns a Ref to it. Panics if the block is full; callers must
// check HasFree first.
func (b *HeapBlock) NextFree(cell Cell) Ref {
	for i := 0; i < b.totalCount; i++ {
		if !b.used[i] {
			b.used[i] = true
			b.freeCount--
			b.slots[i] = cell
			return Ref{block: b, index: i}
		}
	}
	panic("heap: NextFree called on a full block")
}

// CellInUse reports whether the bit for index is set in the used map.
func (b *HeapBlock) CellInUse(index int) bool {
	return index >= 0 && index < b.totalCount && b.used[index]
}

// FreeCellAt clears the used bit and slot for index, returning it to the
// implicit free list.
func (b *HeapBlock) FreeCellAt(index int) {
	if !b.used[index] {
		return
	}
	b.used[index] = false
	b.slots[index] = nil
	b.freeCount++
}

// Each invokes fn for every in-use cell in the block.
func (b *HeapBlock) Each(fn func(index int, cell Cell)) {
	for i, inUse := range b.used {
		if inUse {
			fn(i, b.slots[i])
		}
	}
}

// Ref is the allocator-facing stand-in for "a pointer into a HeapBlock": it
// names the owning block and the cell's index within it, which is how this
// port recovers block ownership instead of masking a raw address.
type Ref struct {
	block *HeapBlock
	index int
}

// Valid reports whether r names a real cell (the zero Ref does not).
func (r Ref) Valid() bool { return r.block != nil }

// Cell dereferences the Ref, returning nil if the cell has since been freed.
func (r Ref) Cell() Cell {
	if r.block == nil || !r.block.CellInUse(r.index) {
		return nil
	}
	return r.block.slots[r.index]
}

// Block returns the HeapBlock that owns this Ref — the Go-idiomatic
// replacement for HeapBlock::from_cell's pointer-masking trick.
func (r Ref) Block() *HeapBlock { return r.block }
