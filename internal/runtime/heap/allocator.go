package heap

import "go.uber.org/zap"

// HighLoadThreshold is the per-size-class occupancy above which
// ShouldCollect reports that a collection is due and Collect adds another
// block after its sweep. Allocate itself never collects: a full allocator
// simply grows by a block. Exported so internal/config can tune it
// process-wide before any Heap is constructed; changing it after allocators
// exist is safe since overHighLoadThreshold reads it fresh on every call.
var HighLoadThreshold = 0.90

// Allocator owns every HeapBlock for one size class.
type Allocator struct {
	cellSize int
	blocks   []*HeapBlock
	logger   *zap.Logger
}

func newAllocator(cellSize int, logger *zap.Logger) *Allocator {
	return &Allocator{cellSize: cellSize, logger: logger}
}

// CellSize returns the fixed cell size this allocator serves.
func (a *Allocator) CellSize() int { return a.cellSize }

// TotalCells is the sum of every block's cell count.
func (a *Allocator) TotalCells() int {
	return len(a.blocks) * (BlockSize / a.cellSize)
}

// FreeCells is the sum of every block's free count.
func (a *Allocator) FreeCells() int {
	free := 0
	for _, b := range a.blocks {
		free += b.freeCount
	}
	return free
}

// FreeCellsPercentage reports free capacity as 0-100, matching the
// original's short-int percentage ("free-cell percentage is
// tracked per allocator").
func (a *Allocator) FreeCellsPercentage() int {
	total := a.TotalCells()
	if total == 0 {
		return 0
	}
	return a.FreeCells() * 100 / total
}

// loadFactor is 1 - free fraction: how full this allocator is.
func (a *Allocator) loadFactor() float64 {
	total := a.TotalCells()
	if total == 0 {
		return 0
	}
	return 1 - float64(a.FreeCells())/float64(total)
}

// overHighLoadThreshold reports whether this size class has crossed the
// occupancy mark used to decide when to collect.
func (a *Allocator) overHighLoadThreshold() bool {
	return len(a.blocks) > 0 && a.loadFactor() > HighLoadThreshold
}

// allocate hands out the next free slot for cell, growing the block list if
// every existing block is full.
func (a *Allocator) allocate(cell Cell) Ref {
	for _, b := range a.blocks {
		if b.HasFree() {
			return b.NextFree(cell)
		}
	}
	b := a.addBlock()
	return b.NextFree(cell)
}

func (a *Allocator) addBlock() *HeapBlock {
	b := newHeapBlock(a.cellSize)
	a.blocks = append(a.blocks, b)
	if a.logger != nil {
		a.logger.Debug("heap: added block",
			zap.Int("cell_size", a.cellSize),
			zap.Int("block_count", len(a.blocks)))
	}
	return b
}

// isMyBlock reports whether candidate belongs to this allocator.
func (a *Allocator) isMyBlock(candidate *HeapBlock) bool {
	for _, b := range a.blocks {
		if b == candidate {
			return true
		}
	}
	return false
}

// sweep returns every unmarked in-use cell to its block's free list and
// unmarks the survivors step 3. freed receives each
// collected Cell; Collect only counts them, and no finalizer runs.
func (a *Allocator) sweep(freed *[]Cell) {
	for _, b := range a.blocks {
		indices := make([]int, 0)
		b.Each(func(i int, c Cell) {
			if c.IsVisited() {
				c.Unmark()
			} else {
				indices = append(indices, i)
				*freed = append(*freed, c)
			}
		})
		for _, i := range indices {
			b.FreeCellAt(i)
		}
	}
}
