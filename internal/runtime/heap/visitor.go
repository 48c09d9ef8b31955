package heap

// MarkingVisitor drives the transitive mark phase with an explicit worklist
// rather than recursive VisitChildren calls, so a deep object graph (a long
// linked list, a deeply nested array) cannot blow the Go stack the way naive
// recursion would.
type MarkingVisitor struct {
	stack []Cell
}

// Visit enqueues cell for marking unless it is nil or already marked. This
// early return is what makes the worklist terminate on cyclic graphs.
func (v *MarkingVisitor) Visit(cell Cell) {
	if cell == nil || cell.IsVisited() {
		return
	}
	v.stack = append(v.stack, cell)
}

// VisitAll drains the worklist: pop, mark, ask the cell to enqueue its own
// children, repeat until nothing is left.
func (v *MarkingVisitor) VisitAll() {
	for len(v.stack) > 0 {
		last := len(v.stack) - 1
		cell := v.stack[last]
		v.stack = v.stack[:last]
		if cell.IsVisited() {
			continue
		}
		cell.Mark()
		cell.VisitChildren(v)
	}
}
