package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkingVisitor_MarksTransitiveChildren(t *testing.T) {
	leaf := newTestCell("leaf")
	middle := newTestCell("middle", leaf)
	root := newTestCell("root", middle)

	v := &MarkingVisitor{}
	v.Visit(root)
	v.VisitAll()

	assert.True(t, root.IsVisited())
	assert.True(t, middle.IsVisited())
	assert.True(t, leaf.IsVisited())
}

func TestMarkingVisitor_CyclicGraphTerminates(t *testing.T) {
	a := newTestCell("a")
	b := newTestCell("b", a)
	a.children = append(a.children, b) // a <-> b cycle

	v := &MarkingVisitor{}
	v.Visit(a)

	assert.NotPanics(t, func() { v.VisitAll() })
	assert.True(t, a.IsVisited())
	assert.True(t, b.IsVisited())
}

func TestMarkingVisitor_VisitIgnoresNilAndAlreadyMarked(t *testing.T) {
	v := &MarkingVisitor{}
	v.Visit(nil)
	assert.Empty(t, v.stack)

	c := newTestCell("a")
	c.Mark()
	v.Visit(c)
	assert.Empty(t, v.stack, "an already-marked cell is not re-enqueued")
}
