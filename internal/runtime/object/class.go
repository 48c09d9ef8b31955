package object

import (
	"unsafe"

	"github.com/natalie-lang/natalie-sub003/internal/runtime/hashmap"
	"github.com/natalie-lang/natalie-sub003/internal/runtime/heap"
)

// Class is both an Object in its own right (it has instance variables, is
// GC'd like any other value, and can itself have a class) and a node in
// the method-resolution chain: a class's class pointer is itself an Object.
// isModule distinguishes Module from Class for the Type tag; modules never
// appear as a superclass, only in the included/prepended chains.
type Class struct {
	*Object
	name             string
	superclass       *Class
	isModule         bool
	methods          *hashmap.Map[unsafe.Pointer, *MethodInfo]
	includedModules  []*Class
	prependedModules []*Class
}

// NewClass builds a named Class with the given superclass (nil for the
// canonical root: the global Object class is its own grand-ancestor).
// metaclass may be nil; it is fixed up later once the
// metaclass hierarchy bootstrap (out of this package's scope) runs.
func NewClass(name string, superclass *Class, metaclass *Class) *Class {
	return &Class{
		Object:     &Object{objType: ClassType, class: metaclass},
		name:       name,
		superclass: superclass,
	}
}

// NewModule builds a named Module: a Class that can be included/prepended
// but never appears as a superclass.
func NewModule(name string, metaclass *Class) *Class {
	c := NewClass(name, nil, metaclass)
	c.isModule = true
	c.objType = ModuleType
	return c
}

func (c *Class) Name() string      { return c.name }
func (c *Class) IsModule() bool    { return c.isModule }
func (c *Class) Superclass() *Class { return c.superclass }

func methodKey(name *Symbol) unsafe.Pointer { return unsafe.Pointer(name) }

// DefineMethod attaches a method under name at the given visibility,
// overwriting any existing method with that name on this exact class (it
// does not touch ancestors — that's what shadows a superclass method on
// lookup).
func (c *Class) DefineMethod(name *Symbol, visibility Visibility, fn MethodFunc) {
	if c.methods == nil {
		c.methods = hashmap.NewPointerMap[*MethodInfo](8)
	}
	c.methods.Put(methodKey(name), NewMethodInfo(visibility, NewMethod(name, fn)))
}

func (c *Class) ownMethod(name *Symbol) (*MethodInfo, bool) {
	if c.methods == nil {
		return nil, false
	}
	return c.methods.Get(methodKey(name))
}

// Include appends mod to this class's included-module chain. Ruby searches
// the most recently included module first, so Include prepends into the
// logical search order even though it appends to the slice (ancestors
// walks includedModules back-to-front).
func (c *Class) Include(mod *Class) {
	c.includedModules = append(c.includedModules, mod)
}

// Prepend appends mod to this class's prepended-module chain; prepended
// modules are searched before the class itself.
func (c *Class) Prepend(mod *Class) {
	c.prependedModules = append(c.prependedModules, mod)
}

// ancestors returns this class's full method-resolution order: most
// recently prepended module first, then the class itself, then included
// modules most-recent-first, then the superclass's own ancestors.
func (c *Class) ancestors() []*Class {
	chain := make([]*Class, 0, 1+len(c.includedModules)+len(c.prependedModules))
	for i := len(c.prependedModules) - 1; i >= 0; i-- {
		chain = append(chain, c.prependedModules[i])
	}
	chain = append(chain, c)
	for i := len(c.includedModules) - 1; i >= 0; i-- {
		chain = append(chain, c.includedModules[i])
	}
	if c.superclass != nil {
		chain = append(chain, c.superclass.ancestors()...)
	}
	return chain
}

// LookupMethod walks the ancestor chain and returns the first method found
// named name, along with its defining visibility ("method
// lookup walks this chain and any included/prepended modules").
func (c *Class) LookupMethod(name *Symbol) (*MethodInfo, bool) {
	for _, anc := range c.ancestors() {
		if mi, ok := anc.ownMethod(name); ok {
			return mi, true
		}
	}
	return nil, false
}

// newSingletonClass builds an anonymous Class sitting directly above its
// owner's current class, shadowing it on method lookup: an on-demand
// singleton class.
func newSingletonClass(owner *Class) *Class {
	sc := NewClass("", owner, nil)
	sc.objType = ClassType
	return sc
}

// VisitChildren visits everything Object.VisitChildren would, plus the
// superclass and every included/prepended module. A Class's own instance
// variables and metaclass are still Object state, but its place in the
// inheritance graph is additional Cell-valued structure that must be
// enumerated so the collector can trace through it.
func (c *Class) VisitChildren(v *heap.MarkingVisitor) {
	c.Object.VisitChildren(v)
	if c.superclass != nil {
		v.Visit(c.superclass)
	}
	for _, m := range c.includedModules {
		v.Visit(m)
	}
	for _, m := range c.prependedModules {
		v.Visit(m)
	}
}
