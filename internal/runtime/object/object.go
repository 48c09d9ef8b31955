package object

import (
	"unsafe"

	"github.com/natalie-lang/natalie-sub003/internal/runtime/hashmap"
	"github.com/natalie-lang/natalie-sub003/internal/runtime/heap"
)

// Object extends Cell with a class pointer, an on-demand singleton class, a
// type tag, an instance-variable table keyed by symbol identity, and a
// frozen flag. Embedding
// heap.CellHeader gives it the mark bit for free, the same way AST nodes in
// internal/compiler/ast embed a shared base for their source-location token.
type Object struct {
	heap.CellHeader
	class          *Class
	singletonClass *Class
	objType        Type
	ivars          *hashmap.Map[unsafe.Pointer, Value]
	frozen         bool
}

func (o *Object) isValue() {}

// NewObject allocates an Object of the given type under class. It does not
// call heap.Heap.Allocate itself — the caller decides when and through
// which allocator a Cell is placed on the heap (see internal/runtime/heap's
// Allocate/ShouldCollect split); NewObject only builds the value that ends
// up wrapped in a heap.Ref.
func NewObject(objType Type, class *Class) *Object {
	return &Object{objType: objType, class: class}
}

// Type is this object's closed type tag.
func (o *Object) Type() Type { return o.objType }

// Class is the object's class, not accounting for any singleton class —
// use EffectiveClass for method-lookup purposes.
func (o *Object) Class() *Class { return o.class }

func (o *Object) Frozen() bool { return o.frozen }
func (o *Object) Freeze()      { o.frozen = true }

// SingletonClass returns this object's singleton class, creating it on
// first access ("an on-demand singleton_class that shadows
// the regular class on lookup").
func (o *Object) SingletonClass() *Class {
	if o.singletonClass == nil {
		o.singletonClass = newSingletonClass(o.class)
	}
	return o.singletonClass
}

// HasSingletonClass reports whether SingletonClass has ever been called,
// without the side effect of creating one.
func (o *Object) HasSingletonClass() bool { return o.singletonClass != nil }

// EffectiveClass is where method lookup actually starts: the singleton
// class if one has been created, otherwise the regular class.
func (o *Object) EffectiveClass() *Class {
	if o.singletonClass != nil {
		return o.singletonClass
	}
	return o.class
}

// LookupMethod resolves name via EffectiveClass's ancestor chain.
func (o *Object) LookupMethod(name *Symbol) (*MethodInfo, bool) {
	c := o.EffectiveClass()
	if c == nil {
		return nil, false
	}
	return c.LookupMethod(name)
}

func ivarKey(name *Symbol) unsafe.Pointer { return unsafe.Pointer(name) }

// IVarGet returns the value of the instance variable named name.
func (o *Object) IVarGet(name *Symbol) (Value, bool) {
	if o.ivars == nil {
		return nil, false
	}
	return o.ivars.Get(ivarKey(name))
}

// IVarSet assigns the instance variable named name, allocating the
// instance-variable table on first use.
func (o *Object) IVarSet(name *Symbol, v Value) {
	if o.ivars == nil {
		o.ivars = hashmap.NewPointerMap[Value](4)
	}
	o.ivars.Put(ivarKey(name), v)
}

// VisitChildren enumerates every Cell this Object references: its class,
// its singleton class if any, and every heap-allocated (non-integer)
// instance-variable value.
func (o *Object) VisitChildren(v *heap.MarkingVisitor) {
	if o.class != nil {
		v.Visit(o.class)
	}
	if o.singletonClass != nil {
		v.Visit(o.singletonClass)
	}
	if o.ivars != nil {
		o.ivars.Each(func(_ unsafe.Pointer, val Value) bool {
			if cell, ok := val.(heap.Cell); ok {
				v.Visit(cell)
			}
			return true
		})
	}
}
