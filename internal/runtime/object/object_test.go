package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natalie-lang/natalie-sub003/internal/runtime/heap"
)

func TestObject_IVarGetMissingReturnsFalse(t *testing.T) {
	o := NewObject(ObjectBaseType, nil)
	_, ok := o.IVarGet(Intern("@x"))
	assert.False(t, ok)
}

func TestObject_IVarSetThenGetRoundTrips(t *testing.T) {
	o := NewObject(ObjectBaseType, nil)
	o.IVarSet(Intern("@x"), IntegerValue(42))
	v, ok := o.IVarGet(Intern("@x"))
	require.True(t, ok)
	assert.Equal(t, IntegerValue(42), v)
}

func TestObject_IVarKeysAreIdentityNotSpelling(t *testing.T) {
	o := NewObject(ObjectBaseType, nil)
	a := Intern("@x")
	b := Intern("@x")
	o.IVarSet(a, IntegerValue(1))
	v, ok := o.IVarGet(b)
	require.True(t, ok, "interned symbols with the same name must be the same pointer")
	assert.Equal(t, IntegerValue(1), v)
}

func TestObject_SingletonClassCreatedOnDemandAndCached(t *testing.T) {
	class := NewClass("Widget", nil, nil)
	o := NewObject(ObjectBaseType, class)
	assert.False(t, o.HasSingletonClass())

	sc1 := o.SingletonClass()
	sc2 := o.SingletonClass()
	assert.True(t, o.HasSingletonClass())
	assert.Same(t, sc1, sc2)
}

func TestObject_EffectiveClassPrefersSingleton(t *testing.T) {
	class := NewClass("Widget", nil, nil)
	o := NewObject(ObjectBaseType, class)
	assert.Same(t, class, o.EffectiveClass())

	sc := o.SingletonClass()
	assert.Same(t, sc, o.EffectiveClass())
}

func TestObject_LookupMethodViaSingletonShadowsClass(t *testing.T) {
	class := NewClass("Widget", nil, nil)
	greet := Intern("greet")
	class.DefineMethod(greet, Public, func(Value, []Value) (Value, error) {
		return IntegerValue(1), nil
	})

	o := NewObject(ObjectBaseType, class)
	mi, ok := o.LookupMethod(greet)
	require.True(t, ok)
	v, err := mi.Method().Call(o, nil)
	require.NoError(t, err)
	assert.Equal(t, IntegerValue(1), v)

	o.SingletonClass().DefineMethod(greet, Public, func(Value, []Value) (Value, error) {
		return IntegerValue(2), nil
	})
	mi, ok = o.LookupMethod(greet)
	require.True(t, ok)
	v, _ = mi.Method().Call(o, nil)
	assert.Equal(t, IntegerValue(2), v, "singleton method must shadow the class method")
}

func TestObject_VisitChildrenReachesClassSingletonAndIvars(t *testing.T) {
	class := NewClass("Widget", nil, nil)
	owner := NewObject(ObjectBaseType, class)
	child := NewObject(ObjectBaseType, class)
	owner.IVarSet(Intern("@child"), child)
	sc := owner.SingletonClass()

	v := &heap.MarkingVisitor{}
	v.Visit(owner)
	v.VisitAll()

	assert.True(t, class.IsVisited())
	assert.True(t, sc.IsVisited())
	assert.True(t, child.IsVisited())
}
