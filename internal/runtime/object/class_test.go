package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defineReturning(c *Class, name *Symbol, v Value) {
	c.DefineMethod(name, Public, func(Value, []Value) (Value, error) {
		return v, nil
	})
}

func TestClass_LookupMethodFindsOwnMethod(t *testing.T) {
	animal := NewClass("Animal", nil, nil)
	speak := Intern("speak")
	defineReturning(animal, speak, IntegerValue(1))

	mi, ok := animal.LookupMethod(speak)
	require.True(t, ok)
	assert.Equal(t, Public, mi.Visibility())
}

func TestClass_LookupMethodWalksSuperclassChain(t *testing.T) {
	animal := NewClass("Animal", nil, nil)
	dog := NewClass("Dog", animal, nil)
	speak := Intern("speak")
	defineReturning(animal, speak, IntegerValue(1))

	_, ok := dog.LookupMethod(speak)
	assert.True(t, ok)
}

func TestClass_SubclassMethodShadowsSuperclass(t *testing.T) {
	animal := NewClass("Animal", nil, nil)
	dog := NewClass("Dog", animal, nil)
	speak := Intern("speak")
	defineReturning(animal, speak, IntegerValue(1))
	defineReturning(dog, speak, IntegerValue(2))

	mi, _ := dog.LookupMethod(speak)
	v, _ := mi.Method().Call(nil, nil)
	assert.Equal(t, IntegerValue(2), v)
}

func TestClass_LookupMethodMissingReturnsFalse(t *testing.T) {
	animal := NewClass("Animal", nil, nil)
	_, ok := animal.LookupMethod(Intern("nonexistent"))
	assert.False(t, ok)
}

func TestClass_IncludedModuleIsSearchedBeforeSuperclass(t *testing.T) {
	animal := NewClass("Animal", nil, nil)
	dog := NewClass("Dog", animal, nil)
	walkable := NewModule("Walkable", nil)
	walk := Intern("walk")
	defineReturning(animal, walk, IntegerValue(1))
	defineReturning(walkable, walk, IntegerValue(2))
	dog.Include(walkable)

	mi, _ := dog.LookupMethod(walk)
	v, _ := mi.Method().Call(nil, nil)
	assert.Equal(t, IntegerValue(2), v, "included module must be searched before the superclass")
}

func TestClass_PrependedModuleIsSearchedBeforeClassItself(t *testing.T) {
	dog := NewClass("Dog", nil, nil)
	override := NewModule("Override", nil)
	bark := Intern("bark")
	defineReturning(dog, bark, IntegerValue(1))
	defineReturning(override, bark, IntegerValue(2))
	dog.Prepend(override)

	mi, _ := dog.LookupMethod(bark)
	v, _ := mi.Method().Call(nil, nil)
	assert.Equal(t, IntegerValue(2), v, "prepended module must be searched before the class itself")
}

func TestClass_MostRecentlyIncludedModuleWinsOverEarlierOne(t *testing.T) {
	dog := NewClass("Dog", nil, nil)
	first := NewModule("First", nil)
	second := NewModule("Second", nil)
	greet := Intern("greet")
	defineReturning(first, greet, IntegerValue(1))
	defineReturning(second, greet, IntegerValue(2))
	dog.Include(first)
	dog.Include(second)

	mi, _ := dog.LookupMethod(greet)
	v, _ := mi.Method().Call(nil, nil)
	assert.Equal(t, IntegerValue(2), v)
}

func TestClass_IsModuleDistinguishesModulesFromClasses(t *testing.T) {
	c := NewClass("Dog", nil, nil)
	m := NewModule("Walkable", nil)
	assert.False(t, c.IsModule())
	assert.True(t, m.IsModule())
	assert.Equal(t, ClassType, c.Type())
	assert.Equal(t, ModuleType, m.Type())
}
