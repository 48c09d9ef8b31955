package object

// Value is any runtime value: either an inline integer or a pointer to a
// heap-allocated Object. Every value has either an immediate integer
// encoding or a class pointer. IntegerValue never touches the heap; *Object
// always does.
type Value interface {
	isValue()
}

// IntegerValue is an inline-encoded integer, bypassing heap allocation
// entirely. It plays the role a tagged-pointer integer encoding would in a
// C allocator, without needing an actual pointer tag bit since Go interfaces
// already distinguish IntegerValue from *Object by dynamic type.
type IntegerValue int64

func (IntegerValue) isValue() {}
