package object

// NonNil wraps a pointer that is never nil for the lifetime of the wrapper.
// A C++ operator* returning T*& (a reference to the pointer slot itself,
// not the pointee) would let dereferencing silently not read through to
// the value. Go has no raw-pointer-to-reference distinction to reproduce
// that smell even by accident; Deref returns the wrapped pointer value
// itself, never a reference to the field holding it (see DESIGN.md).
type NonNil[T any] struct {
	ptr *T
}

// NewNonNil wraps ptr, which must not be nil.
func NewNonNil[T any](ptr *T) NonNil[T] {
	if ptr == nil {
		panic("object: NewNonNil called with a nil pointer")
	}
	return NonNil[T]{ptr: ptr}
}

// Deref returns the wrapped pointer, through which the pointee is read; it
// never returns a reference to the wrapper's own field.
func (n NonNil[T]) Deref() *T { return n.ptr }
