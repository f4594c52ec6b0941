package ast

import "fmt"

// Arena is a growable indexed container with stable 1-based ids. Index 0 is
// reserved as the "no id" sentinel. Slots are never reused or removed.
type Arena[T any] struct {
	data []T
}

func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data))
}

// Get returns the element at the 1-based index. An out-of-range index is a
// bookkeeping defect, not user input, and panics.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || index > uint32(len(a.data)) {
		panic(fmt.Errorf("internal error: bad arena index %d (len %d)", index, len(a.data)))
	}
	return &a.data[index-1]
}

// Has reports whether the index names an allocated slot.
func (a *Arena[T]) Has(index uint32) bool {
	return index != 0 && index <= uint32(len(a.data))
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}
