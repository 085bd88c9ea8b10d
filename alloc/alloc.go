// Package alloc provides the buffer allocators used by the sorted list.
package alloc

import (
	"errors"
	"unsafe"
)

var (
	ErrInvalidSize = errors.New("alloc: invalid size")
	ErrTooLarge    = errors.New("alloc: size too large")
)

// maxAlloc is the largest buffer in bytes, the runtime can not address more.
const maxAlloc = 1 << 47

// elemSize return the size of T in bytes, at least 1.
func elemSize[T any]() uint64 {
	var zero T
	if size := uint64(unsafe.Sizeof(zero)); size > 0 {
		return size
	}
	return 1
}

// Allocator hands out element buffers. A failed call returns a nil slice
// and an error and leaves its inputs untouched.
type Allocator[T any] interface {
	// Alloc returns n slots with unspecified contents.
	Alloc(n int) ([]T, error)

	// Calloc returns n zeroed slots.
	Calloc(n int) ([]T, error)

	// Realloc returns a buffer of n slots holding the first min(n, len(buf))
	// elements of buf. Slots past len(buf) are zeroed.
	// Realloc does not take ownership of buf: the caller still owns it and
	// gives it back with Free on the allocator that created it.
	Realloc(buf []T, n int) ([]T, error)

	// Free gives buf back to the allocator.
	Free(buf []T)
}

// Shared is implemented by allocators that track how many lists use them.
type Shared interface {
	AddRef()
	DelRef()
}

// Heap allocates from the Go heap.
type Heap[T any] struct{}

// Default returns the heap allocator.
func Default[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Alloc
func (Heap[T]) Alloc(n int) ([]T, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	if uint64(n) > maxAlloc/elemSize[T]() {
		return nil, ErrTooLarge
	}
	return make([]T, n), nil
}

// Calloc
func (h Heap[T]) Calloc(n int) ([]T, error) {
	return h.Alloc(n)
}

// Realloc
func (h Heap[T]) Realloc(buf []T, n int) ([]T, error) {
	nbuf, err := h.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(nbuf, buf)
	return nbuf, nil
}

// Free
func (Heap[T]) Free([]T) {}
