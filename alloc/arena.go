package alloc

import (
	"log/slog"
	"math"
	"sync/atomic"

	"github.com/andy-kimball/arenaskl"
)

// Arena is an allocator with a fixed byte budget. Every allocation is
// charged against an arenaskl arena and fails with arenaskl.ErrArenaFull
// once the budget is spent. Charged bytes are only given back when the
// last user calls DelRef, which resets the arena.
type Arena[T any] struct {
	arena    *arenaskl.Arena
	elemSize uint64

	// ref is the number of lists using the arena.
	ref atomic.Int32

	logger *slog.Logger
}

// NewArena
func NewArena[T any](size uint32) *Arena[T] {
	return &Arena[T]{
		arena:    arenaskl.NewArena(size),
		elemSize: elemSize[T](),
		logger:   slog.Default(),
	}
}

// charge reserves room for n elements.
func (a *Arena[T]) charge(n int) error {
	if n < 1 {
		return ErrInvalidSize
	}
	if uint64(n) > math.MaxUint32/a.elemSize {
		return arenaskl.ErrArenaFull
	}
	_, err := a.arena.Alloc(uint32(uint64(n)*a.elemSize), 0, arenaskl.Align8)
	return err
}

// Alloc
func (a *Arena[T]) Alloc(n int) ([]T, error) {
	if err := a.charge(n); err != nil {
		return nil, err
	}
	return make([]T, n), nil
}

// Calloc
func (a *Arena[T]) Calloc(n int) ([]T, error) {
	return a.Alloc(n)
}

// Realloc
func (a *Arena[T]) Realloc(buf []T, n int) ([]T, error) {
	nbuf, err := a.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(nbuf, buf)
	return nbuf, nil
}

// Free is a no-op, the arena is released as a whole.
func (a *Arena[T]) Free([]T) {}

// Size return the bytes charged so far.
func (a *Arena[T]) Size() uint32 {
	return a.arena.Size()
}

// Cap return the byte budget.
func (a *Arena[T]) Cap() uint32 {
	return a.arena.Cap()
}

// Refs
func (a *Arena[T]) Refs() int32 {
	return a.ref.Load()
}

// AddRef
func (a *Arena[T]) AddRef() {
	a.ref.Add(1)
}

// DelRef resets the arena when the last reference is dropped.
func (a *Arena[T]) DelRef() {
	if a.ref.Add(-1) == 0 {
		a.logger.Debug("[Arena] reset", "size", a.arena.Size(), "cap", a.arena.Cap())
		a.arena.Reset()
	}
}
