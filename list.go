// Package sortedlist is a lazily sorted, array backed list.
//
// Inserted values are appended to the buffer and the list is only sorted
// when an operation needs the order, like Min, Max, Get or IndexOf. A batch
// of inserts therefore costs a single sort.
package sortedlist

import (
	"fmt"
	"log/slog"

	"github.com/xgzlucario/sortedlist/alloc"
	"github.com/xgzlucario/sortedlist/internal/algo"
	"github.com/xgzlucario/sortedlist/option"
	"github.com/xgzlucario/sortedlist/policy"
)

// SortedList is a sorted list. It is not safe for concurrent use.
type SortedList[T any] struct {
	// buffer holds capacity slots, only buffer[:count] is live.
	// Slots past count are always zero.
	buffer []T
	count  int

	// sorted reports buffer[:count] is ordered, cleared by Insert.
	sorted bool

	// flag is the status of the last operation.
	flag Flag

	policy    *policy.Policy[T]
	alloc     alloc.Allocator[T]
	callbacks *Callbacks[T]

	// owner created buffer. It differs from alloc after Customize until
	// the buffer is replaced, borrowed reports that case.
	owner    alloc.Allocator[T]
	borrowed bool

	logger *slog.Logger
}

// New
func New[T any](capacity int, p *policy.Policy[T]) (*SortedList[T], error) {
	return newList(capacity, p, nil, nil, slog.Default())
}

// NewCustom create a list with a custom allocator and callbacks, both may be nil.
func NewCustom[T any](capacity int, p *policy.Policy[T], a alloc.Allocator[T], cb *Callbacks[T]) (*SortedList[T], error) {
	return newList(capacity, p, a, cb, slog.Default())
}

// NewWithOption
func NewWithOption[T any](p *policy.Policy[T], opt *option.Option) (*SortedList[T], error) {
	if opt == nil {
		opt = option.DefaultOption
	}
	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var a alloc.Allocator[T]
	if opt.ArenaSize > 0 {
		a = alloc.NewArena[T](opt.ArenaSize)
	}

	return newList(opt.Capacity, p, a, nil, opt.GetLogger())
}

func newList[T any](capacity int, p *policy.Policy[T], a alloc.Allocator[T], cb *Callbacks[T], logger *slog.Logger) (*SortedList[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalid, capacity)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if a == nil {
		a = alloc.Default[T]()
	}

	buffer, err := a.Calloc(capacity)
	if err != nil {
		logger.Warn("[SortedList] alloc failed", "capacity", capacity, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrAlloc, err)
	}
	retain(a)

	return &SortedList[T]{
		buffer:    buffer,
		flag:      FlagOK,
		policy:    p,
		alloc:     a,
		callbacks: cb,
		owner:     a,
		logger:    logger,
	}, nil
}

// retain and release keep the reference count of shared allocators.
func retain[T any](a alloc.Allocator[T]) {
	if s, ok := a.(alloc.Shared); ok {
		s.AddRef()
	}
}

func release[T any](a alloc.Allocator[T]) {
	if s, ok := a.(alloc.Shared); ok {
		s.DelRef()
	}
}

// Customize replace the allocator and callbacks, nil arguments are ignored.
// The current buffer is given back to the allocator that created it once it
// is replaced, which keeps that allocator referenced until then.
func (l *SortedList[T]) Customize(a alloc.Allocator[T], cb *Callbacks[T]) {
	if a != nil {
		retain(a)
		if l.borrowed {
			release(l.alloc)
		} else {
			l.borrowed = true
		}
		l.alloc = a
	}
	if cb != nil {
		l.callbacks = cb
	}
	l.flag = FlagOK
}

// Clear remove all elements and keep the capacity.
func (l *SortedList[T]) Clear() {
	l.callbacks.beforeClear(l)

	l.freeAll()
	clear(l.buffer)
	l.count = 0
	l.sorted = false
	l.flag = FlagOK

	l.callbacks.afterClear(l)
}

// Release free all elements and the buffer. Mutations on a released list
// fail with ErrInvalid, releasing it again does nothing.
func (l *SortedList[T]) Release() {
	if l.buffer == nil {
		return
	}
	l.callbacks.beforeFree(l)

	l.freeAll()
	l.freeBuffer()
	release(l.alloc)
	l.buffer = nil
	l.count = 0
	l.sorted = false

	l.callbacks.afterFree(l)
}

// freeBuffer gives buffer back to its owner.
func (l *SortedList[T]) freeBuffer() {
	l.owner.Free(l.buffer)
	if l.borrowed {
		release(l.owner)
		l.borrowed = false
	}
	l.owner = l.alloc
}

// freeAll pass every live element to the policy's Free.
func (l *SortedList[T]) freeAll() {
	if l.policy.Free == nil {
		return
	}
	for _, v := range l.buffer[:l.count] {
		l.policy.Free(v)
	}
}

// Insert append v, the buffer doubles when full.
// When growing fails the list is left unchanged.
func (l *SortedList[T]) Insert(v T) error {
	if l.Full() {
		if err := l.Resize(l.Capacity() * 2); err != nil {
			return err
		}
	}

	l.buffer[l.count] = v
	l.count++
	l.sorted = false
	l.flag = FlagOK

	return nil
}

// Remove delete the element at index. Removing keeps a sorted list sorted.
// The removed element is not passed to the policy's Free.
func (l *SortedList[T]) Remove(index int) error {
	if index < 0 || index >= l.count {
		l.flag = FlagOutOfRange
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	copy(l.buffer[index:], l.buffer[index+1:l.count])
	l.count--

	var zero T
	l.buffer[l.count] = zero
	l.flag = FlagOK

	return nil
}

// Min
func (l *SortedList[T]) Min() (T, bool) {
	if l.Empty() {
		l.flag = FlagEmpty
		var zero T
		return zero, false
	}
	l.Sort()
	l.flag = FlagOK

	return l.buffer[0], true
}

// Max
func (l *SortedList[T]) Max() (T, bool) {
	if l.Empty() {
		l.flag = FlagEmpty
		var zero T
		return zero, false
	}
	l.Sort()
	l.flag = FlagOK

	return l.buffer[l.count-1], true
}

// Get return the element at index in sorted order, or the zero value
// if index is out of range. Get sorts the list.
func (l *SortedList[T]) Get(index int) T {
	if index < 0 || index >= l.count {
		l.flag = FlagOutOfRange
		var zero T
		return zero
	}
	l.Sort()
	l.flag = FlagOK

	return l.buffer[index]
}

// IndexOf return the index of the first (or last) element equal to v,
// Count() if there is none.
func (l *SortedList[T]) IndexOf(v T, fromStart bool) int {
	l.Sort()

	var i int
	if fromStart {
		i = algo.SearchFirst(l.buffer[:l.count], v, l.policy.Cmp)
	} else {
		i = algo.SearchLast(l.buffer[:l.count], v, l.policy.Cmp)
	}

	if i == l.count {
		l.flag = FlagNotFound
	} else {
		l.flag = FlagOK
	}
	return i
}

// Contains
func (l *SortedList[T]) Contains(v T) bool {
	l.flag = FlagOK
	if l.Empty() {
		return false
	}
	l.Sort()

	return algo.SearchFirst(l.buffer[:l.count], v, l.policy.Cmp) < l.count
}

// Range calls f for each element in sorted order until f return false.
// The list must not be modified inside f.
func (l *SortedList[T]) Range(f func(index int, v T) bool) {
	l.Sort()

	for i, v := range l.buffer[:l.count] {
		if !f(i, v) {
			return
		}
	}
}

// Empty
func (l *SortedList[T]) Empty() bool {
	return l.count == 0
}

// Full
func (l *SortedList[T]) Full() bool {
	return l.count >= len(l.buffer)
}

// Count
func (l *SortedList[T]) Count() int {
	return l.count
}

// Capacity
func (l *SortedList[T]) Capacity() int {
	return len(l.buffer)
}

// Sorted reports whether the live elements are in order.
func (l *SortedList[T]) Sorted() bool {
	return l.sorted || l.count < 2
}

// Flag return the status of the last operation.
func (l *SortedList[T]) Flag() Flag {
	return l.flag
}

// Resize change the capacity. It fails if capacity would drop live elements.
// New slots are zeroed.
func (l *SortedList[T]) Resize(capacity int) error {
	if l.buffer == nil {
		l.flag = FlagInvalid
		return fmt.Errorf("%w: list released", ErrInvalid)
	}
	if capacity == l.Capacity() {
		l.flag = FlagOK
		return nil
	}
	if capacity < l.count || capacity < 1 {
		l.flag = FlagInvalid
		return fmt.Errorf("%w: capacity %d, count %d", ErrInvalid, capacity, l.count)
	}

	buffer, err := l.alloc.Realloc(l.buffer, capacity)
	if err != nil {
		l.flag = FlagAlloc
		l.logger.Warn("[SortedList] resize failed", "capacity", capacity, "count", l.count, "err", err)
		return fmt.Errorf("%w: %w", ErrAlloc, err)
	}
	l.logger.Debug("[SortedList] resize", "from", l.Capacity(), "to", capacity, "count", l.count)

	l.freeBuffer()
	l.buffer = buffer
	l.flag = FlagOK

	return nil
}

// Sort sorts the live elements if they are not sorted yet.
func (l *SortedList[T]) Sort() {
	if !l.sorted && l.count > 1 {
		algo.Sort(l.buffer[:l.count], l.policy.Cmp)
		l.sorted = true

		l.logger.Debug("[SortedList] sort", "count", l.count)
	}
}

// CopyOf return a copy sharing the policy, allocator and callbacks.
// Elements are copied with the policy's Copy when it is set.
func (l *SortedList[T]) CopyOf() (*SortedList[T], error) {
	buffer, err := l.alloc.Calloc(l.Capacity())
	if err != nil {
		l.flag = FlagAlloc
		return nil, fmt.Errorf("%w: %w", ErrAlloc, err)
	}

	if l.policy.Copy != nil {
		for i, v := range l.buffer[:l.count] {
			buffer[i] = l.policy.Copy(v)
		}
	} else {
		copy(buffer, l.buffer[:l.count])
	}
	retain(l.alloc)
	l.flag = FlagOK

	return &SortedList[T]{
		buffer:    buffer,
		count:     l.count,
		sorted:    l.sorted,
		flag:      FlagOK,
		policy:    l.policy,
		alloc:     l.alloc,
		callbacks: l.callbacks,
		owner:     l.alloc,
		logger:    l.logger,
	}, nil
}

// Equals reports whether both lists hold equal elements in sorted order.
// Both lists are sorted.
func (l *SortedList[T]) Equals(other *SortedList[T]) bool {
	if other == nil || l.count != other.count {
		return false
	}
	l.Sort()
	other.Sort()

	for i := 0; i < l.count; i++ {
		if l.policy.Cmp(l.buffer[i], other.buffer[i]) != 0 {
			return false
		}
	}
	return true
}
