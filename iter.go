package sortedlist

// Iterator is a bidirectional cursor over a list in sorted order.
//
// It only stores an index: after Insert, Remove or Resize on the target the
// cursor no longer points at the same element and the iterator must be
// initialized again.
type Iterator[T any] struct {
	target *SortedList[T]
	cursor int

	// start and end are set once the cursor is at the first/last element.
	start bool
	end   bool
}

// IterStart return an iterator at the first element.
func (l *SortedList[T]) IterStart() *Iterator[T] {
	var it Iterator[T]
	it.Init(l)
	return &it
}

// IterEnd return an iterator at the last element.
func (l *SortedList[T]) IterEnd() *Iterator[T] {
	var it Iterator[T]
	it.Init(l)
	it.start = l.Empty()
	it.end = true
	if !l.Empty() {
		it.cursor = l.count - 1
	}
	return &it
}

// Init bind the iterator to target and move it to the first element.
// The target is sorted.
func (it *Iterator[T]) Init(target *SortedList[T]) {
	target.Sort()

	it.target = target
	it.cursor = 0
	it.start = true
	it.end = target.Empty()
}

// AtStart
func (it *Iterator[T]) AtStart() bool {
	return it.target.Empty() || it.start
}

// AtEnd
func (it *Iterator[T]) AtEnd() bool {
	return it.target.Empty() || it.end
}

// ToStart
func (it *Iterator[T]) ToStart() bool {
	if it.target.Empty() {
		return false
	}
	it.cursor = 0
	it.start = true
	it.end = false
	return true
}

// ToEnd
func (it *Iterator[T]) ToEnd() bool {
	if it.target.Empty() {
		return false
	}
	it.cursor = it.target.count - 1
	it.start = false
	it.end = true
	return true
}

// Next
func (it *Iterator[T]) Next() bool {
	if it.end {
		return false
	}
	if it.cursor+1 >= it.target.count {
		it.end = true
		return false
	}

	it.start = false
	it.cursor++

	return true
}

// Prev
func (it *Iterator[T]) Prev() bool {
	if it.start {
		return false
	}
	if it.cursor == 0 {
		it.start = true
		return false
	}

	it.end = false
	it.cursor--

	return true
}

// Advance move forward by steps, it moves only if the whole step fits.
func (it *Iterator[T]) Advance(steps int) bool {
	if it.end {
		return false
	}
	if it.cursor+1 >= it.target.count {
		it.end = true
		return false
	}
	if steps <= 0 || it.cursor+steps >= it.target.count {
		return false
	}

	it.start = false
	it.cursor += steps

	return true
}

// Rewind move backward by steps, it moves only if the whole step fits.
func (it *Iterator[T]) Rewind(steps int) bool {
	if it.start {
		return false
	}
	if it.cursor == 0 {
		it.start = true
		return false
	}
	if steps <= 0 || it.cursor < steps {
		return false
	}

	it.end = false
	it.cursor -= steps

	return true
}

// GoTo move the cursor to index.
func (it *Iterator[T]) GoTo(index int) bool {
	if index < 0 || index >= it.target.count {
		return false
	}

	switch {
	case it.cursor > index:
		return it.Rewind(it.cursor - index)
	case it.cursor < index:
		return it.Advance(index - it.cursor)
	}
	return true
}

// Value return the element under the cursor, or the zero value if the
// target is empty or shrank below the cursor.
func (it *Iterator[T]) Value() T {
	if it.cursor >= it.target.count {
		var zero T
		return zero
	}
	return it.target.buffer[it.cursor]
}

// Index
func (it *Iterator[T]) Index() int {
	return it.cursor
}
