package sortedlist

import (
	"fmt"
	"io"
)

// String return a one-line summary of the list state.
func (l *SortedList[T]) String() string {
	var zero T
	return fmt.Sprintf("SortedList<%T> { capacity:%d, count:%d, sorted:%v, flag:%s, alloc:%T, callbacks:%v }",
		zero, l.Capacity(), l.count, l.Sorted(), l.flag, l.alloc, l.callbacks != nil)
}

// Print writes the elements in sorted order between start and end,
// separated by sep. Print sorts the list.
func (l *SortedList[T]) Print(w io.Writer, start, sep, end string) error {
	l.Sort()

	if _, err := io.WriteString(w, start); err != nil {
		return err
	}
	for i, v := range l.buffer[:l.count] {
		if err := l.policy.Render(w, v); err != nil {
			return err
		}
		if i+1 < l.count {
			if _, err := io.WriteString(w, sep); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, end)
	return err
}
