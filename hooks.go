package sortedlist

// Callbacks are optional hooks run around Clear and Release.
// They observe the list and must not mutate it.
type Callbacks[T any] struct {
	BeforeClear func(*SortedList[T])
	AfterClear  func(*SortedList[T])
	BeforeFree  func(*SortedList[T])
	AfterFree   func(*SortedList[T])
}

func (c *Callbacks[T]) beforeClear(l *SortedList[T]) {
	if c != nil && c.BeforeClear != nil {
		c.BeforeClear(l)
	}
}

func (c *Callbacks[T]) afterClear(l *SortedList[T]) {
	if c != nil && c.AfterClear != nil {
		c.AfterClear(l)
	}
}

func (c *Callbacks[T]) beforeFree(l *SortedList[T]) {
	if c != nil && c.BeforeFree != nil {
		c.BeforeFree(l)
	}
}

func (c *Callbacks[T]) afterFree(l *SortedList[T]) {
	if c != nil && c.AfterFree != nil {
		c.AfterFree(l)
	}
}
