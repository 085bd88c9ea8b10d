package algo

// SearchFirst returns the index of the first element in the sorted data
// that compares equal to v, or len(data) when there is none.
func SearchFirst[T any](data []T, v T, cmp func(a, b T) int) int {
	n := len(data)
	if n == 0 {
		return n
	}

	l, r := 0, n
	for l < r {
		m := l + (r-l)/2
		if cmp(data[m], v) < 0 {
			l = m + 1
		} else {
			r = m
		}
	}

	if l < n && cmp(data[l], v) == 0 {
		return l
	}
	return n
}

// SearchLast returns the index of the last element in the sorted data
// that compares equal to v, or len(data) when there is none.
func SearchLast[T any](data []T, v T, cmp func(a, b T) int) int {
	n := len(data)
	if n == 0 {
		return n
	}

	l, r := 0, n
	for l < r {
		m := l + (r-l)/2
		if cmp(data[m], v) > 0 {
			r = m
		} else {
			l = m + 1
		}
	}

	// l is the first index greater than v.
	if l > 0 && cmp(data[l-1], v) == 0 {
		return l - 1
	}
	return n
}
