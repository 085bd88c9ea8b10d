// Package algo holds the sort and search engines used by the sorted list.
package algo

// ranges spanning fewer than this many positions are left to insertion sort.
const insertionSortCutoff = 10

// Sort sorts data in place with a hybrid quicksort.
// The sort is not stable.
func Sort[T any](data []T, cmp func(a, b T) int) {
	if len(data) < 2 {
		return
	}
	quicksort(data, cmp, 0, len(data)-1)
}

// quicksort sorts data[low:high+1].
//
// Partitioning follows Lomuto with data[high] as pivot. Only the smaller
// partition is recursed into, the larger one is handled by the loop, so the
// stack depth stays O(log n) even for sorted or reversed input.
func quicksort[T any](data []T, cmp func(a, b T) int, low, high int) {
	for low < high {
		if high-low < insertionSortCutoff {
			insertionSort(data, cmp, low, high)
			return
		}

		p := partition(data, cmp, low, high)

		if p-low < high-p {
			quicksort(data, cmp, low, p-1)
			low = p + 1
		} else {
			quicksort(data, cmp, p+1, high)
			high = p - 1
		}
	}
}

// partition moves every element <= data[high] to the front of the range
// and returns the final index of the pivot.
func partition[T any](data []T, cmp func(a, b T) int, low, high int) int {
	pivot := data[high]
	p := low

	for i := low; i < high; i++ {
		if cmp(data[i], pivot) <= 0 {
			data[i], data[p] = data[p], data[i]
			p++
		}
	}
	data[p], data[high] = data[high], data[p]

	return p
}

// insertionSort sorts data[low:high+1].
func insertionSort[T any](data []T, cmp func(a, b T) int, low, high int) {
	for i := low + 1; i <= high; i++ {
		tmp := data[i]
		j := i

		for j > low && cmp(data[j-1], tmp) > 0 {
			data[j] = data[j-1]
			j--
		}
		data[j] = tmp
	}
}

// IsSorted reports whether data is non-decreasing under cmp.
func IsSorted[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}
