package btree

// insertAt inserts values into a slice at idx.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	if len(values) == 0 {
		return src
	}
	var zero T
	for range values {
		src = append(src, zero)
	}
	copy(src[idx+len(values):], src[idx:])
	copy(src[idx:], values)
	return src
}

// removeRange removes the half-open interval [from,to) from a slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	n := copy(src[from:], src[to:])
	var zero T
	for i := from + n; i < len(src); i++ {
		src[i] = zero
	}
	return src[:from+n]
}

// truncate cuts a slice to length n, clearing the tail.
func truncate[T any](src []T, n int) []T {
	return removeRange(src, n, len(src))
}
