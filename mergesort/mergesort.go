// Package mergesort provides a stable merge sort over arbitrary slices,
// parameterized by a key-extraction function.
package mergesort

import "cmp"

// Sort returns a new slice holding the elements of items sorted ascending
// by the key that keyOf extracts. The input slice is left untouched. The
// sort is stable: elements with equal keys keep their input order. Cost is
// O(n log n) comparisons in all cases.
//
// Descending order falls out of a negated numeric key, e.g.
// keyOf = func(b Block) float64 { return -b.Ratio() }.
func Sort[T any, K cmp.Ordered](items []T, keyOf func(T) K) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) < 2 {
		return out
	}
	buf := make([]T, len(out))
	sortInto(out, buf, keyOf)
	return out
}

// sortInto sorts items in place, using buf (same length) as scratch.
func sortInto[T any, K cmp.Ordered](items, buf []T, keyOf func(T) K) {
	if len(items) < 2 {
		return
	}
	mid := len(items) / 2
	sortInto(items[:mid], buf[:mid], keyOf)
	sortInto(items[mid:], buf[mid:], keyOf)
	merge(items, buf, mid, keyOf)
}

// merge combines the two sorted halves items[:mid] and items[mid:] back
// into items. Ties take from the left half first, which is what makes the
// sort stable.
func merge[T any, K cmp.Ordered](items, buf []T, mid int, keyOf func(T) K) {
	copy(buf, items)
	left, right := buf[:mid], buf[mid:]

	i, j := 0, 0
	for k := range items {
		switch {
		case i == len(left):
			items[k] = right[j]
			j++
		case j == len(right):
			items[k] = left[i]
			i++
		case keyOf(right[j]) < keyOf(left[i]):
			items[k] = right[j]
			j++
		default:
			items[k] = left[i]
			i++
		}
	}
}
