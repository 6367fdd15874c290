package bst

import (
	"cmp"

	"github.com/orecrawl/orecrawl/mergesort"
)

// NewBalanced builds a tree of minimal height from an unsorted, non-empty
// batch of entries. The batch is sorted ascending by key with a stable
// merge sort, then inserted mid-first so that at every step the exact
// median (lower-middle for even counts) of the remaining range becomes the
// subtree root. For n distinct keys the resulting height is exactly
// ceil(log2(n+1)), and every insertion runs against an already balanced
// partial tree, for O(n log n) total.
//
// An empty batch returns ErrEmptyBatch. If the batch contains duplicate
// keys the last occurrence in input order wins, matching Insert's
// overwrite semantics; the tree then holds fewer entries than the batch.
func NewBalanced[K cmp.Ordered, I any](elements []Entry[K, I]) (*Tree[K, I], error) {
	if len(elements) == 0 {
		return nil, ErrEmptyBatch
	}
	sorted := mergesort.Sort(elements, func(e Entry[K, I]) K { return e.Key })

	// Collapse duplicate-key runs to their last element. The sort is
	// stable, so the last element of a run is the last occurrence in
	// input order, and the balance guarantee holds over distinct keys.
	uniq := sorted[:0]
	for i, e := range sorted {
		if i+1 < len(sorted) && sorted[i+1].Key == e.Key {
			continue
		}
		uniq = append(uniq, e)
	}
	sorted = uniq

	t := New[K, I]()

	// Explicit range stack rather than native recursion, so call-stack
	// depth stays constant regardless of batch size.
	type span struct{ start, end int }
	stack := []span{{0, len(sorted) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mid := (s.start + s.end) / 2
		t.Insert(sorted[mid].Key, sorted[mid].Item)

		if mid+1 <= s.end {
			stack = append(stack, span{mid + 1, s.end})
		}
		if s.start <= mid-1 {
			stack = append(stack, span{s.start, mid - 1})
		}
	}
	return t, nil
}
