package game

import (
	"container/heap"

	"github.com/orecrawl/orecrawl/blocks"
)

// blockHeap is a max-heap of blocks ordered by Ratio.
type blockHeap []blocks.Block

func (h blockHeap) Len() int           { return len(h) }
func (h blockHeap) Less(i, j int) bool { return h[i].Ratio() > h[j].Ratio() }
func (h blockHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *blockHeap) Push(x any)        { *h = append(*h, x.(blocks.Block)) }
func (h *blockHeap) Pop() any {
	old := *h
	n := len(old)
	b := old[n-1]
	*h = old[:n-1]
	return b
}

// newBlockHeap heapifies a copy of bs in O(n).
func newBlockHeap(bs []blocks.Block) *blockHeap {
	h := make(blockHeap, len(bs))
	copy(h, bs)
	heap.Init(&h)
	return &h
}

// PopMax removes and returns the block with the highest ratio.
func (h *blockHeap) PopMax() blocks.Block {
	return heap.Pop(h).(blocks.Block)
}
