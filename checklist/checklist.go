// Package checklist maintains a catalog of known blocks indexed by their
// value-to-hardness ratio, backed by a balanced binary search tree, and
// answers range queries over that ratio.
package checklist

import (
	"fmt"

	"github.com/orecrawl/orecrawl/blocks"
	"github.com/orecrawl/orecrawl/bst"
)

// Checklist is a ratio-keyed block catalog. Every block is assumed to have
// a distinct ratio; two different blocks with the same ratio cannot
// coexist in the checklist.
type Checklist struct {
	tree *bst.Tree[float64, blocks.Block]
}

// New builds a checklist from a non-empty batch of blocks. The underlying
// tree is built balanced, so later lookups and range queries stay
// logarithmic in the catalog size.
func New(batch []blocks.Block) (*Checklist, error) {
	entries := make([]bst.Entry[float64, blocks.Block], len(batch))
	for i, b := range batch {
		entries[i] = bst.Entry[float64, blocks.Block]{Key: b.Ratio(), Item: b}
	}
	tree, err := bst.NewBalanced(entries)
	if err != nil {
		return nil, fmt.Errorf("building checklist index: %w", err)
	}
	return &Checklist{tree: tree}, nil
}

// Len returns the number of blocks in the checklist.
func (c *Checklist) Len() int {
	return c.tree.Len()
}

// Contains reports whether the checklist holds this exact block: a block
// with the same ratio must be present and must be the same block by name.
func (c *Checklist) Contains(b blocks.Block) bool {
	got, ok := c.tree.Get(b.Ratio())
	return ok && got.Equal(b)
}

// Add inserts a block. If some block with the same ratio is already
// present the checklist is left unchanged.
func (c *Checklist) Add(b blocks.Block) {
	key := b.Ratio()
	if _, ok := c.tree.Get(key); ok {
		return
	}
	c.tree.Insert(key, b)
}

// Remove deletes the block with this block's ratio. Removing a block that
// is not in the checklist is a deliberate no-op, not an error.
func (c *Checklist) Remove(b blocks.Block) {
	_ = c.tree.Delete(b.Ratio())
}

// SortedBlocks returns all blocks ascending by ratio.
func (c *Checklist) SortedBlocks() []blocks.Block {
	out := make([]blocks.Block, 0, c.tree.Len())
	c.tree.Ascend(func(_ float64, b blocks.Block) bool {
		out = append(out, b)
		return true
	})
	return out
}

// OptimalBlocks returns, ascending by ratio, the blocks whose ratio lies
// strictly between the ratios of the two given blocks (in either argument
// order). The query runs as a pruned range scan over the index, so a
// narrow band costs O(log n) on the balanced tree.
func (c *Checklist) OptimalBlocks(b1, b2 blocks.Block) []blocks.Block {
	lower := min(b1.Ratio(), b2.Ratio())
	upper := max(b1.Ratio(), b2.Ratio())

	hits := c.tree.FilterKeys(
		func(k float64) bool { return k > lower },
		func(k float64) bool { return k < upper },
	)

	out := make([]blocks.Block, len(hits))
	for i, e := range hits {
		out[i] = e.Item
	}
	return out
}
