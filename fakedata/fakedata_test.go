package fakedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orecrawl/orecrawl/caves"
)

func TestGenBlocksDistinct(t *testing.T) {
	bs := GenBlocks(99, 50)
	require.Len(t, bs, 50)

	names := make(map[string]bool)
	ratios := make(map[float64]bool)
	for _, b := range bs {
		assert.False(t, names[b.Name], "duplicate name %q", b.Name)
		assert.False(t, ratios[b.Ratio()], "duplicate ratio %v", b.Ratio())
		names[b.Name] = true
		ratios[b.Ratio()] = true
		assert.Positive(t, b.Hardness)
		assert.Positive(t, b.Item.Value)
	}
}

func TestGenBlocksDeterministic(t *testing.T) {
	assert.Equal(t, GenBlocks(7, 20), GenBlocks(7, 20))
}

func TestGenSystemHoldsAllBlocks(t *testing.T) {
	bs := GenBlocks(5, 30)
	sys := GenSystem(5, 10, bs)
	require.NotNil(t, sys.Entrance)

	// Every chamber is reachable from the entrance by construction, and
	// every generated block must be scattered into exactly one chamber.
	visited := make(map[string]bool)
	stack := []*caves.Chamber{sys.Entrance}
	total := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur.Name] {
			continue
		}
		visited[cur.Name] = true
		total += len(cur.Blocks)
		stack = append(stack, cur.Neighbours...)
	}

	assert.Len(t, visited, 10)
	assert.Equal(t, len(bs), total)
}
