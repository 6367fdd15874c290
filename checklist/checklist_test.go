package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orecrawl/orecrawl/blocks"
)

// ore makes a block with ratio value/hardness.
func ore(name string, value, hardness int) blocks.Block {
	return blocks.Block{
		Name:     name,
		Hardness: hardness,
		Item:     blocks.Item{Name: name + " item", Value: value},
	}
}

func testBatch() []blocks.Block {
	return []blocks.Block{
		ore("coal", 1, 1),     // 1.0
		ore("iron", 6, 2),     // 3.0
		ore("gold", 10, 2),    // 5.0
		ore("diamond", 35, 5), // 7.0
		ore("emerald", 45, 5), // 9.0
	}
}

func TestNewEmpty(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestContains(t *testing.T) {
	cl, err := New(testBatch())
	require.NoError(t, err)
	require.Equal(t, 5, cl.Len())

	assert.True(t, cl.Contains(ore("gold", 10, 2)))
	assert.False(t, cl.Contains(ore("redstone", 2, 1)), "absent ratio")
	// Same ratio as gold, different block.
	assert.False(t, cl.Contains(ore("fools gold", 10, 2)))
}

func TestAddSkipsOccupiedRatio(t *testing.T) {
	cl, err := New(testBatch())
	require.NoError(t, err)

	cl.Add(ore("lapis", 4, 2)) // ratio 2.0, free
	assert.Equal(t, 6, cl.Len())
	assert.True(t, cl.Contains(ore("lapis", 4, 2)))

	cl.Add(ore("pyrite", 10, 2)) // ratio 5.0, taken by gold
	assert.Equal(t, 6, cl.Len())
	assert.True(t, cl.Contains(ore("gold", 10, 2)))
	assert.False(t, cl.Contains(ore("pyrite", 10, 2)))
}

func TestRemove(t *testing.T) {
	cl, err := New(testBatch())
	require.NoError(t, err)

	cl.Remove(ore("iron", 6, 2))
	assert.Equal(t, 4, cl.Len())
	assert.False(t, cl.Contains(ore("iron", 6, 2)))

	// Absent block: benign no-op.
	cl.Remove(ore("iron", 6, 2))
	assert.Equal(t, 4, cl.Len())
}

func TestSortedBlocks(t *testing.T) {
	cl, err := New(testBatch())
	require.NoError(t, err)

	got := cl.SortedBlocks()
	names := make([]string, len(got))
	for i, b := range got {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"coal", "iron", "gold", "diamond", "emerald"}, names)
}

func TestOptimalBlocks(t *testing.T) {
	cl, err := New(testBatch())
	require.NoError(t, err)

	// Bounds are strict and argument order must not matter.
	for _, args := range [][2]blocks.Block{
		{ore("coal", 1, 1), ore("emerald", 45, 5)},
		{ore("emerald", 45, 5), ore("coal", 1, 1)},
	} {
		got := cl.OptimalBlocks(args[0], args[1])
		require.Len(t, got, 3)
		assert.Equal(t, "iron", got[0].Name)
		assert.Equal(t, "gold", got[1].Name)
		assert.Equal(t, "diamond", got[2].Name)
	}

	assert.Empty(t, cl.OptimalBlocks(ore("iron", 6, 2), ore("iron", 6, 2)),
		"empty band between equal pivots")
}
