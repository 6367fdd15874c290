package bst

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBalancedConcrete(t *testing.T) {
	tree, err := NewBalanced([]Entry[int, string]{
		{5, "e"}, {1, "a"}, {3, "c"}, {2, "b"}, {4, "d"},
	})
	require.NoError(t, err)

	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, 3, tree.Height())
	assert.Equal(t, 3, tree.Root().Key, "median of the sorted keys becomes the root")

	assert.Equal(t, []Entry[int, string]{
		{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {5, "e"},
	}, tree.Entries())
}

func TestNewBalancedEmpty(t *testing.T) {
	_, err := NewBalanced([]Entry[int, string]{})
	require.ErrorIs(t, err, ErrEmptyBatch)
}

func TestNewBalancedSingle(t *testing.T) {
	tree, err := NewBalanced([]Entry[int, string]{{7, "g"}})
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 1, tree.Height())
	assert.True(t, tree.Root().IsLeaf())
}

// minHeight is the minimal possible height of a BST over n distinct keys,
// ceil(log2(n+1)).
func minHeight(n int) int {
	return bits.Len(uint(n))
}

func TestNewBalancedHeight(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 100, 255, 256, 1000} {
		entries := make([]Entry[int, int], n)
		for i, k := range rng.Perm(n) {
			entries[i] = Entry[int, int]{Key: k, Item: k * 10}
		}
		tree, err := NewBalanced(entries)
		require.NoError(t, err)
		assert.Equalf(t, minHeight(n), tree.Height(), "height for n=%d", n)
	}
}

func TestNewBalancedRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	shuffles := map[string]func(n int) []int{
		"sorted": func(n int) []int {
			ks := make([]int, n)
			for i := range ks {
				ks[i] = i
			}
			return ks
		},
		"reversed": func(n int) []int {
			ks := make([]int, n)
			for i := range ks {
				ks[i] = n - 1 - i
			}
			return ks
		},
		"random": rng.Perm,
	}

	for name, keysOf := range shuffles {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 2, 6, 50, 333} {
				entries := make([]Entry[int, int], n)
				for i, k := range keysOf(n) {
					entries[i] = Entry[int, int]{Key: k, Item: k}
				}
				tree, err := NewBalanced(entries)
				require.NoError(t, err)
				require.Equal(t, n, tree.Len())

				got := tree.Entries()
				require.Len(t, got, n)
				for i, e := range got {
					require.Equal(t, i, e.Key, "in-order position %d", i)
					require.Equal(t, i, e.Item)
				}
			}
		})
	}
}

func TestNewBalancedDuplicateKeysLastWins(t *testing.T) {
	tree, err := NewBalanced([]Entry[int, string]{
		{1, "first"}, {2, "two"}, {1, "second"}, {3, "three"}, {1, "third"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, tree.Len())
	got, ok := tree.Get(1)
	require.True(t, ok)
	assert.Equal(t, "third", got)
}

func TestBalancedInsertAfterBuild(t *testing.T) {
	tree, err := NewBalanced([]Entry[int, string]{{2, "b"}, {4, "d"}, {6, "f"}})
	require.NoError(t, err)

	tree.Insert(5, "e")
	tree.Insert(1, "a")

	assert.Equal(t, 5, tree.Len())
	got := tree.Entries()
	keys := make([]int, len(got))
	for i, e := range got {
		keys[i] = e.Key
	}
	assert.Equal(t, []int{1, 2, 4, 5, 6}, keys)
}
