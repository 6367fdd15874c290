// Package bst implements an in-memory binary search tree keyed by any
// ordered type, for use as an ordered index over key/item pairs.
//
// The tree does not rebalance itself. It is intended to be populated once
// through NewBalanced, which guarantees minimal height for the given key
// set, and queried repeatedly afterwards. Point inserts and deletes after
// the build keep the ordering invariant but may erode balance over time.
//
// Duplicate keys are not supported: Insert overwrites the item stored under
// an existing key. The tree is not safe for concurrent use; callers that
// share a tree across goroutines must serialize access externally.
package bst

import (
	"cmp"
	"errors"
)

var (
	// ErrKeyNotFound is returned by Delete when the key is absent.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrEmptyBatch is returned by NewBalanced for an empty input batch.
	ErrEmptyBatch = errors.New("bst: empty batch")
)

// Entry is a single key/item pair.
type Entry[K cmp.Ordered, I any] struct {
	Key  K
	Item I
}

// Tree is a binary search tree with unique keys. The zero value is not
// usable; construct with New or NewBalanced.
type Tree[K cmp.Ordered, I any] struct {
	root *Node[K, I]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, I any]() *Tree[K, I] {
	return &Tree[K, I]{}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, I]) Len() int {
	return t.size
}

// Root returns the root node, or nil for an empty tree. Exposed read-only
// for traversal algorithms layered on top of the tree; callers must not
// modify node links.
func (t *Tree[K, I]) Root() *Node[K, I] {
	return t.root
}

// Insert stores item under key, overwriting any existing item for that key.
func (t *Tree[K, I]) Insert(key K, item I) {
	n := &t.root
	for *n != nil {
		switch {
		case key < (*n).Key:
			n = &(*n).Left
		case key > (*n).Key:
			n = &(*n).Right
		default:
			(*n).Item = item
			return
		}
	}
	*n = &Node[K, I]{Key: key, Item: item}
	t.size++
}

// Get returns the item stored under key. The second return value reports
// whether the key was present, so a stored zero value is distinguishable
// from an absent key.
func (t *Tree[K, I]) Get(key K) (I, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return n.Item, true
		}
	}
	var zero I
	return zero, false
}

// Delete removes the entry stored under key. It returns ErrKeyNotFound if
// the key is absent.
func (t *Tree[K, I]) Delete(key K) error {
	n := &t.root
	for *n != nil && (*n).Key != key {
		if key < (*n).Key {
			n = &(*n).Left
		} else {
			n = &(*n).Right
		}
	}
	if *n == nil {
		return ErrKeyNotFound
	}
	node := *n
	switch {
	case node.Left == nil:
		*n = node.Right
	case node.Right == nil:
		*n = node.Left
	default:
		// Two children: splice in the in-order successor.
		s := &node.Right
		for (*s).Left != nil {
			s = &(*s).Left
		}
		succ := *s
		*s = succ.Right
		succ.Left = node.Left
		succ.Right = node.Right
		*n = succ
	}
	t.size--
	return nil
}

// Ascend calls fn for every entry in ascending key order until fn returns
// false or the tree is exhausted. The tree must not be modified during the
// iteration.
func (t *Tree[K, I]) Ascend(fn func(key K, item I) bool) {
	var stack []*Node[K, I]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.Left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur.Key, cur.Item) {
			return
		}
		cur = cur.Right
	}
}

// Entries returns all entries in ascending key order.
func (t *Tree[K, I]) Entries() []Entry[K, I] {
	out := make([]Entry[K, I], 0, t.size)
	t.Ascend(func(key K, item I) bool {
		out = append(out, Entry[K, I]{Key: key, Item: item})
		return true
	})
	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree[K, I]) Height() int {
	return height(t.root)
}

func height[K cmp.Ordered, I any](n *Node[K, I]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.Left), height(n.Right))
}
