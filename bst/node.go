package bst

import "cmp"

// Node is a single tree node. Key and Item hold the entry; Left and Right
// are nil for a missing child. All keys in the left subtree compare
// strictly less than Key, all keys in the right subtree strictly greater.
//
// Nodes are owned by their Tree. External traversals may read nodes via
// Tree.Root but must not modify them.
type Node[K cmp.Ordered, I any] struct {
	Key   K
	Item  I
	Left  *Node[K, I]
	Right *Node[K, I]
}

// IsLeaf reports whether the node has no children.
func (n *Node[K, I]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}
