package bst

// FilterKeys returns, in ascending key order, every entry whose key
// satisfies both predicates, pruning whole subtrees that provably cannot
// contain a qualifying key.
//
// The caller must supply monotone predicates: lower must be monotone
// non-decreasing over key order (false below some threshold, true from it
// upward, i.e. "key > lower bound") and upper monotone non-increasing
// ("key < upper bound"). Monotonicity is what makes pruning sound — if
// lower fails at a node, every key in its left subtree is smaller and fails
// too, and symmetrically for upper and the right subtree. It is not
// validated at runtime; non-monotone predicates yield an unspecified
// result set.
//
// Cost is O(h) predicate pairs for a narrow range on a balanced tree of
// height h, and O(n) when the range spans the whole key space.
func (t *Tree[K, I]) FilterKeys(lower, upper func(K) bool) []Entry[K, I] {
	var out []Entry[K, I]

	// Iterative in-order walk. Nodes go on the stack only after passing
	// the lower predicate; when a node fails it, its left subtree is
	// skipped outright and the walk moves to its right child if the upper
	// predicate allows.
	var stack []*Node[K, I]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			if lower(cur.Key) {
				stack = append(stack, cur)
				cur = cur.Left
				continue
			}
			if upper(cur.Key) {
				cur = cur.Right
			} else {
				cur = nil
			}
		}
		if len(stack) == 0 {
			break
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// lower already held when this node was pushed.
		if upper(cur.Key) {
			out = append(out, Entry[K, I]{Key: cur.Key, Item: cur.Item})
			cur = cur.Right
		} else {
			cur = nil
		}
	}
	return out
}
