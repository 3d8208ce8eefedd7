package rstar

import "github.com/npillmayer/rstar/geom"

// ForEach calls fn for every item in the tree.
//
// Iteration stops early if fn returns false. ForEach returns true if the
// traversal ran to completion and false if fn cancelled it.
// Items are visited in node order, which is unrelated to any spatial order.
func (t *Tree[T]) ForEach(fn func(item T) bool) bool {
	if t.IsEmpty() || fn == nil {
		return true
	}
	return forEachNode(t.root, nil, fn)
}

// ForEachAt calls fn for every item whose box contains the point (x, y).
// Cancellation works as for ForEach.
func (t *Tree[T]) ForEachAt(x, y float64, fn func(item T) bool) bool {
	if t.IsEmpty() || fn == nil {
		return true
	}
	return forEachNode(t.root, func(b geom.Box) bool {
		return b.CoversPoint(x, y)
	}, fn)
}

// ForEachIn calls fn for every item whose box intersects query.
// Cancellation works as for ForEach.
func (t *Tree[T]) ForEachIn(query geom.Box, fn func(item T) bool) bool {
	if t.IsEmpty() || fn == nil {
		return true
	}
	return forEachNode(t.root, query.Intersects, fn)
}

// Search returns all items whose box intersects query.
func (t *Tree[T]) Search(query geom.Box) []T {
	var items []T
	t.ForEachIn(query, func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// forEachNode visits the items below n. Children whose box does not satisfy
// match are pruned; a nil match visits everything.
func forEachNode[T any](n *branch[T], match func(geom.Box) bool, fn func(item T) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	for _, c := range n.children {
		if match != nil && !match(c.Box()) {
			continue
		}
		switch c := c.(type) {
		case *leaf[T]:
			if !fn(c.item) {
				return false
			}
		case *branch[T]:
			if !forEachNode(c, match, fn) {
				return false
			}
		}
	}
	return true
}

// NodeInfo describes a node visited by Traverse.
type NodeInfo[T any] struct {
	Depth    int      // 0 for the root
	Box      geom.Box // item box for leaves, aggregate box for branches
	IsLeaf   bool
	Children int // number of children, 0 for leaves
	Item     T   // valid for leaves only
}

// Traverse walks all nodes of the tree in pre-order, parents before their
// children. Traversal stops early if fn returns false; Traverse then returns
// false.
func (t *Tree[T]) Traverse(fn func(NodeInfo[T]) bool) bool {
	if t.IsEmpty() || fn == nil {
		return true
	}
	return traverseNode[T](t.root, 0, fn)
}

func traverseNode[T any](n treeNode[T], depth int, fn func(NodeInfo[T]) bool) bool {
	switch n := n.(type) {
	case *leaf[T]:
		return fn(NodeInfo[T]{Depth: depth, Box: n.box, IsLeaf: true, Item: n.item})
	case *branch[T]:
		if !fn(NodeInfo[T]{Depth: depth, Box: n.box, Children: len(n.children)}) {
			return false
		}
		for _, c := range n.children {
			if !traverseNode(c, depth+1, fn) {
				return false
			}
		}
	}
	return true
}
