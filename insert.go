package rstar

import (
	"fmt"
	"math"
	"slices"

	"github.com/npillmayer/rstar/geom"
)

// reinsertP is the fraction of entries evicted by a forced reinsertion.
const reinsertP = 0.3

// pendingEntry is an entry evicted by forced reinsertion. level is the height
// of the entry: 0 for a leaf, 1 for a branch holding leaves, and so on.
type pendingEntry[T any] struct {
	entry treeNode[T]
	level int
}

// Insert adds an item with bounding box box to the tree.
//
// A box with non-finite or inverted coordinates is rejected with
// ErrInvalidArgument before the tree is touched.
func (t *Tree[T]) Insert(box geom.Box, item T) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidState)
	}
	if err := box.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	t.insertEntry(&leaf[T]{box: box, item: item}, 0, true)
	t.size++
	return nil
}

// insertEntry inserts e at level, starting at the root, then inserts entries
// evicted by forced reinsertion. Reinsertions never trigger another forced
// reinsertion.
func (t *Tree[T]) insertEntry(e treeNode[T], level int, allowReinsert bool) {
	if t.root == nil {
		assert(level == 0, "insertEntry: subtree entry for empty tree")
		t.root = makeBranch[T](true, e)
		t.height = 1
		return
	}
	t.insertFromRoot(e, level, allowReinsert)
	for len(t.reinsertions) > 0 {
		p := t.reinsertions[0]
		t.reinsertions = t.reinsertions[1:]
		t.insertFromRoot(p.entry, p.level, false)
	}
	t.reinsertions = nil
}

func (t *Tree[T]) insertFromRoot(e treeNode[T], level int, allowReinsert bool) {
	assert(level < t.height, "insertFromRoot: entry level exceeds tree height")
	sibling := t.insert(t.root, t.height, e, level, allowReinsert)
	if sibling == nil {
		return
	}
	// root has been split: tree grows by one level
	t.root = makeBranch[T](false, treeNode[T](t.root), treeNode[T](sibling))
	t.height++
	tracer().Debugf("rstar: root split, height is now %d", t.height)
}

// insert descends from n (at height h) to the node at height level+1 and
// appends e there. If n overflows and is split, the new right sibling is
// returned for the caller to adopt.
func (t *Tree[T]) insert(n *branch[T], h int, e treeNode[T], level int, allowReinsert bool) *branch[T] {
	assert(n.hasLeaves == (h == 1), "insert: node height inconsistent with leaf flag")
	n.box = n.box.Union(e.Box())
	if h == level+1 {
		n.children = append(n.children, e)
	} else {
		pending := len(t.reinsertions)
		child := t.chooseSubtree(n, h, e.Box())
		if sibling := t.insert(child, h-1, e, level, allowReinsert); sibling != nil {
			n.children = append(n.children, sibling)
		}
		if len(t.reinsertions) != pending {
			// a node below has shed entries, so n.box may be too large
			n.recalc()
		}
	}
	if len(n.children) <= t.cfg.MaxItems {
		return nil
	}
	if n != t.root && allowReinsert {
		t.forceReinsert(n, h)
		return nil
	}
	return t.split(n)
}

// forceReinsert evicts the entries of n farthest from n's center and queues
// them for insertion from the root.
func (t *Tree[T]) forceReinsert(n *branch[T], h int) {
	center := n.box
	entries := slices.Clone(n.children)
	slices.SortStableFunc(entries, func(a, b treeNode[T]) int {
		da := a.Box().DistanceBetweenCenters(center)
		db := b.Box().DistanceBetweenCenters(center)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	count := max(1, int(math.Ceil(reinsertP*float64(len(entries)))))
	clear(n.children)
	n.children = append(n.children[:0], entries[count:]...)
	n.recalc()
	tracer().Debugf("rstar: forced reinsertion of %d entries at height %d", count, h)
	for _, e := range entries[:count] {
		t.reinsertions = append(t.reinsertions, pendingEntry[T]{entry: e, level: h - 1})
	}
}
