package rstar

import (
	"slices"

	"github.com/npillmayer/rstar/geom"
)

// Remove deletes one item with a bounding box exactly equal to box for which
// Config.Equal reports equality with item. Only subtrees intersecting box are
// searched. Remove reports whether an item has been removed.
func (t *Tree[T]) Remove(box geom.Box, item T) bool {
	if t.IsEmpty() {
		return false
	}
	var orphans []*leaf[T]
	if !t.removeItem(t.root, box, item, &orphans) {
		return false
	}
	t.size--
	t.condense(orphans)
	return true
}

// RemoveItems deletes every item whose bounding box is covered by box and
// returns the number of items removed.
func (t *Tree[T]) RemoveItems(box geom.Box) int {
	if t.IsEmpty() {
		return 0
	}
	var orphans []*leaf[T]
	removed := t.removeCovered(t.root, box, &orphans)
	if removed == 0 {
		return 0
	}
	t.size -= removed
	t.condense(orphans)
	return removed
}

// removeItem searches n for a matching leaf and detaches it. Child branches
// left underfull are detached, too, and their leaves collected in orphans.
func (t *Tree[T]) removeItem(n *branch[T], box geom.Box, item T, orphans *[]*leaf[T]) bool {
	for i, c := range n.children {
		if !c.Box().Intersects(box) {
			continue
		}
		switch c := c.(type) {
		case *leaf[T]:
			if c.box != box || !t.cfg.Equal(c.item, item) {
				continue
			}
			n.children = slices.Delete(n.children, i, i+1)
		case *branch[T]:
			if !t.removeItem(c, box, item, orphans) {
				continue
			}
			if len(c.children) < t.cfg.MinItems {
				*orphans = appendLeaves(*orphans, treeNode[T](c))
				n.children = slices.Delete(n.children, i, i+1)
			}
		}
		if len(n.children) > 0 {
			n.recalc()
		}
		return true
	}
	return false
}

// removeCovered detaches every leaf below n covered by box and returns their
// number. Underfull child branches are handled as in removeItem.
func (t *Tree[T]) removeCovered(n *branch[T], box geom.Box, orphans *[]*leaf[T]) int {
	removed := 0
	kept := n.children[:0]
	for _, c := range n.children {
		switch c := c.(type) {
		case *leaf[T]:
			if box.Covers(c.box) {
				removed++
				continue
			}
		case *branch[T]:
			if c.box.Intersects(box) {
				if r := t.removeCovered(c, box, orphans); r > 0 {
					removed += r
					if len(c.children) < t.cfg.MinItems {
						*orphans = appendLeaves(*orphans, treeNode[T](c))
						continue
					}
				}
			}
		}
		kept = append(kept, c)
	}
	clear(n.children[len(kept):])
	n.children = kept
	if removed > 0 && len(kept) > 0 {
		n.recalc()
	}
	return removed
}

// condense shortens the tree if possible and inserts orphaned leaves again.
func (t *Tree[T]) condense(orphans []*leaf[T]) {
	t.normalizeRoot()
	if len(orphans) > 0 {
		tracer().Debugf("rstar: reinserting %d orphaned items", len(orphans))
	}
	for _, l := range orphans {
		t.insertEntry(l, 0, true)
	}
}

// normalizeRoot canonicalizes the root after removals:
//   - root without children => empty tree (height 0)
//   - root with a single branch child => collapse repeatedly.
func (t *Tree[T]) normalizeRoot() {
	for t.root != nil {
		if len(t.root.children) == 0 {
			t.root = nil
			t.height = 0
			return
		}
		if t.root.hasLeaves || len(t.root.children) > 1 {
			return
		}
		t.root = t.root.child(0)
		t.height--
		tracer().Debugf("rstar: root collapsed, height is now %d", t.height)
	}
}
