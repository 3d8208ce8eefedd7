package rstar

import "github.com/npillmayer/rstar/geom"

// treeNode is either a *leaf or a *branch.
type treeNode[T any] interface {
	isLeaf() bool
	Box() geom.Box
}

// leaf holds exactly one item. Its box is the item's box.
type leaf[T any] struct {
	box  geom.Box
	item T
}

func (l *leaf[T]) isLeaf() bool  { return true }
func (l *leaf[T]) Box() geom.Box { return l.box }

// branch holds either leaves only (hasLeaves) or branches only. box is the
// union of the children's boxes.
type branch[T any] struct {
	box       geom.Box
	children  []treeNode[T]
	hasLeaves bool
}

func (b *branch[T]) isLeaf() bool  { return false }
func (b *branch[T]) Box() geom.Box { return b.box }

// makeBranch materializes a new branch and computes its box.
func makeBranch[T any](hasLeaves bool, children ...treeNode[T]) *branch[T] {
	b := &branch[T]{
		children:  children,
		hasLeaves: hasLeaves,
	}
	b.recalc()
	return b
}

// recalc recomputes the aggregate box from the children.
func (b *branch[T]) recalc() {
	assert(len(b.children) > 0, "recalc called for branch without children")
	var acc geom.Accumulator
	for _, c := range b.children {
		acc.Extend(c.Box())
	}
	b.box, _ = acc.Box()
}

// child returns child i, which must be a branch.
func (b *branch[T]) child(i int) *branch[T] {
	c, ok := b.children[i].(*branch[T])
	assert(ok, "branch child expected")
	return c
}

// appendLeaves collects all leaves below n.
func appendLeaves[T any](leaves []*leaf[T], n treeNode[T]) []*leaf[T] {
	switch n := n.(type) {
	case *leaf[T]:
		return append(leaves, n)
	case *branch[T]:
		for _, c := range n.children {
			leaves = appendLeaves(leaves, c)
		}
	}
	return leaves
}
