package rstar

import (
	"slices"

	"github.com/npillmayer/rstar/geom"
)

// chooseSubtreeP bounds the number of candidates examined with the (quadratic)
// overlap-enlargement criterion in large nodes.
const chooseSubtreeP = 32

// chooseSubtree selects the child of n (at height h > 1) to descend into for
// an entry with box box.
//
// One level above the leaves the child with least overlap enlargement is
// chosen; for large nodes only the chooseSubtreeP children with least area
// enlargement are candidates. Higher up, the child with least area
// enlargement is chosen. Ties go to the first candidate.
func (t *Tree[T]) chooseSubtree(n *branch[T], h int, box geom.Box) *branch[T] {
	assert(h > 1 && len(n.children) > 0, "chooseSubtree called for leaf level or empty node")
	if h != 2 { // children are inner branches
		best, bestDelta := 0, n.children[0].Box().Enlargement(box)
		for i := 1; i < len(n.children); i++ {
			if delta := n.children[i].Box().Enlargement(box); delta < bestDelta {
				best, bestDelta = i, delta
			}
		}
		return n.child(best)
	}
	candidates := make([]int, len(n.children))
	for i := range candidates {
		candidates[i] = i
	}
	if t.cfg.MaxItems > chooseSubtreeP*2/3 && len(n.children) > chooseSubtreeP {
		slices.SortStableFunc(candidates, func(a, b int) int {
			da := n.children[a].Box().Enlargement(box)
			db := n.children[b].Box().Enlargement(box)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}
			return 0
		})
		candidates = candidates[:chooseSubtreeP]
	}
	best, bestDelta := candidates[0], overlapEnlargement(n.children, candidates[0], box)
	for _, i := range candidates[1:] {
		if delta := overlapEnlargement(n.children, i, box); delta < bestDelta {
			best, bestDelta = i, delta
		}
	}
	return n.child(best)
}

// overlapEnlargement returns how much the overlap of children[i] with its
// siblings grows if children[i] is extended to cover box.
func overlapEnlargement[T any](children []treeNode[T], i int, box geom.Box) float64 {
	current := children[i].Box()
	grown := current.Union(box)
	var delta float64
	for j, sibling := range children {
		if j == i {
			continue
		}
		delta += grown.OverlapArea(sibling.Box()) - current.OverlapArea(sibling.Box())
	}
	return delta
}
