package rstar

import (
	"math"
	"slices"

	"github.com/npillmayer/rstar/geom"
)

// edge selects the sort key of a split candidate: lower or upper bound of a
// child's box on the split axis.
type edge int

const (
	lowerEdge edge = iota
	upperEdge
)

var edges = [...]edge{lowerEdge, upperEdge}

// distribution is the best split candidate found on one axis.
type distribution struct {
	edge    edge
	k       int // first MinItems+k children form the left group
	overlap float64
	area    float64
}

// split partitions the children of an overflowing branch n. n keeps the left
// group, the right group is moved to a new sibling branch which is returned.
//
// The split axis is the one with the least sum of margins over all legal
// distributions; on that axis the distribution with the least overlap (ties:
// least area) wins. Ties keep the candidate found first, X before Y and lower
// before upper edge.
func (t *Tree[T]) split(n *branch[T]) *branch[T] {
	m := t.cfg.MinItems
	count := len(n.children)
	distributionCount := count - 2*m + 1
	assert(distributionCount >= 1, "split: not enough children for a legal distribution")
	original := slices.Clone(n.children)
	bestAxis, bestMargin := geom.X, math.Inf(1)
	var best distribution
	for _, axis := range geom.Axes {
		var marginSum float64
		candidate := distribution{overlap: math.Inf(1), area: math.Inf(1)}
		for _, e := range edges {
			sorted := sortedByEdge(original, axis, e)
			left, right := groupBoxes(sorted)
			for k := 0; k < distributionCount; k++ {
				r1, r2 := left[m+k-1], right[m+k]
				marginSum += r1.EdgeDeltas() + r2.EdgeDeltas()
				overlap := r1.OverlapArea(r2)
				area := r1.Area() + r2.Area()
				if overlap < candidate.overlap || (overlap == candidate.overlap && area < candidate.area) {
					candidate = distribution{edge: e, k: k, overlap: overlap, area: area}
				}
			}
		}
		if marginSum < bestMargin {
			bestAxis, bestMargin, best = axis, marginSum, candidate
		}
	}
	sorted := sortedByEdge(original, bestAxis, best.edge)
	at := m + best.k
	sibling := makeBranch[T](n.hasLeaves, slices.Clone(sorted[at:])...)
	clear(n.children)
	n.children = append(n.children[:0], sorted[:at]...)
	n.recalc()
	tracer().Debugf("rstar: split %d children on axis %s at %d", count, bestAxis, at)
	return sibling
}

// sortedByEdge returns a copy of children, stably sorted by the lower or upper
// bound of their boxes on axis.
func sortedByEdge[T any](children []treeNode[T], axis geom.Axis, e edge) []treeNode[T] {
	sorted := slices.Clone(children)
	key := func(n treeNode[T]) float64 {
		if e == lowerEdge {
			return n.Box().Min(axis)
		}
		return n.Box().Max(axis)
	}
	slices.SortStableFunc(sorted, func(a, b treeNode[T]) int {
		ka, kb := key(a), key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
	return sorted
}

// groupBoxes returns prefix and suffix unions: left[i] covers children[0..i],
// right[i] covers children[i..].
func groupBoxes[T any](children []treeNode[T]) (left, right []geom.Box) {
	left = make([]geom.Box, len(children))
	right = make([]geom.Box, len(children))
	var acc geom.Accumulator
	for i, c := range children {
		acc.Extend(c.Box())
		left[i], _ = acc.Box()
	}
	acc.Reset()
	for i := len(children) - 1; i >= 0; i-- {
		acc.Extend(children[i].Box())
		right[i], _ = acc.Box()
	}
	return left, right
}
