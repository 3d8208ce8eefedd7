/*
Package rstar provides an in-memory R*-tree, a balanced spatial index mapping
two-dimensional axis-aligned bounding boxes to arbitrary items.

R*-trees

The R*-tree (Beckmann, Kriegel, Schneider, Seeger 1990) refines Guttman's
R-tree with three heuristics:

  - ChooseSubtree: one level above the leaves, new entries go to the subtree
    whose overlap with its siblings grows least; higher up, to the subtree
    whose area grows least.
  - Split: an overflowing node is split along the axis with the smallest sum
    of margins over all legal distributions, at the distribution with the
    smallest overlap (ties: smallest area).
  - Forced reinsertion: the first time a node overflows during an insertion,
    the 30% of its entries farthest from its center are removed and inserted
    again from the root instead of splitting the node.

Nodes form a tagged sum type (leaf or branch), the tree has no parent
pointers: all algorithms descend top-down and propagate structural changes
back up through return values.

Deletion

Removing items may leave a branch with fewer than the configured minimum of
children. Such a branch is detached and every item below it is inserted again
from the root (condense-tree). A root left with a single branch child is
collapsed, so the tree shrinks in height as it empties.

Concurrency

A Tree is not safe for concurrent use. Queries do not modify the tree, but
callers mixing queries with insertions or removals from several goroutines
have to serialize all access, e.g. with a sync.RWMutex held around every
operation.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rstar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is T for code where T names a type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
