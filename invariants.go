package rstar

import (
	"fmt"

	"github.com/npillmayer/rstar/geom"
)

// Check validates structural tree invariants:
//
//   - every branch's box is the exact union of its children's boxes,
//   - children of a branch are all leaves or all branches,
//   - every non-root branch holds between MinItems and MaxItems children,
//     the root at most MaxItems,
//   - all leaves are at the same depth, matching Height(),
//   - Len() equals the number of leaves.
//
// This checker is intentionally strict and meant for tests and debugging.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariantViolation)
	}
	if t.root == nil {
		if t.height != 0 || t.size != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and size=0, has %d/%d",
				ErrInvariantViolation, t.height, t.size)
		}
		return nil
	}
	items, height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariantViolation, height, t.height)
	}
	if items != t.size {
		return fmt.Errorf("%w: size mismatch (%d items reachable, size is %d)",
			ErrInvariantViolation, items, t.size)
	}
	return nil
}

func (t *Tree[T]) checkNode(n *branch[T], isRoot bool) (items int, height int, err error) {
	if len(n.children) == 0 {
		return 0, 0, fmt.Errorf("%w: branch has no children", ErrInvariantViolation)
	}
	if len(n.children) > t.cfg.MaxItems {
		return 0, 0, fmt.Errorf("%w: child count %d exceeds maximum %d",
			ErrInvariantViolation, len(n.children), t.cfg.MaxItems)
	}
	if !isRoot && len(n.children) < t.cfg.MinItems {
		return 0, 0, fmt.Errorf("%w: child count %d below minimum %d",
			ErrInvariantViolation, len(n.children), t.cfg.MinItems)
	}
	var acc geom.Accumulator
	var childHeight int
	for i, child := range n.children {
		if child == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvariantViolation, i)
		}
		acc.Extend(child.Box())
		if child.isLeaf() != n.hasLeaves {
			return 0, 0, fmt.Errorf("%w: child %d does not match leaf flag of parent",
				ErrInvariantViolation, i)
		}
		if n.hasLeaves {
			items++
			continue
		}
		cItems, cHeight, cErr := t.checkNode(child.(*branch[T]), false)
		if cErr != nil {
			return 0, 0, cErr
		}
		items += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariantViolation)
		}
	}
	if union, _ := acc.Box(); union != n.box {
		return 0, 0, fmt.Errorf("%w: branch box %v differs from union of children %v",
			ErrInvariantViolation, n.box, union)
	}
	return items, childHeight + 1, nil
}
