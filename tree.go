package rstar

import (
	"fmt"

	"github.com/npillmayer/rstar/geom"
)

// Tree is an in-memory R*-tree mapping bounding boxes to items of type T.
//
// The zero value is not usable; create trees with New.
type Tree[T any] struct {
	cfg    Config[T]
	root   *branch[T]
	size   int
	height int // number of branch levels; 0 means empty tree

	// entries evicted by forced reinsertion, waiting to be inserted again
	reinsertions []pendingEntry[T]
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// SetFanout changes the node occupancy bounds. This is legal for empty trees
// only; for a tree holding items it returns ErrInvalidState and leaves the
// configuration unchanged.
func (t *Tree[T]) SetFanout(min, max int) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidState)
	}
	if !t.IsEmpty() {
		return fmt.Errorf("%w: cannot change fanout of tree holding %d items", ErrInvalidState, t.size)
	}
	if err := validateFanout(min, max, t.cfg.Equal != nil); err != nil {
		return err
	}
	t.cfg.MinItems, t.cfg.MaxItems = min, max
	return nil
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of branch levels, where 0 means empty and 1 means
// a root holding items directly.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Bounds returns the box covering all items. ok is false for an empty tree.
func (t *Tree[T]) Bounds() (box geom.Box, ok bool) {
	if t.IsEmpty() {
		return geom.Box{}, false
	}
	return t.root.box, true
}

// Clear removes all items.
func (t *Tree[T]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
	t.height = 0
	t.reinsertions = nil
}
