package rstar

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rstar: invalid configuration")
	// ErrInvalidState signals an operation which is illegal in the tree's
	// current state, e.g. changing the fanout of a non-empty tree.
	ErrInvalidState = errors.New("rstar: invalid state")
	// ErrInvalidArgument signals invalid function parameters, e.g. a box
	// with non-finite or inverted coordinates.
	ErrInvalidArgument = errors.New("rstar: invalid argument")
	// ErrInvariantViolation is reported by Check for a structurally broken tree.
	ErrInvariantViolation = errors.New("rstar: invariant violated")
)
