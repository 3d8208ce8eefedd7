package rstar

import (
	"fmt"
	"reflect"
)

const (
	// DefaultMinItems is the lower occupancy bound of non-root nodes.
	DefaultMinItems = 32
	// DefaultMaxItems is the maximum fanout of a node.
	DefaultMaxItems = 64
)

// Config configures an R*-tree.
type Config[T any] struct {
	// MinItems is the minimum number of children of every non-root node.
	// If zero, MaxItems/2 is used (or DefaultMinItems if MaxItems is zero, too).
	MinItems int
	// MaxItems is the maximum number of children of any node. It has to be at
	// least 2*MinItems. If zero, 2*MinItems is used.
	MaxItems int
	// Equal decides whether two items are the same during Remove.
	// If nil, items are compared with ==, which requires a comparable item
	// type; pointer items thus compare by identity. Items held in interfaces
	// whose dynamic values are not comparable never match.
	Equal func(a, b T) bool
}

func (cfg Config[T]) normalized() Config[T] {
	switch {
	case cfg.MinItems == 0 && cfg.MaxItems == 0:
		cfg.MinItems, cfg.MaxItems = DefaultMinItems, DefaultMaxItems
	case cfg.MinItems == 0:
		cfg.MinItems = cfg.MaxItems / 2
	case cfg.MaxItems == 0:
		cfg.MaxItems = 2 * cfg.MinItems
	}
	if cfg.Equal == nil && itemsComparable[T]() {
		cfg.Equal = itemsEqual[T]
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	return validateFanout(cfg.MinItems, cfg.MaxItems, cfg.Equal != nil)
}

func validateFanout(min, max int, hasEqual bool) error {
	if min < 1 {
		return fmt.Errorf("%w: minimum fanout must be >= 1, is %d", ErrInvalidConfig, min)
	}
	if max < 2*min {
		return fmt.Errorf("%w: maximum fanout %d must be >= 2 * minimum fanout %d",
			ErrInvalidConfig, max, min)
	}
	if !hasEqual {
		return fmt.Errorf("%w: item type is not comparable, Equal is required", ErrInvalidConfig)
	}
	return nil
}

func itemsComparable[T any]() bool {
	return reflect.TypeOf((*T)(nil)).Elem().Comparable()
}

// itemsEqual compares items with ==. Interfaces (at top level or nested in
// structs and arrays) may hold values of non-comparable dynamic types; such
// items are unequal to everything.
func itemsEqual[T any](a, b T) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return any(a) == any(b)
}
