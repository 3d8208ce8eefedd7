/*
Package geom provides the two-dimensional axis-aligned bounding box used as
keys of an R*-tree.

Boxes are plain values. Operations never modify a box in place; the only
mutable helper is Accumulator, which builds unions incrementally.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package geom

import "errors"

// ErrInvalidBox is returned by Validate for boxes with non-finite or
// inverted coordinates.
var ErrInvalidBox = errors.New("geom: invalid box")
