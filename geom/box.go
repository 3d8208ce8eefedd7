package geom

import (
	"fmt"
	"math"
)

// Axis selects a coordinate axis of a Box.
type Axis int

// The two axes of the plane.
const (
	X Axis = iota
	Y
)

// Axes lists all axes in canonical order.
var Axes = [...]Axis{X, Y}

func (a Axis) String() string {
	if a == X {
		return "X"
	}
	return "Y"
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// NewBox creates a box from two corner points. The corners may be given in
// any order.
func NewBox(x1, y1, x2, y2 float64) Box {
	return Box{
		MinX: math.Min(x1, x2),
		MinY: math.Min(y1, y2),
		MaxX: math.Max(x1, x2),
		MaxY: math.Max(y1, y2),
	}
}

// Point returns a degenerate box covering exactly the point (x, y).
func Point(x, y float64) Box {
	return Box{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

// Validate checks that all coordinates are finite and min <= max on both axes.
func (b Box) Validate() error {
	for _, c := range [...]float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: non-finite coordinate in %v", ErrInvalidBox, b)
		}
	}
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return fmt.Errorf("%w: inverted coordinates in %v", ErrInvalidBox, b)
	}
	return nil
}

// Min returns the lower bound of b on axis a.
func (b Box) Min(a Axis) float64 {
	if a == X {
		return b.MinX
	}
	return b.MinY
}

// Max returns the upper bound of b on axis a.
func (b Box) Max(a Axis) float64 {
	if a == X {
		return b.MaxX
	}
	return b.MaxY
}

// Width is the extent of b along X.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height is the extent of b along Y.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Area returns width times height.
func (b Box) Area() float64 {
	return b.Width() * b.Height()
}

// EdgeDeltas returns the sum of width and height, i.e. half the perimeter.
// The R*-tree literature calls this the margin of a box.
func (b Box) EdgeDeltas() float64 {
	return b.Width() + b.Height()
}

// Center returns the center point of b.
func (b Box) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Union gives the smallest bounding box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		MinX: math.Min(b.MinX, other.MinX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MaxY: math.Max(b.MaxY, other.MaxY),
	}
}

// Enlargement returns how much additional area b would have to grow by to
// accommodate other.
func (b Box) Enlargement(other Box) float64 {
	return b.Union(other).Area() - b.Area()
}

// Intersects reports whether b and other share at least one point.
// Touching edges count as intersection.
func (b Box) Intersects(other Box) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// OverlapArea returns the area of the intersection of b and other, 0 if they
// are disjoint or only touch.
func (b Box) OverlapArea(other Box) float64 {
	w := math.Min(b.MaxX, other.MaxX) - math.Max(b.MinX, other.MinX)
	if w <= 0 {
		return 0
	}
	h := math.Min(b.MaxY, other.MaxY) - math.Max(b.MinY, other.MinY)
	if h <= 0 {
		return 0
	}
	return w * h
}

// Covers reports whether other lies completely inside b (borders included).
func (b Box) Covers(other Box) bool {
	return b.MinX <= other.MinX && b.MaxX >= other.MaxX &&
		b.MinY <= other.MinY && b.MaxY >= other.MaxY
}

// CoversPoint reports whether the point (x, y) lies inside b (borders included).
func (b Box) CoversPoint(x, y float64) bool {
	return b.MinX <= x && x <= b.MaxX && b.MinY <= y && y <= b.MaxY
}

// DistanceBetweenCenters returns the Euclidean distance between the center
// points of b and other.
func (b Box) DistanceBetweenCenters(other Box) float64 {
	bx, by := b.Center()
	ox, oy := other.Center()
	return math.Hypot(bx-ox, by-oy)
}

func (b Box) String() string {
	return fmt.Sprintf("[%g,%g %g,%g]", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// --- Accumulator -----------------------------------------------------------

// Accumulator is an expandable box. Its zero value is empty and covers
// nothing; every call to Extend grows it to cover the argument.
type Accumulator struct {
	box   Box
	valid bool // false for the zero value
}

// Extend grows the accumulated box to cover b.
func (acc *Accumulator) Extend(b Box) {
	if !acc.valid {
		acc.box = b
		acc.valid = true
		return
	}
	if b.MinX < acc.box.MinX {
		acc.box.MinX = b.MinX
	}
	if b.MinY < acc.box.MinY {
		acc.box.MinY = b.MinY
	}
	if b.MaxX > acc.box.MaxX {
		acc.box.MaxX = b.MaxX
	}
	if b.MaxY > acc.box.MaxY {
		acc.box.MaxY = b.MaxY
	}
}

// Box returns the accumulated box. ok is false if Extend has never been
// called since the last reset.
func (acc *Accumulator) Box() (b Box, ok bool) {
	return acc.box, acc.valid
}

// IsEmpty reports whether nothing has been accumulated yet.
func (acc *Accumulator) IsEmpty() bool {
	return !acc.valid
}

// Reset empties the accumulator.
func (acc *Accumulator) Reset() {
	*acc = Accumulator{}
}
