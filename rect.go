package offset

import (
	"math"
)

// Rect is an axis-aligned rectangle. It is used to track the extent of
// sampled bisectors and sites.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// EmptyRect is the identity for [Rect.Union]: it contains no points and
// unioning it with any rectangle yields that rectangle.
var EmptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// IsEmpty reports whether the rectangle contains no points.
func (r Rect) IsEmpty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies within r, including its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X <= r.X1 && pt.Y >= r.Y0 && pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint returns the smallest rectangle enclosing both r and pt. NaN and
// infinite points are ignored.
func (r Rect) UnionPoint(pt Point) Rect {
	if !pt.isFinite() {
		return r
	}
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate returns a new rectangle grown by width on the left and right and
// by height on the top and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	r = r.Abs()
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}
