package offset

import (
	"fmt"
	"math"
)

// Point is a location in the plane. As a [Site] it is a point site: a
// zero-radius circle that grows uniformly in every direction.
type Point struct {
	X float64
	Y float64
}

var _ Site = Point{}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points. It is also the
// offset distance of o from the point site pt.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

func (pt Point) isFinite() bool {
	return !pt.IsNaN() && !pt.IsInf()
}

// Kind implements Site.
func (pt Point) Kind() SiteKind { return PointKind }

func (Point) site() {}

// Circle returns the point as a degenerate circle site: zero radius,
// clockwise, growing.
func (pt Point) Circle() Circle {
	return Circle{Center: pt, Radius: 0, CW: CW, K: Right}
}

// Offset implements Site.
func (pt Point) Offset(p Point, t float64) float64 {
	return pt.Distance(p) - t
}
