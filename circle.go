package offset

import (
	"math"
)

// Circle is a circle or arc site. Its offset at distance t is the concentric
// circle of radius r + cw·t, which is how the bisector formulas treat arc
// orientation. K records whether the site grows or shrinks for the diagram
// construction layer.
//
// A point site is the circle with Radius 0 and CW orientation; see
// [PointSite].
type Circle struct {
	Center Point
	Radius float64
	CW     Orientation
	K      Side
}

var _ Site = Circle{}

// NewCircle returns a circle site. It returns [ErrInvalidSite] for negative
// or non-finite radii and for invalid orientation or offset flags.
func NewCircle(center Point, radius float64, cw Orientation, k Side) (Circle, error) {
	if !center.isFinite() || !isFinite(radius) {
		return Circle{}, errorf("NewCircle", ErrInvalidSite, "non-finite center %v or radius %g", center, radius)
	}
	if radius < 0 {
		return Circle{}, errorf("NewCircle", ErrInvalidSite, "negative radius %g", radius)
	}
	if !cw.Valid() {
		return Circle{}, errorf("NewCircle", ErrInvalidSite, "orientation %v", cw)
	}
	if !k.Valid() {
		return Circle{}, errorf("NewCircle", ErrInvalidSite, "offset direction %v", k)
	}
	return Circle{Center: center, Radius: radius, CW: cw, K: k}, nil
}

// PointSite returns p as a zero-radius circle site.
func PointSite(p Point) Circle {
	return p.Circle()
}

// Kind implements Site.
func (c Circle) Kind() SiteKind { return CircleKind }

func (Circle) site() {}

// IsPoint reports whether c is a degenerate point site.
func (c Circle) IsPoint() bool { return c.Radius == 0 }

// OffsetRadius returns the radius of the offset at distance t.
func (c Circle) OffsetRadius(t float64) float64 {
	return c.Radius + float64(c.CW)*t
}

// Distance implements Site.
func (c Circle) Distance(p Point) float64 {
	return float64(c.CW) * (p.Distance(c.Center) - c.Radius)
}

// Offset implements Site.
func (c Circle) Offset(p Point, t float64) float64 {
	return p.Distance(c.Center) - c.OffsetRadius(t)
}

func (c Circle) BoundingBox() Rect {
	r := c.Radius
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
