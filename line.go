package offset

import (
	"math"
)

// Line is a directed line site a·x + b·y + c = 0 with unit normal (a, b).
// Its offset at distance t is the parallel line a·x + b·y + c + k·t = 0, so
// K selects the side the offsets grow towards.
//
// Use [NewLine] or [LineThrough] to construct lines; a Line literal with an
// unnormalized normal silently corrupts every bisector built from it.
type Line struct {
	A, B, C float64
	K       Side
}

var _ Site = Line{}

// NewLine returns the line a·x + b·y + c = 0 offsetting towards k. It
// returns [ErrInvalidSite] unless a² + b² = 1 within tolerance.
func NewLine(a, b, c float64, k Side) (Line, error) {
	if !isFinite(a, b, c) {
		return Line{}, errorf("NewLine", ErrInvalidSite, "non-finite coefficients %g, %g, %g", a, b, c)
	}
	if n := a*a + b*b; math.Abs(n-1) > normTolerance {
		return Line{}, errorf("NewLine", ErrInvalidSite, "normal not unit length: a²+b²=%g", n)
	}
	if !k.Valid() {
		return Line{}, errorf("NewLine", ErrInvalidSite, "offset direction %v", k)
	}
	return Line{A: a, B: b, C: c, K: k}, nil
}

// LineThrough returns the normalized line through p0 and p1, directed from
// p0 to p1. Its normal points to the right of the direction of travel in a
// y-up coordinate system.
func LineThrough(p0, p1 Point, k Side) (Line, error) {
	d := p1.Sub(p0)
	l := d.Hypot()
	if l == 0 || !isFinite(l) {
		return Line{}, errorf("LineThrough", ErrInvalidSite, "coincident points %v", p0)
	}
	a, b := d.Y/l, -d.X/l
	return NewLine(a, b, -(a*p0.X + b*p0.Y), k)
}

// Kind implements Site.
func (l Line) Kind() SiteKind { return LineKind }

func (Line) site() {}

// Normal returns the line's unit normal ⟨a, b⟩.
func (l Line) Normal() Vec2 { return Vec2{X: l.A, Y: l.B} }

// SignedDistance returns a·x + b·y + c, the signed euclidean distance of p
// from the line.
func (l Line) SignedDistance(p Point) float64 {
	return l.A*p.X + l.B*p.Y + l.C
}

// Distance implements Site. It is positive for points on the growth side.
func (l Line) Distance(p Point) float64 {
	return -float64(l.K) * l.SignedDistance(p)
}

// Offset implements Site.
func (l Line) Offset(p Point, t float64) float64 {
	return l.SignedDistance(p) + float64(l.K)*t
}

// Project returns the foot of the perpendicular from p onto the line.
func (l Line) Project(p Point) Point {
	return p.Translate(l.Normal().Mul(-l.SignedDistance(p)))
}

// Contains reports whether p lies on the line within tolerance.
func (l Line) Contains(p Point) bool {
	scale := max(1, math.Abs(p.X), math.Abs(p.Y), math.Abs(l.C))
	return math.Abs(l.SignedDistance(p)) <= normTolerance*scale
}

// Segment is a directed line segment. A segment contributes three sites to
// a diagram: its supporting [Line] and its two endpoints.
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Sub(s.P0).Hypot()
}

// Eval returns the point at parameter t ∈ [0, 1] along the segment.
func (s Segment) Eval(t float64) Point {
	return s.P0.Lerp(s.P1, t)
}

func (s Segment) Start() Point { return s.P0 }
func (s Segment) End() Point   { return s.P1 }

// Line returns the segment's supporting line site, offsetting towards k.
func (s Segment) Line(k Side) (Line, error) {
	return LineThrough(s.P0, s.P1, k)
}

// Reverse returns the segment traversed from P1 to P0.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// CrossingPoint computes the point where two segments, if extended to
// infinity, would cross.
func (s Segment) CrossingPoint(o Segment) (Point, bool) {
	ab := s.P1.Sub(s.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(s.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}
