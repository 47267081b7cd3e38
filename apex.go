package offset

import (
	"math"
)

// Apex is a point at equal offset distance T from three sites, a candidate
// Voronoi vertex.
type Apex struct {
	T float64
	P Point
}

// Separator is the ray from a line site's endpoint, orthogonal to the line
// and pointing to its growth side. Every point on it is at the same offset
// distance from the line and from the endpoint.
type Separator struct {
	Origin Point
	Dir    Vec2
}

// NewSeparator returns the separator of line l at its endpoint end. It
// returns [ErrInvalidSite] if end does not lie on l.
func NewSeparator(l Line, end Point) (Separator, error) {
	const op = "NewSeparator"
	if err := l.validate(op); err != nil {
		return Separator{}, err
	}
	if !l.Contains(end) {
		return Separator{}, errorf(op, ErrInvalidSite, "endpoint %v is %g off the line", end, l.SignedDistance(end))
	}
	dir := l.Normal()
	if l.K == Right {
		dir = dir.Negate()
	}
	return Separator{Origin: end, Dir: dir}, nil
}

// At returns the point of the separator at offset distance t.
func (s Separator) At(t float64) Point {
	return s.Origin.Translate(s.Dir.Mul(t))
}

// SolveApex returns the apex of line l1, its endpoint p2 and a third site,
// which must be a line or a point site.
func SolveApex(l1 Line, p2 Point, s3 Site) (Apex, error) {
	switch s3 := s3.(type) {
	case Line:
		return ApexLine(l1, p2, s3)
	case Point:
		return ApexPoint(l1, p2, s3)
	case Circle:
		if s3.IsPoint() {
			return ApexPoint(l1, p2, s3.Center)
		}
		return Apex{}, errorf("SolveApex", ErrInvalidSite, "third site is a circle of radius %g", s3.Radius)
	default:
		return Apex{}, errorf("SolveApex", ErrInvalidSite, "unsupported site %T", s3)
	}
}

// ApexLine returns the apex of line l1, its endpoint p2 and line l3.
// Substituting the separator into l3's offset equation leaves a linear
// equation in t.
func ApexLine(l1 Line, p2 Point, l3 Line) (Apex, error) {
	const op = "ApexLine"
	sep, err := NewSeparator(l1, p2)
	if err != nil {
		return Apex{}, err
	}
	if err := l3.validate(op); err != nil {
		return Apex{}, err
	}
	den := sep.Dir.Dot(l3.Normal()) + float64(l3.K)
	if math.Abs(den) < epsilon {
		return Apex{}, errorf(op, ErrDegenerate, "separator parallel to the third line's offsets (denominator=%g)", den)
	}
	return apexAt(op, sep, -l3.SignedDistance(p2)/den)
}

// ApexPoint returns the apex of line l1, its endpoint p2 and point p3. The
// quadratic terms of the equidistance condition cancel, leaving a linear
// equation in t.
func ApexPoint(l1 Line, p2 Point, p3 Point) (Apex, error) {
	const op = "ApexPoint"
	sep, err := NewSeparator(l1, p2)
	if err != nil {
		return Apex{}, err
	}
	if !p3.isFinite() {
		return Apex{}, errorf(op, ErrInvalidSite, "non-finite point %v", p3)
	}
	d := p2.Sub(p3)
	den := 2 * d.Dot(sep.Dir)
	if math.Abs(den) < epsilon {
		return Apex{}, errorf(op, ErrDegenerate, "point %v on the separator's perpendicular (denominator=%g)", p3, den)
	}
	return apexAt(op, sep, -d.Hypot2()/den)
}

func apexAt(op string, sep Separator, t float64) (Apex, error) {
	t = chop(t, epsilon)
	if t < 0 || !isFinite(t) {
		return Apex{}, errorf(op, ErrNoSolution, "t=%g", t)
	}
	return Apex{T: t, P: sep.At(t)}, nil
}

// ApexPPP returns the apex of three point sites: the center of the circle
// through them, with T its radius. It returns [ErrDegenerate] for collinear
// or coincident points.
func ApexPPP(p1, p2, p3 Point) (Apex, error) {
	const op = "ApexPPP"
	for _, p := range [...]Point{p1, p2, p3} {
		if !p.isFinite() {
			return Apex{}, errorf(op, ErrInvalidSite, "non-finite point %v", p)
		}
	}
	// Work relative to p1 to keep the determinant well conditioned.
	b := p2.Sub(p1)
	c := p3.Sub(p1)
	cross := b.Cross(c)
	if math.Abs(cross) <= epsilon*b.Hypot()*c.Hypot() {
		return Apex{}, errorf(op, ErrDegenerate, "collinear points %v, %v, %v", p1, p2, p3)
	}
	d := 2 * cross
	b2, c2 := b.Hypot2(), c.Hypot2()
	u := Vec2{
		X: (c.Y*b2 - b.Y*c2) / d,
		Y: (b.X*c2 - c.X*b2) / d,
	}
	return Apex{T: u.Hypot(), P: p1.Translate(u)}, nil
}
