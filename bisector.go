package offset

import (
	"fmt"
	"math"
)

const (
	// DefaultLineTMax is the default upper bound of a line/line bisector's
	// parameter interval.
	DefaultLineTMax = 20
	// DefaultTMax is the default upper bound of circle/circle and
	// circle/line bisectors' parameter intervals.
	DefaultTMax = 100
)

// BisectorKind identifies which pair of sites a [Bisector] separates.
type BisectorKind uint8

const (
	LineLineKind BisectorKind = iota
	CircleCircleKind
	CircleLineKind
)

func (k BisectorKind) String() string {
	switch k {
	case LineLineKind:
		return "line/line"
	case CircleCircleKind:
		return "circle/circle"
	case CircleLineKind:
		return "circle/line"
	default:
		return fmt.Sprintf("BisectorKind(%d)", uint8(k))
	}
}

// Bisector is the locus of points at equal offset distance t from two sites,
// parametrized by t. Following Held, every bisector of points, lines and
// circles has the form
//
//	x(t) = x0 − x1 − x2·t ± x3·√((x4 + x5·t)² − (x6 + x7·t)²)
//	y(t) = y0 − y1 − y2·t ∓ y3·√((y4 + y5·t)² − (y6 + y7·t)²)
//
// and is a line for two lines, a parabola for a circle and a line, and an
// ellipse or hyperbola for two circles.
//
// A Bisector is an immutable value. Its zero value is not useful; construct
// bisectors with [LineLine], [CircleCircle], [CircleLine] or [New].
type Bisector struct {
	X, Y [8]float64
	// TMin and TMax bound the parameter interval over which the bisector is
	// evaluated. Both branches exist everywhere in [TMin, TMax].
	TMin, TMax float64

	kind   BisectorKind
	s1, s2 Site
	// hi is the largest t for which the bisector exists. It is +Inf for
	// every configuration except shrinking circles.
	hi float64
}

// New returns the bisector of two sites, dispatching on their kinds. Point
// sites are treated as zero-radius circles and a (line, circle) pair is
// swapped into circle/line order.
func New(s1, s2 Site) (Bisector, error) {
	l1, ok1 := s1.(Line)
	l2, ok2 := s2.(Line)
	switch {
	case ok1 && ok2:
		return LineLine(l1, l2)
	case ok1:
		c2, err := asCircle("New", s2)
		if err != nil {
			return Bisector{}, err
		}
		return CircleLine(c2, l1)
	case ok2:
		c1, err := asCircle("New", s1)
		if err != nil {
			return Bisector{}, err
		}
		return CircleLine(c1, l2)
	default:
		c1, err := asCircle("New", s1)
		if err != nil {
			return Bisector{}, err
		}
		c2, err := asCircle("New", s2)
		if err != nil {
			return Bisector{}, err
		}
		return CircleCircle(c1, c2)
	}
}

func asCircle(op string, s Site) (Circle, error) {
	switch s := s.(type) {
	case Point:
		return s.Circle(), nil
	case Circle:
		return s, nil
	default:
		return Circle{}, errorf(op, ErrInvalidSite, "unsupported site %T", s)
	}
}

// LineLine returns the bisector of two lines, which is itself a line through
// their intersection. It returns [ErrDegenerate] for parallel lines.
func LineLine(l1, l2 Line) (Bisector, error) {
	const op = "LineLine"
	if err := l1.validate(op); err != nil {
		return Bisector{}, err
	}
	if err := l2.validate(op); err != nil {
		return Bisector{}, err
	}
	delta := l1.A*l2.B - l2.A*l1.B
	if math.Abs(delta) < epsilon {
		return Bisector{}, errorf(op, ErrDegenerate, "parallel lines (delta=%g)", delta)
	}
	k1, k2 := float64(l1.K), float64(l2.K)
	// Intersection point.
	alfa1 := (l1.B*l2.C - l2.B*l1.C) / delta
	alfa2 := (l2.A*l1.C - l1.A*l2.C) / delta
	// Direction, oriented so that the bisector traces both lines' offsets.
	alfa3 := (l2.B*k1 - l1.B*k2) / delta
	alfa4 := (l1.A*k2 - l2.A*k1) / delta

	return Bisector{
		X:    [8]float64{alfa1, 0, alfa3, 0, 0, 0, 0, 0},
		Y:    [8]float64{alfa2, 0, alfa4, 0, 0, 0, 0, 0},
		TMin: 0,
		TMax: DefaultLineTMax,
		kind: LineLineKind,
		s1:   l1,
		s2:   l2,
		hi:   math.Inf(1),
	}, nil
}

// CircleCircle returns the bisector of two circles. Passing zero-radius
// circles yields the bisector of two points, a line whose interval starts at
// half their distance. It returns [ErrDegenerate] for concentric circles and
// for circles whose offsets never meet.
func CircleCircle(c1, c2 Circle) (Bisector, error) {
	const op = "CircleCircle"
	if err := c1.validate(op); err != nil {
		return Bisector{}, err
	}
	if err := c2.validate(op); err != nil {
		return Bisector{}, err
	}
	d := c1.Center.Distance(c2.Center)
	if d < epsilon {
		return Bisector{}, errorf(op, ErrDegenerate, "concentric circles at %v", c1.Center)
	}
	r1, r2 := c1.Radius, c2.Radius
	l1, l2 := float64(c1.CW), float64(c2.CW)
	alfa1 := (c2.Center.X - c1.Center.X) / d
	alfa2 := (c2.Center.Y - c1.Center.Y) / d
	alfa3 := (r2*r2 - r1*r1 - d*d) / (2 * d)
	alfa4 := (l2*r2 - l1*r1) / d

	// The offset circles of radii R1 = r1 + l1·t and R2 = r2 + l2·t
	// intersect exactly when R1, R2 ≥ 0 and they satisfy the triangle
	// inequality with d.
	iv := halfLine().
		require(r1, l1).
		require(r2, l2).
		require(r1+r2-d, l1+l2).
		require(d-r1+r2, l2-l1).
		require(d+r1-r2, l1-l2)
	if iv.empty() {
		return Bisector{}, errorf(op, ErrDegenerate, "offsets of circles at %v and %v never meet", c1.Center, c2.Center)
	}

	return Bisector{
		X:    [8]float64{c1.Center.X, alfa1 * alfa3, alfa1 * alfa4, alfa2, r1, l1, alfa3, alfa4},
		Y:    [8]float64{c1.Center.Y, alfa2 * alfa3, alfa2 * alfa4, alfa1, r1, l1, alfa3, alfa4},
		TMin: iv.lo,
		TMax: clampTMax(DefaultTMax, iv),
		kind: CircleCircleKind,
		s1:   c1,
		s2:   c2,
		hi:   iv.hi,
	}, nil
}

// CircleLine returns the bisector of a circle and a line, a parabola.
// Passing a zero-radius circle yields the bisector of a point and a line.
//
// The line's offset side is chosen towards the circle's center, overriding
// l.K; [Bisector.Sites] reports the line as used.
func CircleLine(c Circle, l Line) (Bisector, error) {
	const op = "CircleLine"
	if err := c.validate(op); err != nil {
		return Bisector{}, err
	}
	if err := l.validate(op); err != nil {
		return Bisector{}, err
	}
	alfa1 := l.A
	alfa2 := l.B
	// Signed distance of the center from the line.
	alfa3 := l.SignedDistance(c.Center)
	alfa4 := c.Radius
	k := Right
	if alfa3 > 0 {
		k = Left
	}
	l.K = k
	kf := float64(k)
	cw := float64(c.CW)

	iv := halfLine().
		require(alfa4, cw).
		require(alfa4-alfa3, cw-kf).
		require(alfa4+alfa3, cw+kf)
	if iv.empty() {
		return Bisector{}, errorf(op, ErrDegenerate, "offsets of circle at %v never meet the line", c.Center)
	}

	return Bisector{
		X:    [8]float64{c.Center.X, alfa1 * alfa3, alfa1 * kf, alfa2, alfa4, cw, alfa3, kf},
		Y:    [8]float64{c.Center.Y, alfa2 * alfa3, alfa2 * kf, alfa1, alfa4, cw, alfa3, kf},
		TMin: iv.lo,
		TMax: clampTMax(DefaultTMax, iv),
		kind: CircleLineKind,
		s1:   c,
		s2:   l,
		hi:   iv.hi,
	}, nil
}

func clampTMax(tmax float64, iv interval) float64 {
	return max(iv.lo, min(tmax, iv.hi))
}

// Kind returns the kind of site pair the bisector separates.
func (b Bisector) Kind() BisectorKind { return b.kind }

// Sites returns the two sites the bisector was constructed from, with point
// sites as zero-radius circles and a circle/line bisector's line carrying
// the offset side that was actually used.
func (b Bisector) Sites() (Site, Site) { return b.s1, b.s2 }

// WithTMax returns a copy of b whose interval ends at tmax, or at the end of
// the bisector if it ends before tmax. It returns [ErrDomain] if tmax is
// below TMin or not finite.
func (b Bisector) WithTMax(tmax float64) (Bisector, error) {
	if !isFinite(tmax) {
		return Bisector{}, errorf("WithTMax", ErrDomain, "tmax %g is not finite", tmax)
	}
	if tmax < b.TMin {
		return Bisector{}, errorf("WithTMax", ErrDomain, "tmax %g below tmin %g", tmax, b.TMin)
	}
	b.TMax = min(tmax, b.hi)
	return b, nil
}

// Check returns the larger of the two sites' offset residuals at p for
// offset distance t. It is zero, up to rounding, for points on the bisector.
func (b Bisector) Check(p Point, t float64) float64 {
	return max(math.Abs(b.s1.Offset(p, t)), math.Abs(b.s2.Offset(p, t)))
}

func (b Bisector) String() string {
	return fmt.Sprintf("%v bisector t∈[%g, %g] x=%v y=%v", b.kind, b.TMin, b.TMax, b.X, b.Y)
}

func (l Line) validate(op string) error {
	if _, err := NewLine(l.A, l.B, l.C, l.K); err != nil {
		return errorf(op, ErrInvalidSite, "line %g·x + %g·y + %g = 0, k=%v", l.A, l.B, l.C, l.K)
	}
	return nil
}

func (c Circle) validate(op string) error {
	if _, err := NewCircle(c.Center, c.Radius, c.CW, c.K); err != nil {
		return errorf(op, ErrInvalidSite, "circle at %v, r=%g, cw=%v, k=%v", c.Center, c.Radius, c.CW, c.K)
	}
	return nil
}
