package offset

import (
	"iter"
	"math"
)

// Branch selects one of the two points a bisector yields for an offset
// distance.
type Branch int8

const (
	Plus  Branch = +1
	Minus Branch = -1
)

func (br Branch) String() string {
	if br == Minus {
		return "minus"
	}
	return "plus"
}

// radical returns √((c4 + c5·t)² − (c6 + c7·t)²). Arguments that are
// negative only through rounding are chopped to zero; ok is false for
// genuinely negative arguments.
func radical(c *[8]float64, t float64) (r float64, ok bool) {
	u := c[4] + c[5]*t
	v := c[6] + c[7]*t
	u2, v2 := u*u, v*v
	det := u2 - v2
	if det < 0 {
		if -det > chopTolerance*max(1, u2, v2) {
			return 0, false
		}
		det = 0
	}
	return math.Sqrt(det), true
}

// Points returns the two points of the bisector at offset distance t. For
// line/line bisectors both points coincide. It returns [ErrDomain] if the
// bisector does not exist at t.
//
// Points does not decide which branch is meaningful for a diagram region;
// see [Bisector.Nearest].
func (b Bisector) Points(t float64) (plus, minus Point, err error) {
	if math.IsNaN(t) {
		return Point{}, Point{}, errorf("Points", ErrDomain, "t is NaN")
	}
	sx, okx := radical(&b.X, t)
	sy, oky := radical(&b.Y, t)
	if !okx || !oky {
		return Point{}, Point{}, errorf("Points", ErrDomain, "t=%g, valid interval [%g, %g]", t, b.TMin, b.TMax)
	}
	x := b.X[0] - b.X[1] - b.X[2]*t
	y := b.Y[0] - b.Y[1] - b.Y[2]*t
	dx := b.X[3] * sx
	dy := b.Y[3] * sy
	return Point{x + dx, y - dy}, Point{x - dx, y + dy}, nil
}

// Eval returns the point on branch br at offset distance t.
func (b Bisector) Eval(t float64, br Branch) (Point, error) {
	plus, minus, err := b.Points(t)
	if err != nil {
		return Point{}, err
	}
	if br == Minus {
		return minus, nil
	}
	return plus, nil
}

// Nearest returns whichever of the two points at offset distance t lies
// closer to ref, and its branch. Callers tracing a bisector pass the
// previously accepted vertex, or a point inside the region being built, so
// that branch selection follows the geometry rather than a fixed sign.
// Ties resolve to Plus.
func (b Bisector) Nearest(t float64, ref Point) (Point, Branch, error) {
	plus, minus, err := b.Points(t)
	if err != nil {
		return Point{}, Plus, err
	}
	if minus.DistanceSquared(ref) < plus.DistanceSquared(ref) {
		return minus, Minus, nil
	}
	return plus, Plus, nil
}

// SampleRange returns n strictly increasing offset distances spanning
// [TMin, TMax], both ends included. It yields TMin alone if n is 1 or the
// interval is a single point, and nothing if n ≤ 0. Samples that would
// round to the previous value are skipped, so an interval narrower than n
// representable floats yields fewer than n values.
//
// The sequence holds no state and may be iterated any number of times.
func (b Bisector) SampleRange(n int) iter.Seq[float64] {
	tmin, tmax := b.TMin, b.TMax
	return func(yield func(float64) bool) {
		if n <= 0 {
			return
		}
		if n == 1 || !(tmax > tmin) {
			yield(tmin)
			return
		}
		span := tmax - tmin
		prev := tmin
		if !yield(tmin) {
			return
		}
		for i := 1; i < n-1; i++ {
			t := tmin + span*float64(i)/float64(n-1)
			if t <= prev || t >= tmax {
				continue
			}
			if !yield(t) {
				return
			}
			prev = t
		}
		yield(tmax)
	}
}

// Polyline samples branch br at n offset distances from [Bisector.SampleRange].
func (b Bisector) Polyline(n int, br Branch) ([]Point, error) {
	pts := make([]Point, 0, max(n, 0))
	for t := range b.SampleRange(n) {
		p, err := b.Eval(t, br)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}
