package offset

import "math"

const (
	// epsilon is the tolerance below which a determinant or denominator is
	// treated as zero.
	epsilon = 1e-9
	// chopTolerance is the relative tolerance used to snap radical
	// arguments that are negative only through rounding.
	chopTolerance = 1e-10
	// normTolerance bounds |a²+b²−1| for a line site.
	normTolerance = 1e-9
)

// chop returns 0 if |v| < tol and v otherwise.
func chop(v, tol float64) float64 {
	if math.Abs(v) < tol {
		return 0
	}
	return v
}

func isFinite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// interval is a closed parameter interval [lo, hi]. hi may be +Inf.
type interval struct {
	lo, hi float64
}

func halfLine() interval {
	return interval{0, math.Inf(1)}
}

// require narrows the interval to the values of t satisfying a + b·t ≥ 0.
func (iv interval) require(a, b float64) interval {
	b = chop(b, epsilon)
	switch {
	case b > 0:
		iv.lo = max(iv.lo, -a/b)
	case b < 0:
		iv.hi = min(iv.hi, -a/b)
	default:
		if chop(a, epsilon) < 0 {
			iv.hi = math.Inf(-1)
		}
	}
	return iv
}

func (iv interval) empty() bool {
	return iv.lo > iv.hi
}
