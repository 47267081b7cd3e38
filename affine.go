package offset

import (
	"iter"
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Viewport returns the transform that maps world, a y-up rectangle, into a
// y-down image of the given size with padding pixels on every side. The
// scale is uniform and world is centered in the image.
func Viewport(world Rect, width, height, padding float64) Affine {
	world = world.Abs()
	w := max(world.Width(), math.SmallestNonzeroFloat64)
	h := max(world.Height(), math.SmallestNonzeroFloat64)
	s := min((width-2*padding)/w, (height-2*padding)/h)
	if s <= 0 || !isFinite(s) {
		s = 1
	}
	c := world.Center()
	return Translate(Vec2(c).Negate()).
		ThenScale(s, -s).
		ThenTranslate(Vec(width/2, height/2))
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// ScaleFactor returns the factor by which aff scales lengths, assuming it
// scales uniformly.
func (aff Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(aff.Determinant()))
}

// Transform returns seq with aff applied to every element.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
