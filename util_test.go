package offset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func mustLine(t *testing.T, a, b, c float64, k Side) Line {
	t.Helper()
	l, err := NewLine(a, b, c, k)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func mustCircle(t *testing.T, center Point, r float64, cw Orientation, k Side) Circle {
	t.Helper()
	c, err := NewCircle(center, r, cw, k)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// angleLine returns the line with normal ⟨cos θ, sin θ⟩.
func angleLine(t *testing.T, th, c float64, k Side) Line {
	t.Helper()
	return mustLine(t, math.Cos(th), math.Sin(th), c, k)
}
