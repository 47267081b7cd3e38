package offset

import (
	"errors"
	"slices"
	"testing"
)

func TestSampleRange(t *testing.T) {
	b, err := New(Pt(-10, 20), Pt(20, 4))
	if err != nil {
		t.Fatal(err)
	}
	ts := slices.Collect(b.SampleRange(200))
	if len(ts) != 200 {
		t.Fatalf("got %d samples, want 200", len(ts))
	}
	if ts[0] != b.TMin || ts[len(ts)-1] != b.TMax {
		t.Errorf("samples span [%g, %g], want [%g, %g]", ts[0], ts[len(ts)-1], b.TMin, b.TMax)
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Fatalf("samples not strictly increasing at %d: %g, %g", i, ts[i-1], ts[i])
		}
	}

	// The sequence is restartable and deterministic.
	diff(t, ts, slices.Collect(b.SampleRange(200)))

	if n := len(slices.Collect(b.SampleRange(0))); n != 0 {
		t.Errorf("got %d samples for n=0, want 0", n)
	}
	diff(t, []float64{b.TMin}, slices.Collect(b.SampleRange(1)))

	// Early termination.
	var n int
	for range b.SampleRange(10) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestSampleRangeDegenerateInterval(t *testing.T) {
	b, err := New(Pt(0, 0), Pt(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	b, err = b.WithTMax(b.TMin)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{5}, slices.Collect(b.SampleRange(50)))
}

func TestSampleRangeNarrowInterval(t *testing.T) {
	// Near 1e16 consecutive floats are 2 apart, so only a few of the
	// requested samples are distinct.
	b, err := New(Pt(0, 0), Pt(2e16, 0))
	if err != nil {
		t.Fatal(err)
	}
	b, err = b.WithTMax(b.TMin + 4)
	if err != nil {
		t.Fatal(err)
	}
	ts := slices.Collect(b.SampleRange(200))
	if len(ts) < 2 || len(ts) >= 200 {
		t.Fatalf("got %d samples, want between 2 and 199", len(ts))
	}
	if ts[0] != b.TMin || ts[len(ts)-1] != b.TMax {
		t.Errorf("samples span [%g, %g], want [%g, %g]", ts[0], ts[len(ts)-1], b.TMin, b.TMax)
	}
	for i := 1; i < len(ts); i++ {
		if ts[i] <= ts[i-1] {
			t.Fatalf("samples not strictly increasing at %d: %g, %g", i, ts[i-1], ts[i])
		}
	}
}

func TestPolyline(t *testing.T) {
	b, err := New(Pt(0, 0), Pt(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	plus, err := b.Polyline(11, Plus)
	if err != nil {
		t.Fatal(err)
	}
	minus, err := b.Polyline(11, Minus)
	if err != nil {
		t.Fatal(err)
	}
	if len(plus) != 11 || len(minus) != 11 {
		t.Fatalf("got %d and %d points, want 11", len(plus), len(minus))
	}
	// The bisector of two points is their perpendicular bisector, traced
	// outwards from the midpoint in opposite directions.
	for i := range plus {
		if plus[i].X != 5 || minus[i].X != 5 {
			t.Errorf("point %d off the perpendicular bisector: %v, %v", i, plus[i], minus[i])
		}
		if i > 0 && (plus[i].Y >= plus[i-1].Y || minus[i].Y <= minus[i-1].Y) {
			t.Errorf("branches do not move apart at %d: %v, %v", i, plus[i], minus[i])
		}
	}

	// A radical that is negative everywhere.
	var empty Bisector
	empty.X[6], empty.Y[6] = 1, 1
	if _, err := empty.Polyline(3, Plus); !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want %v", err, ErrDomain)
	}
}

func TestNearest(t *testing.T) {
	b, err := New(Pt(-10, 20), Pt(20, 4))
	if err != nil {
		t.Fatal(err)
	}
	plus, minus, err := b.Points(30)
	if err != nil {
		t.Fatal(err)
	}
	if plus == minus {
		t.Fatal("branches coincide")
	}
	for _, tt := range []struct {
		ref  Point
		want Point
		br   Branch
	}{
		{plus, plus, Plus},
		{minus, minus, Minus},
		{plus.Lerp(minus, 0.4), plus, Plus},
		{plus.Lerp(minus, 0.6), minus, Minus},
	} {
		got, br, err := b.Nearest(30, tt.ref)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want || br != tt.br {
			t.Errorf("ref %v: got %v (%v), want %v (%v)", tt.ref, got, br, tt.want, tt.br)
		}
	}

	if _, err := b.Eval(1, Minus); !errors.Is(err, ErrDomain) {
		t.Errorf("got error %v, want %v", err, ErrDomain)
	}
}
