package offset

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewCircleValidation(t *testing.T) {
	if _, err := NewCircle(Pt(0, 0), -1, CW, Right); !errors.Is(err, ErrInvalidSite) {
		t.Errorf("negative radius: got error %v, want %v", err, ErrInvalidSite)
	}
	if _, err := NewCircle(Pt(0, 0), 1, 0, Right); !errors.Is(err, ErrInvalidSite) {
		t.Errorf("bad orientation: got error %v, want %v", err, ErrInvalidSite)
	}
	if _, err := NewCircle(Pt(math.Inf(1), 0), 1, CW, Right); !errors.Is(err, ErrInvalidSite) {
		t.Errorf("infinite center: got error %v, want %v", err, ErrInvalidSite)
	}
	if _, err := NewCircle(Pt(0, 0), 0, CW, Left); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCircleOffset(t *testing.T) {
	grow := mustCircle(t, Pt(0, 0), 5, CW, Right)
	shrink := mustCircle(t, Pt(0, 0), 5, CCW, Left)
	p := Pt(0, 8)

	if r := grow.OffsetRadius(3); r != 8 {
		t.Errorf("got offset radius %v, want 8", r)
	}
	if d := grow.Distance(p); d != 3 {
		t.Errorf("got offset distance %v, want 3", d)
	}
	if r := shrink.OffsetRadius(3); r != 2 {
		t.Errorf("got offset radius %v, want 2", r)
	}
	if d := shrink.Distance(Pt(2, 0)); d != 3 {
		t.Errorf("got offset distance %v, want 3", d)
	}
	if r := shrink.Offset(Pt(2, 0), 3); r != 0 {
		t.Errorf("got residual %v, want 0", r)
	}
	diff(t, Rect{-5, -5, 5, 5}, grow.BoundingBox())
}

func TestArc(t *testing.T) {
	a := Arc{Center: Pt(1, 1), Radius: 2, StartAngle: 0, SweepAngle: math.Pi / 2}
	if o := a.Orientation(); o != CCW {
		t.Errorf("got orientation %v, want %v", o, CCW)
	}
	diff(t, Pt(3, 1), a.Start(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, Pt(1, 3), a.End(), cmpopts.EquateApprox(0, 1e-12))
	if !a.ContainsAngle(math.Pi / 4) {
		t.Error("arc does not contain its midpoint direction")
	}
	if a.ContainsAngle(math.Pi) {
		t.Error("arc contains a direction outside its sweep")
	}
	if !a.ContainsAngle(2*math.Pi + 0.1) {
		t.Error("arc does not contain a wrapped direction")
	}

	b := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: math.Pi, SweepAngle: -math.Pi / 2}
	if o := b.Orientation(); o != CW {
		t.Errorf("got orientation %v, want %v", o, CW)
	}
	if !b.ContainsAngle(3 * math.Pi / 4) {
		t.Error("clockwise arc does not contain its midpoint direction")
	}
	c, err := b.Circle(Right)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Circle{Center: Pt(0, 0), Radius: 1, CW: CW, K: Right}, c)
}
