package offset

import (
	"math"
)

// Arc is a circular arc starting at StartAngle and sweeping SweepAngle
// radians. Positive sweeps run anti-clockwise in a y-up coordinate system.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// Orientation returns CCW for positive sweeps and CW otherwise.
func (a Arc) Orientation() Orientation {
	if a.SweepAngle > 0 {
		return CCW
	}
	return CW
}

// Circle returns the arc's supporting circle site, offsetting towards k.
func (a Arc) Circle(k Side) (Circle, error) {
	return NewCircle(a.Center, a.Radius, a.Orientation(), k)
}

func (a Arc) Start() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle)
}

func (a Arc) End() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+a.SweepAngle)
}

// ContainsAngle reports whether the direction th, in radians, falls within
// the arc's sweep.
func (a Arc) ContainsAngle(th float64) bool {
	start, sweep := a.StartAngle, a.SweepAngle
	if sweep < 0 {
		start, sweep = start+sweep, -sweep
	}
	if sweep >= 2*math.Pi {
		return true
	}
	d := math.Mod(th-start, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= sweep
}
