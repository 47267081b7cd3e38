package offset

import "fmt"

// SiteKind identifies the variant of a [Site].
type SiteKind uint8

const (
	PointKind SiteKind = iota
	LineKind
	CircleKind
)

func (k SiteKind) String() string {
	switch k {
	case PointKind:
		return "point"
	case LineKind:
		return "line"
	case CircleKind:
		return "circle"
	default:
		return fmt.Sprintf("SiteKind(%d)", uint8(k))
	}
}

// Site is a geometric primitive that a Voronoi region grows around. It is
// implemented by exactly three types: [Point], [Line] and [Circle].
//
// Every site defines an offset: the curve traced by points at offset
// distance t from the site. For a point this is a circle of radius t, for a
// line a parallel line on its growth side, and for a circle a concentric
// circle of radius r + cw·t.
type Site interface {
	Kind() SiteKind
	// Distance returns the offset distance t at which p lies on the site's
	// offset. For lines and circles the result is signed.
	Distance(p Point) float64
	// Offset returns the residual of the site's offset equation at p for
	// offset distance t. It is zero when p lies on the offset.
	Offset(p Point, t float64) float64

	site()
}

// Side selects which side of a line its offsets grow towards, or whether a
// circle grows or shrinks.
type Side int8

const (
	Left  Side = -1
	Right Side = +1
)

func (s Side) Valid() bool { return s == Left || s == Right }

func (s Side) String() string {
	switch s {
	case Left:
		return "-1"
	case Right:
		return "+1"
	default:
		return fmt.Sprintf("Side(%d)", int8(s))
	}
}

// Orientation is the direction of travel along a circle or arc site.
type Orientation int8

const (
	CW  Orientation = +1
	CCW Orientation = -1
)

func (o Orientation) Valid() bool { return o == CW || o == CCW }

func (o Orientation) String() string {
	switch o {
	case CW:
		return "cw"
	case CCW:
		return "ccw"
	default:
		return fmt.Sprintf("Orientation(%d)", int8(o))
	}
}
