// Package plot draws evaluated scenes: sites in black, the plus branch of
// every bisector in green, the minus branch in red, and apexes in blue with
// their offset circle.
package plot

import (
	"image"
	"image/color"
	"iter"
	"slices"

	"github.com/fogleman/gg"
	"github.com/ovdgo/offset"
	"github.com/ovdgo/offset/scene"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Options controls the size of the output. Zero fields take their defaults.
type Options struct {
	// Width and Height are the image size in pixels. Default 800×800.
	Width, Height int
	// Padding is the margin around the drawing in pixels. Default 20; a
	// negative value means none.
	Padding float64
	// LineWidth is the stroke width of curves in pixels. Default 2.
	LineWidth float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.Padding < 0 {
		o.Padding = 0
	} else if o.Padding == 0 {
		o.Padding = 20
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 2
	}
	return o
}

var (
	background = colornames.White
	siteColor  = colornames.Black
	plusColor  = colornames.Green
	minusColor = colornames.Red
	apexColor  = colornames.Blue
	ringColor  = colornames.Lightgray
)

// pointRadius is the radius, in pixels, of the dot drawn for point sites and
// apexes.
const pointRadius = 3

// frame maps a result's world coordinates into image space.
type frame struct {
	world offset.Rect
	aff   offset.Affine
	scale float64
}

func newFrame(res *scene.Result, opts Options) frame {
	world := res.Bounds()
	aff := offset.Viewport(world, float64(opts.Width), float64(opts.Height), opts.Padding)
	return frame{
		world: world,
		aff:   aff,
		scale: aff.ScaleFactor(),
	}
}

func (f frame) pt(p offset.Point) offset.Point {
	return p.Transform(f.aff)
}

// all maps pts into image space.
func (f frame) all(pts []offset.Point) iter.Seq[offset.Point] {
	return offset.Transform(slices.Values(pts), f.aff)
}

// clip returns two points of l far enough apart to cross the whole frame.
func (f frame) clip(l offset.Line) (offset.Point, offset.Point) {
	world := f.world.Inflate(f.world.Width(), f.world.Height())
	ext := offset.Vec(world.Width(), world.Height()).Hypot()
	p := l.Project(f.world.Center())
	dir := l.Normal().Perp().Mul(ext)
	return p.Translate(dir.Negate()), p.Translate(dir)
}

// Render draws res. World coordinates are y-up and are scaled uniformly to
// fit the image.
func Render(res *scene.Result, opts Options) (image.Image, error) {
	if res == nil {
		return nil, errors.New("nothing to render")
	}
	opts = opts.withDefaults()
	f := newFrame(res, opts)

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(background)
	dc.Clear()

	// Offset circles go underneath everything else.
	dc.SetColor(ringColor)
	dc.SetLineWidth(1)
	for _, v := range res.Apexes {
		if v.Err != nil {
			continue
		}
		c := f.pt(v.P)
		dc.DrawCircle(c.X, c.Y, v.T*f.scale)
		dc.Stroke()
	}

	for _, c := range res.Curves {
		polyline(dc, f, c.Plus, plusColor, opts.LineWidth)
		polyline(dc, f, c.Minus, minusColor, opts.LineWidth)
	}

	drawSites(dc, f, res.Sites)

	dc.SetColor(apexColor)
	for _, v := range res.Apexes {
		if v.Err != nil {
			continue
		}
		c := f.pt(v.P)
		dc.DrawCircle(c.X, c.Y, pointRadius)
		dc.Fill()
	}
	return dc.Image(), nil
}

func polyline(dc *gg.Context, f frame, pts []offset.Point, c color.Color, width float64) {
	if len(pts) == 0 {
		return
	}
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.NewSubPath()
	for p := range f.all(pts) {
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()
}

func drawSites(dc *gg.Context, f frame, sites []scene.Site) {
	dc.SetColor(siteColor)
	for _, s := range sites {
		switch site := s.Site.(type) {
		case offset.Point:
			p := f.pt(site)
			dc.DrawCircle(p.X, p.Y, pointRadius)
			dc.Fill()
		case offset.Circle:
			p := f.pt(site.Center)
			if site.IsPoint() {
				dc.DrawCircle(p.X, p.Y, pointRadius)
				dc.Fill()
				continue
			}
			dc.SetLineWidth(1.5)
			dc.DrawCircle(p.X, p.Y, site.Radius*f.scale)
			dc.Stroke()
		case offset.Line:
			if len(s.Ends) == 2 {
				p0, p1 := f.pt(s.Ends[0]), f.pt(s.Ends[1])
				dc.SetLineWidth(3)
				dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
				dc.Stroke()
				continue
			}
			p0, p1 := f.clip(site)
			p0, p1 = f.pt(p0), f.pt(p1)
			dc.SetLineWidth(1)
			dc.SetDash(6, 4)
			dc.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
			dc.Stroke()
			dc.SetDash()
		}
	}
}

// SavePNG renders res to a PNG file at path.
func SavePNG(path string, res *scene.Result, opts Options) error {
	img, err := Render(res, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return errors.Wrapf(err, "couldn't write %s", path)
	}
	return nil
}
