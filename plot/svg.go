package plot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ovdgo/offset"
	"github.com/ovdgo/offset/scene"
	"github.com/pkg/errors"
)

// WriteSVG writes res as an SVG document using the same layout as [Render].
// Bisector branches become polylines with class "plus" or "minus" and an id
// of the bisector's name, sites have class "site" and apexes class "apex".
func WriteSVG(w io.Writer, res *scene.Result, opts Options) error {
	if res == nil {
		return errors.New("nothing to render")
	}
	opts = opts.withDefaults()
	f := newFrame(res, opts)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")

	for _, v := range res.Apexes {
		if v.Err != nil {
			continue
		}
		c := f.pt(v.P)
		fmt.Fprintf(bw, `<circle class="ring" cx="%.3f" cy="%.3f" r="%.3f" fill="none" stroke="lightgray"/>`+"\n",
			c.X, c.Y, v.T*f.scale)
	}
	for _, c := range res.Curves {
		writePolyline(bw, f, c.Name, "plus", "green", c.Plus, opts.LineWidth)
		writePolyline(bw, f, c.Name, "minus", "red", c.Minus, opts.LineWidth)
	}
	for _, s := range res.Sites {
		writeSite(bw, f, s)
	}
	for _, v := range res.Apexes {
		if v.Err != nil {
			continue
		}
		c := f.pt(v.P)
		fmt.Fprintf(bw, `<circle class="apex" id="%s" cx="%.3f" cy="%.3f" r="%d" fill="blue"/>`+"\n",
			escape(v.Name), c.X, c.Y, pointRadius)
	}
	fmt.Fprintln(bw, "</svg>")
	return errors.Wrap(bw.Flush(), "couldn't write svg")
}

func writePolyline(w io.Writer, f frame, name, class, color string, pts []offset.Point, width float64) {
	if len(pts) == 0 {
		return
	}
	var sb strings.Builder
	for p := range f.all(pts) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.3f,%.3f", p.X, p.Y)
	}
	fmt.Fprintf(w, `<polyline class="%s" id="%s-%s" points="%s" fill="none" stroke="%s" stroke-width="%g"/>`+"\n",
		class, escape(name), class, sb.String(), color, width)
}

func writeSite(w io.Writer, f frame, s scene.Site) {
	name := escape(s.Name)
	switch site := s.Site.(type) {
	case offset.Point:
		p := f.pt(site)
		fmt.Fprintf(w, `<circle class="site" id="%s" cx="%.3f" cy="%.3f" r="%d"/>`+"\n", name, p.X, p.Y, pointRadius)
	case offset.Circle:
		p := f.pt(site.Center)
		if site.IsPoint() {
			fmt.Fprintf(w, `<circle class="site" id="%s" cx="%.3f" cy="%.3f" r="%d"/>`+"\n", name, p.X, p.Y, pointRadius)
			return
		}
		fmt.Fprintf(w, `<circle class="site" id="%s" cx="%.3f" cy="%.3f" r="%.3f" fill="none" stroke="black"/>`+"\n",
			name, p.X, p.Y, site.Radius*f.scale)
	case offset.Line:
		var p0, p1 offset.Point
		if len(s.Ends) == 2 {
			p0, p1 = s.Ends[0], s.Ends[1]
		} else {
			p0, p1 = f.clip(site)
		}
		p0, p1 = f.pt(p0), f.pt(p1)
		fmt.Fprintf(w, `<line class="site" id="%s" x1="%.3f" y1="%.3f" x2="%.3f" y2="%.3f" stroke="black"/>`+"\n",
			name, p0.X, p0.Y, p1.X, p1.Y)
	}
}

var escaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
