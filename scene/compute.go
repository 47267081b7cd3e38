package scene

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/ovdgo/offset"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result holds the evaluated queries of a scene. Curves and Apexes are in
// file order.
type Result struct {
	Sites  []Site
	Curves []Curve
	Apexes []Vertex
}

// Curve is a sampled bisector. If the bisector couldn't be constructed, Err
// says why and the other fields besides Name are zero.
type Curve struct {
	Name       string
	Kind       offset.BisectorKind
	TMin, TMax float64
	T          []float64
	// Plus and Minus are the two branches, evaluated at T.
	Plus, Minus []offset.Point
	Err         error
}

// Vertex is a solved apex query.
type Vertex struct {
	Name string
	T    float64
	P    offset.Point
	Err  error
}

// Compute resolves the scene's sites and evaluates its queries. Bisectors are
// sampled concurrently. Queries that fail in the kernel, for example for
// parallel lines, are recorded in the result; only malformed scenes and
// cancellation make Compute fail.
func Compute(ctx context.Context, sc *Scene) (*Result, error) {
	sites, err := sc.Build()
	if err != nil {
		return nil, err
	}
	byName := make(map[string]Site, len(sites))
	for _, s := range sites {
		byName[s.Name] = s
	}

	res := &Result{
		Sites:  sites,
		Curves: make([]Curve, len(sc.Bisectors)),
		Apexes: make([]Vertex, len(sc.Apexes)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range sc.Bisectors {
		a, err := lookup(byName, q.A)
		if err != nil {
			return nil, errors.Wrapf(err, "bisector %q", q.Name)
		}
		b, err := lookup(byName, q.B)
		if err != nil {
			return nil, errors.Wrapf(err, "bisector %q", q.Name)
		}
		tmax := q.TMax
		if tmax <= 0 {
			tmax = sc.TMax
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res.Curves[i] = sample(q.Name, a.Site, b.Site, tmax, sc.Samples)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, q := range sc.Apexes {
		v, err := solve(byName, q)
		if err != nil {
			return nil, errors.Wrapf(err, "apex %q", q.Name)
		}
		if v.Err != nil {
			slog.Warn("apex has no solution", "apex", q.Name, "err", v.Err)
		} else {
			slog.Debug("solved apex", "apex", q.Name, "t", v.T, "p", v.P)
		}
		res.Apexes[i] = v
	}
	return res, nil
}

func lookup(sites map[string]Site, name string) (Site, error) {
	s, ok := sites[name]
	if !ok {
		return Site{}, errors.Errorf("unknown site %q", name)
	}
	return s, nil
}

func sample(name string, a, b offset.Site, tmax float64, n int) Curve {
	c := Curve{Name: name}
	bis, err := offset.New(a, b)
	if err == nil && tmax > 0 {
		bis, err = bis.WithTMax(tmax)
	}
	if err != nil {
		slog.Warn("skipping bisector", "bisector", name, "err", err)
		c.Err = err
		return c
	}
	c.Kind = bis.Kind()
	c.TMin, c.TMax = bis.TMin, bis.TMax
	c.T = make([]float64, 0, n)
	c.Plus = make([]offset.Point, 0, n)
	c.Minus = make([]offset.Point, 0, n)
	for t := range bis.SampleRange(n) {
		plus, minus, err := bis.Points(t)
		if err != nil {
			slog.Warn("bisector sampled outside its domain", "bisector", name, "t", t, "err", err)
			c.Err = err
			break
		}
		c.T = append(c.T, t)
		c.Plus = append(c.Plus, plus)
		c.Minus = append(c.Minus, minus)
	}
	slog.Debug("sampled bisector", "bisector", name, "kind", c.Kind, "tmin", c.TMin, "tmax", c.TMax, "samples", len(c.T))
	return c
}

func solve(sites map[string]Site, q ApexConfig) (Vertex, error) {
	v := Vertex{Name: q.Name}
	if len(q.Points) > 0 {
		if len(q.Points) != 3 {
			return v, errors.Errorf("need three points, got %d", len(q.Points))
		}
		var ps [3]offset.Point
		for i, name := range q.Points {
			s, err := lookup(sites, name)
			if err != nil {
				return v, err
			}
			p, ok := s.Site.(offset.Point)
			if !ok {
				return v, errors.Errorf("site %q is not a point", name)
			}
			ps[i] = p
		}
		apex, err := offset.ApexPPP(ps[0], ps[1], ps[2])
		v.T, v.P, v.Err = apex.T, apex.P, err
		return v, nil
	}

	ls, err := lookup(sites, q.Line)
	if err != nil {
		return v, err
	}
	l, ok := ls.Site.(offset.Line)
	if !ok {
		return v, errors.Errorf("site %q is not a line", q.Line)
	}
	var end offset.Point
	switch {
	case q.End == "start" && ls.Ends != nil:
		end = ls.Ends[0]
	case q.End == "end" && ls.Ends != nil:
		end = ls.Ends[1]
	default:
		es, err := lookup(sites, q.End)
		if err != nil {
			return v, err
		}
		if end, ok = es.Site.(offset.Point); !ok {
			return v, errors.Errorf("site %q is not a point", q.End)
		}
	}
	third, err := lookup(sites, q.Third)
	if err != nil {
		return v, err
	}
	apex, err := offset.SolveApex(l, end, third.Site)
	v.T, v.P, v.Err = apex.T, apex.P, err
	return v, nil
}

// Bounds returns the extent of the sampled curves, apexes and bounded sites.
// Lines are unbounded and don't contribute. An empty result has the bounds
// of the unit square around the origin.
func (r *Result) Bounds() offset.Rect {
	bb := offset.EmptyRect
	for _, s := range r.Sites {
		switch site := s.Site.(type) {
		case offset.Point:
			bb = bb.UnionPoint(site)
		case offset.Circle:
			bb = bb.Union(site.BoundingBox())
		}
		for _, p := range s.Ends {
			bb = bb.UnionPoint(p)
		}
	}
	for _, c := range r.Curves {
		for _, p := range c.Plus {
			bb = bb.UnionPoint(p)
		}
		for _, p := range c.Minus {
			bb = bb.UnionPoint(p)
		}
	}
	for _, v := range r.Apexes {
		if v.Err == nil {
			bb = bb.UnionPoint(v.P)
		}
	}
	if bb.IsEmpty() {
		return offset.Rect{X0: -1, Y0: -1, X1: 1, Y1: 1}
	}
	return bb
}
