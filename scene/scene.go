// Package scene loads descriptions of sites and bisector and apex queries
// from TOML or YAML files and evaluates them with the offset kernel.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/ovdgo/offset"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultSamples is the number of offset distances sampled per bisector when
// a scene doesn't say otherwise.
const DefaultSamples = 200

// Format is the encoding of a scene file.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format implied by a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, errors.Errorf("unknown scene format %q", filepath.Ext(path))
	}
}

// Scene is the decoded form of a scene file.
type Scene struct {
	// Samples is the number of offset distances sampled per bisector.
	Samples int `toml:"samples" yaml:"samples"`
	// TMax, if positive, caps every bisector's parameter interval.
	TMax float64 `toml:"tmax" yaml:"tmax"`

	Sites     []SiteConfig     `toml:"site" yaml:"sites"`
	Bisectors []BisectorConfig `toml:"bisector" yaml:"bisectors"`
	Apexes    []ApexConfig     `toml:"apex" yaml:"apexes"`
}

// SiteConfig describes one site. The meaning of At depends on Kind:
//
//	point    x, y
//	line     a, b, c (a² + b² = 1)
//	circle   cx, cy, r
//	segment  x0, y0, x1, y1
//
// K selects the growth side of lines and segments. CW is a circle's
// orientation and decides how its offsets move: +1 grows the circle with t
// and -1 shrinks it. A circle's K is carried for diagram construction but
// doesn't change its offsets. Both default to +1.
type SiteConfig struct {
	Name string    `toml:"name" yaml:"name"`
	Kind string    `toml:"kind" yaml:"kind"`
	At   []float64 `toml:"at" yaml:"at"`
	K    int       `toml:"k" yaml:"k"`
	CW   int       `toml:"cw" yaml:"cw"`
}

// BisectorConfig asks for the bisector of sites A and B.
type BisectorConfig struct {
	Name string  `toml:"name" yaml:"name"`
	A    string  `toml:"a" yaml:"a"`
	B    string  `toml:"b" yaml:"b"`
	TMax float64 `toml:"tmax" yaml:"tmax"`
}

// ApexConfig asks for a Voronoi vertex candidate. Either Line, End and Third
// are set, naming a segment site, which of its endpoints to use ("start" or
// "end") and a line, segment or point site; or Points names three point
// sites.
type ApexConfig struct {
	Name   string   `toml:"name" yaml:"name"`
	Line   string   `toml:"line" yaml:"line"`
	End    string   `toml:"end" yaml:"end"`
	Third  string   `toml:"third" yaml:"third"`
	Points []string `toml:"points" yaml:"points"`
}

// Load reads the scene file at path, choosing the decoder by its extension.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't load scene")
	}
	defer f.Close()
	sc, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't load %s", path)
	}
	return sc, nil
}

// Decode decodes a scene. Unknown fields are errors. Unnamed sites are given
// random readable names and unnamed queries are named after their sites.
func Decode(r io.Reader, format Format) (*Scene, error) {
	sc := new(Scene)
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(sc); err != nil {
			return nil, errors.Wrap(err, "invalid toml")
		}
	case YAML:
		// yaml.v3 fails on empty documents with io.EOF.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(sc); err != nil {
				return nil, errors.Wrap(err, "invalid yaml")
			}
		}
	default:
		return nil, errors.Errorf("unknown scene format %v", format)
	}
	if err := sc.normalize(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *Scene) normalize() error {
	if sc.Samples == 0 {
		sc.Samples = DefaultSamples
	}
	if sc.Samples < 0 {
		return errors.Errorf("samples must be positive, got %d", sc.Samples)
	}
	if err := checkTMax(sc.TMax); err != nil {
		return err
	}
	for _, b := range sc.Bisectors {
		if err := checkTMax(b.TMax); err != nil {
			return errors.Wrapf(err, "bisector %s|%s", b.A, b.B)
		}
	}

	seen := make(map[string]bool, len(sc.Sites))
	for _, s := range sc.Sites {
		if s.Name != "" {
			if seen[s.Name] {
				return errors.Errorf("duplicate site name %q", s.Name)
			}
			seen[s.Name] = true
		}
	}
	for i := range sc.Sites {
		if sc.Sites[i].Name != "" {
			continue
		}
		name := petname.Generate(2, "-")
		for seen[name] {
			name = petname.Generate(3, "-")
		}
		seen[name] = true
		sc.Sites[i].Name = name
	}

	for i, b := range sc.Bisectors {
		if b.Name == "" {
			sc.Bisectors[i].Name = b.A + "|" + b.B
		}
	}
	for i, a := range sc.Apexes {
		if a.Name != "" {
			continue
		}
		if len(a.Points) > 0 {
			sc.Apexes[i].Name = strings.Join(a.Points, "|")
		} else {
			sc.Apexes[i].Name = a.Line + "@" + a.End + "|" + a.Third
		}
	}
	return nil
}

// checkTMax accepts zero, meaning unset, and positive finite values.
func checkTMax(tmax float64) error {
	if tmax < 0 || math.IsNaN(tmax) || math.IsInf(tmax, 0) {
		return errors.Errorf("tmax must be finite and not negative, got %g", tmax)
	}
	return nil
}

// Site is a resolved site. Ends holds a segment's endpoints and is nil for
// the other kinds.
type Site struct {
	Name string
	Site offset.Site
	Ends []offset.Point
}

// Build resolves the scene's sites into kernel sites, in file order.
func (sc *Scene) Build() ([]Site, error) {
	out := make([]Site, 0, len(sc.Sites))
	for _, cfg := range sc.Sites {
		s, err := cfg.build()
		if err != nil {
			return nil, errors.Wrapf(err, "site %q", cfg.Name)
		}
		out = append(out, s)
	}
	return out, nil
}

func (cfg SiteConfig) build() (Site, error) {
	k := offset.Right
	switch cfg.K {
	case 0, 1:
	case -1:
		k = offset.Left
	default:
		return Site{}, errors.Errorf("k must be -1 or +1, got %d", cfg.K)
	}
	cw := offset.CW
	switch cfg.CW {
	case 0, 1:
	case -1:
		cw = offset.CCW
	default:
		return Site{}, errors.Errorf("cw must be -1 or +1, got %d", cfg.CW)
	}

	want := map[string]int{"point": 2, "line": 3, "circle": 3, "segment": 4}[cfg.Kind]
	if want == 0 {
		return Site{}, errors.Errorf("unknown kind %q", cfg.Kind)
	}
	if len(cfg.At) != want {
		return Site{}, errors.Errorf("%s needs %d coordinates, got %d", cfg.Kind, want, len(cfg.At))
	}

	at := cfg.At
	s := Site{Name: cfg.Name}
	var err error
	switch cfg.Kind {
	case "point":
		p := offset.Pt(at[0], at[1])
		if p.IsNaN() || p.IsInf() {
			return Site{}, errors.Errorf("non-finite point %v", p)
		}
		s.Site = p
	case "line":
		s.Site, err = offset.NewLine(at[0], at[1], at[2], k)
	case "circle":
		s.Site, err = offset.NewCircle(offset.Pt(at[0], at[1]), at[2], cw, k)
	case "segment":
		seg := offset.Segment{P0: offset.Pt(at[0], at[1]), P1: offset.Pt(at[2], at[3])}
		s.Site, err = seg.Line(k)
		s.Ends = []offset.Point{seg.Start(), seg.End()}
	}
	if err != nil {
		return Site{}, err
	}
	return s, nil
}
