package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/ovdgo/offset/plot"
	"github.com/ovdgo/offset/scene"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// load reads and evaluates a scene, printing diagnostics for queries the
// kernel rejected.
func (a *app) load(ctx context.Context, path string) (*scene.Result, error) {
	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("loaded scene", "path", path, "sites", len(sc.Sites), "bisectors", len(sc.Bisectors), "apexes", len(sc.Apexes))
	res, err := scene.Compute(ctx, sc)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't evaluate %s", path)
	}
	for _, c := range res.Curves {
		if c.Err != nil {
			a.diagnostic("bisector", c.Name, c.Err)
		}
	}
	for _, v := range res.Apexes {
		if v.Err != nil {
			a.diagnostic("apex", v.Name, v.Err)
		}
	}
	return res, nil
}

func (a *app) plotCmd() *cobra.Command {
	var (
		out  string
		opts plot.Options
		show bool
	)
	cmd := &cobra.Command{
		Use:   "plot SCENE",
		Short: "Draw a scene's sites, bisectors and apexes to a PNG or SVG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])) + ".png"
			}
			switch strings.ToLower(filepath.Ext(out)) {
			case ".png":
				if err := plot.SavePNG(out, res, opts); err != nil {
					return err
				}
			case ".svg":
				if show {
					return errors.New("--show needs PNG output")
				}
				f, err := os.Create(out)
				if err != nil {
					return errors.WithStack(err)
				}
				if err := plot.WriteSVG(f, res, opts); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return errors.WithStack(err)
				}
			default:
				return errors.Errorf("unsupported output format %q", filepath.Ext(out))
			}
			slog.Info("wrote plot", "path", out)
			if show {
				if err := imgcat.CatFile(out, a.stdout); err != nil {
					return errors.Wrap(err, "couldn't show plot")
				}
			}
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&out, "output", "o", "", "output file, .png or .svg (default SCENE.png)")
	fl.IntVar(&opts.Width, "width", 800, "image width in pixels")
	fl.IntVar(&opts.Height, "height", 800, "image height in pixels")
	fl.Float64Var(&opts.Padding, "padding", 20, "margin in pixels")
	fl.Float64Var(&opts.LineWidth, "line-width", 2, "curve stroke width in pixels")
	fl.BoolVar(&show, "show", false, "display the PNG in the terminal (iTerm2)")
	return cmd
}

func (a *app) sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample SCENE",
		Short: "Print the sampled points of a scene's bisectors",
		Long: `Print one tab-separated line per sample and branch:

	bisector  branch  t  x  y`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := bufio.NewWriter(a.stdout)
			for _, c := range res.Curves {
				for i, t := range c.T {
					fmt.Fprintf(w, "%s\tplus\t%g\t%g\t%g\n", c.Name, t, c.Plus[i].X, c.Plus[i].Y)
				}
				for i, t := range c.T {
					fmt.Fprintf(w, "%s\tminus\t%g\t%g\t%g\n", c.Name, t, c.Minus[i].X, c.Minus[i].Y)
				}
			}
			return errors.WithStack(w.Flush())
		},
	}
}

func (a *app) apexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apex SCENE",
		Short: "Print the solved apexes of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, v := range res.Apexes {
				if v.Err != nil {
					continue
				}
				fmt.Fprintf(a.stdout, "%s\t%g\t%g\t%g\n", v.Name, v.T, v.P.X, v.P.Y)
			}
			return nil
		},
	}
}
