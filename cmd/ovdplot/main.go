// Command ovdplot evaluates scene files of Voronoi sites with the offset
// kernel. It plots bisectors and apexes, or prints their samples.
//
// Usage:
//
//	ovdplot plot scene.toml -o out.png [--show]
//	ovdplot sample scene.toml
//	ovdplot apex scene.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root, a := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.errorf("%v", err)
		return 1
	}
	return 0
}

type globalFlags struct {
	vv, v, q bool
}

// LevelFromFlags returns the log level selected by the verbosity flags. They
// are checked in the order vv, v, q, so --vv wins over -q.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// app is the state shared by the subcommands.
type app struct {
	stdout, stderr io.Writer
	au             aurora.Aurora
	quiet          bool
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *app) {
	var gf globalFlags
	a := &app{stdout: stdout, stderr: stderr, au: aurora.NewAurora(colorEnabled(stderr))}

	root := &cobra.Command{
		Use:           "ovdplot",
		Short:         "Evaluate bisectors and apexes of Voronoi sites",
		SilenceUsage:  true,
		// run prints errors itself so they get colour.
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LevelFromFlags(gf.vv, gf.v, gf.q)
			slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
			a.quiet = gf.q
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.BoolVarP(&gf.v, "verbose", "v", false, "log progress")
	pf.BoolVar(&gf.vv, "vv", false, "log debug output")
	pf.BoolVarP(&gf.q, "quiet", "q", false, "only log errors and suppress diagnostics")

	root.AddCommand(a.plotCmd(), a.sampleCmd(), a.apexCmd())
	return root, a
}

// colorEnabled reports whether w is a terminal that can show colours.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

func (a *app) errorf(format string, args ...any) {
	fmt.Fprintf(a.stderr, "%s %s\n", a.au.Red("error:"), fmt.Sprintf(format, args...))
}

func (a *app) diagnostic(kind, name string, err error) {
	if a.quiet {
		return
	}
	fmt.Fprintf(a.stderr, "%s %s: %v\n", a.au.Yellow(kind+":"), a.au.Bold(name), err)
}
