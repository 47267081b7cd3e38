package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
samples = 3

[[site]]
name = "p1"
kind = "point"
at = [0.0, 0.0]

[[site]]
name = "p2"
kind = "point"
at = [6.0, 0.0]

[[site]]
name = "p3"
kind = "point"
at = [0.0, 8.0]

[[site]]
name = "top"
kind = "line"
at = [0.0, 1.0, -10.0]

[[site]]
name = "bottom"
kind = "line"
at = [0.0, 1.0, 0.0]

[[bisector]]
a = "p1"
b = "p2"
tmax = 10.0

[[bisector]]
name = "rails"
a = "top"
b = "bottom"

[[apex]]
name = "vertex"
points = ["p1", "p2", "p3"]
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o666))
	return path
}

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestLevelFromFlags(t *testing.T) {
	for _, tc := range []struct {
		vv, v, q bool
		want     slog.Level
	}{
		{false, false, false, slog.LevelWarn},
		{true, false, false, slog.LevelDebug},
		{false, true, false, slog.LevelInfo},
		{false, false, true, slog.LevelError},
		{true, false, true, slog.LevelDebug},
		{false, true, true, slog.LevelInfo},
	} {
		assert.Equal(t, tc.want, LevelFromFlags(tc.vv, tc.v, tc.q))
	}
}

func TestSample(t *testing.T) {
	code, stdout, stderr := execute(t, "sample", writeScene(t))
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 6)
	var ts []float64
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 5)
		assert.Equal(t, "p1|p2", fields[0])
		if i < 3 {
			assert.Equal(t, "plus", fields[1])
		} else {
			assert.Equal(t, "minus", fields[1])
		}
		var v [3]float64
		for j := range v {
			f, err := strconv.ParseFloat(fields[2+j], 64)
			require.NoError(t, err)
			v[j] = f
		}
		tt, x, y := v[0], v[1], v[2]
		assert.InDelta(t, 3, x, 1e-12)
		assert.InDelta(t, tt*tt, x*x+y*y, 1e-9)
		if i < 3 {
			ts = append(ts, tt)
		}
	}
	assert.Equal(t, []float64{3, 6.5, 10}, ts)

	assert.Contains(t, stderr, "bisector:")
	assert.Contains(t, stderr, "rails")
	assert.Contains(t, stderr, "degenerate input")
}

func TestQuiet(t *testing.T) {
	code, _, stderr := execute(t, "sample", "-q", writeScene(t))
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)
}

func TestApex(t *testing.T) {
	code, stdout, stderr := execute(t, "apex", writeScene(t))
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "vertex\t5\t3\t4\n", stdout)
}

func TestPlot(t *testing.T) {
	scene := writeScene(t)
	dir := t.TempDir()

	png := filepath.Join(dir, "out.png")
	code, _, stderr := execute(t, "plot", scene, "-o", png, "--width", "120", "--height", "90")
	require.Equal(t, 0, code, stderr)
	assert.FileExists(t, png)

	svg := filepath.Join(dir, "out.svg")
	code, _, stderr = execute(t, "plot", scene, "-o", svg)
	require.Equal(t, 0, code, stderr)
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("<svg")))

	code, _, stderr = execute(t, "plot", scene, "-o", svg, "--show")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--show needs PNG output")

	code, _, stderr = execute(t, "plot", scene, "-o", filepath.Join(dir, "out.gif"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unsupported output format ".gif"`)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPlotShow(t *testing.T) {
	scene := writeScene(t)
	png := filepath.Join(t.TempDir(), "out.png")

	code, stdout, stderr := execute(t, "plot", scene, "-o", png, "--width", "32", "--height", "32", "--show")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "\033]1337;File=;inline=1:") || strings.HasPrefix(stdout, "\033Ptmux"))

	var errOut bytes.Buffer
	code = run([]string{"plot", scene, "-o", png, "--show"}, brokenWriter{}, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "couldn't show plot")
}

func TestErrors(t *testing.T) {
	code, _, stderr := execute(t, "sample", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error:")

	code, _, _ = execute(t, "sample")
	assert.Equal(t, 1, code)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[site]]\nkind = \"blob\"\nat = [0.0]\n"), 0o666))
	code, _, stderr = execute(t, "apex", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown kind "blob"`)
}
