package underlay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/polarbez/pkg/polar"
)

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="100">
<g><path d="M 10 10 L 90 10 L 90 90 L 10 90 Z"/></g>
</svg>`

func TestParseLines(t *testing.T) {
	lines, err := Parse([]byte(squareSVG))
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	line := lines[0]
	require.GreaterOrEqual(t, len(line), 5)
	assert.Equal(t, line[0], line[len(line)-1], "closed path ends at its start")
	assert.InDelta(t, 10, line[0].X, 1e-9)
	assert.InDelta(t, 10, line[0].Y, 1e-9)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse([]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"></svg>`))
	assert.ErrorIs(t, err, ErrNoDrawing)

	_, err = Parse([]byte(`not xml`))
	assert.Error(t, err)
}

func TestCircle(t *testing.T) {
	c := circle(polar.Vec(1, 1), 2)
	require.Len(t, c, CircleSegments+1)
	assert.Equal(t, c[0], c[len(c)-1])

	for _, p := range c {
		assert.InDelta(t, 2, p.Distance(polar.Vec(1, 1)), 1e-9)
	}
}

func TestFit(t *testing.T) {
	lines := [][]polar.Vec2{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 10, Y: 0}, {X: 10, Y: 5}},
	}

	got := Fit(lines, polar.Vec(1, 2), 4)
	require.Len(t, got, 2)

	// width 10 becomes 4, y is flipped
	assert.InDelta(t, -1, got[0][0].X, 1e-9)
	assert.InDelta(t, 3, got[0][1].X, 1e-9)
	assert.InDelta(t, 3, got[0][0].Y, 1e-9)
	assert.InDelta(t, 1, got[1][1].Y, 1e-9)

	assert.Nil(t, Fit(nil, polar.Vec(0, 0), 1))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.svg")
	require.NoError(t, os.WriteFile(path, []byte(squareSVG), 0o644))

	lines, err := Load(path, false, polar.Vec(0, 0), 2)
	require.NoError(t, err)

	for _, line := range lines {
		for _, p := range line {
			assert.LessOrEqual(t, p.X, 1+1e-9)
			assert.GreaterOrEqual(t, p.X, -1-1e-9)
		}
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.svg"), false, polar.Vec(0, 0), 2)
	assert.Error(t, err)
}

func TestLoadGCode(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "plot.gcode")
	gcode := "G90\nG0 X0 Y0\nG0 Z-2\nG1 X10 Y0\nG1 X10 Y5\nG0 Z0\n"
	require.NoError(t, os.WriteFile(path, []byte(gcode), 0o644))

	lines, err := Load(path, false, polar.Vec(0, 0), 2)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.Len(t, lines[0], 3)

	// y keeps its direction: the last point is above the first
	assert.Greater(t, lines[0][2].Y, lines[0][0].Y)
	assert.InDelta(t, -1, lines[0][0].X, 1e-9)
	assert.InDelta(t, 1, lines[0][1].X, 1e-9)

	empty := filepath.Join(dir, "empty.nc")
	require.NoError(t, os.WriteFile(empty, []byte("G90\nG0 X1 Y1\n"), 0o644))

	_, err = Load(empty, false, polar.Vec(0, 0), 2)
	assert.ErrorIs(t, err, ErrNoDrawing)
}

func TestCheckConverted(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.svg")
	converted := src + ConvertedSuffix

	_, err := checkConverted(src, converted)
	assert.ErrorIs(t, err, ErrConversionFailed)

	require.NoError(t, os.WriteFile(converted, nil, 0o644))
	_, err = checkConverted(src, converted)
	assert.ErrorIs(t, err, ErrConversionFailed)

	require.NoError(t, os.WriteFile(converted, []byte(squareSVG), 0o644))
	got, err := checkConverted(src, converted)
	require.NoError(t, err)
	assert.Equal(t, converted, got)
}
