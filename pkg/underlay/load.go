package underlay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"

	"github.com/gucio321/polarbez/pkg/plot"
	"github.com/gucio321/polarbez/pkg/polar"
)

// ConvertedSuffix is appended to the input path to name the inkscape output.
const ConvertedSuffix = ".polarbez.svg"

var ErrConversionFailed = errors.New("inkscape conversion failed")

// Preprocess runs inkscape on path, converting every object to a plain path,
// and returns the path of the converted file.
func Preprocess(path string) (string, error) {
	proxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := proxy.Run(); err != nil {
		return "", fmt.Errorf("cant run inkscape: %w", err)
	}

	defer proxy.Close()

	glg.Infof("running inkscape pre-processing of %s", path)

	converted := path + ConvertedSuffix

	// a leftover from an earlier run must not pass for a fresh export
	if err := os.Remove(converted); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("cant remove old %s: %w", converted, err)
	}

	if _, err := proxy.RawCommands(
		fmt.Sprintf("file-open:%s", path),
		fmt.Sprintf("export-filename:%s", converted),
		"export-type:svg",
		"select-all",
		"object-to-path",
		"export-do",
	); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	glg.Info("inkscape done.")

	return checkConverted(path, converted)
}

// checkConverted makes sure inkscape actually wrote converted.
func checkConverted(path, converted string) (string, error) {
	info, err := os.Stat(converted)
	switch {
	case err != nil:
		return "", fmt.Errorf("%w: %s was not exported from %s: %w", ErrConversionFailed, converted, path, err)
	case info.IsDir() || info.Size() == 0:
		return "", fmt.Errorf("%w: %s is empty", ErrConversionFailed, converted)
	}

	return converted, nil
}

// Load reads an SVG file (optionally through inkscape) or a G-code file (.gcode, .gco, .nc)
// and fits its outline into a size x size square centered on center.
func Load(path string, useInkscape bool, center polar.Vec2, size float64) ([][]polar.Vec2, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gcode", ".gco", ".nc":
		return loadGCode(path, center, size)
	}

	if useInkscape {
		converted, err := Preprocess(path)
		if err != nil {
			return nil, err
		}

		path = converted
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cant read underlay: %w", err)
	}

	lines, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cant parse underlay %s: %w", path, err)
	}

	return Fit(lines, center, size), nil
}

func loadGCode(path string, center polar.Vec2, size float64) ([][]polar.Vec2, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cant read underlay: %w", err)
	}

	cmds, err := plot.ParseGCode(data)
	if err != nil {
		return nil, fmt.Errorf("cant parse underlay %s: %w", path, err)
	}

	strokes := plot.Strokes(cmds)
	if len(strokes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDrawing)
	}

	// machine coordinates already have y up
	return fit(strokes, center, size, 1), nil
}
