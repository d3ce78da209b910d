package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/polarbez/pkg/editor"
	"github.com/gucio321/polarbez/pkg/plot"
	"github.com/gucio321/polarbez/pkg/preset"
	"github.com/gucio321/polarbez/pkg/underlay"
	"github.com/gucio321/polarbez/pkg/viewer"
)

const (
	windowWidth  = 800
	windowHeight = 600
	underlaySize = 4
)

type Flags struct {
	preset         string
	configFile     string
	makePreset     string
	points         int
	View           bool
	OutputFilePath string
	showGCode      bool
	NoLineComments bool
	dump           bool
	underlayPath   string
	inkscape       bool
	debug          bool
}

func main() {
	var f Flags
	flag.StringVar(&f.preset, "preset", preset.Default, fmt.Sprintf("built-in preset name (one of %v)", preset.Names()))
	flag.StringVar(&f.configFile, "config", "", "JSON/TOML/YAML config file path. This will override -preset")
	flag.StringVar(&f.makePreset, "make-preset", "", "print the selected preset in the given format (json, toml or yaml) and exit")
	flag.IntVar(&f.points, "points", 0, "set control point count before anything else (0 to keep the starting curve)")
	flag.BoolVar(&f.View, "v", false, "view and edit the curve")
	flag.StringVar(&f.OutputFilePath, "o", "", "output G-code file path (with -v: written when S is pressed)")
	flag.BoolVar(&f.showGCode, "show-gcode", false, "print resulting G-code even if -o is set")
	flag.BoolVar(&f.NoLineComments, "nlc", false, "no line comments")
	flag.BoolVar(&f.dump, "dump", false, "print tessellated curve samples")
	flag.StringVar(&f.underlayPath, "underlay", "", "SVG or G-code file shown behind the curve (use with -v)")
	flag.BoolVar(&f.inkscape, "inkscape", false, "pre-process an SVG underlay with inkscape")
	flag.BoolVar(&f.debug, "debug", false, "debug logging")
	flag.Parse()

	if !f.debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	p, err := loadPreset(f)
	if err != nil {
		glg.Fatalf("Unable to load preset: %v", err)
	}

	if f.makePreset != "" {
		out, err := preset.Encode(p, f.makePreset)
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Preset generated")

		return
	}

	e := editor.New(p.Tessellation, p.Manager())
	if f.points != 0 {
		if err := e.SetCount(f.points); err != nil {
			glg.Fatalf("Cannot set point count: %v", err)
		}
	}

	cam := editor.NewCamera(windowWidth, windowHeight)

	if f.dump {
		for _, s := range e.Curve(cam) {
			fmt.Printf("%.6f %.6f\n", s.X, s.Y)
		}
	}

	ws, err := plot.GetWorkspace(p.Workspace)
	if err != nil {
		glg.Fatalf("Cannot use preset workspace: %v", err)
	}

	if !f.View {
		if !f.dump && f.OutputFilePath == "" && !f.showGCode {
			flag.Usage()
			os.Exit(1)
		}

		writeGCode(f, e, cam, ws)

		return
	}

	v := viewer.NewViewer(e, windowWidth, windowHeight)

	// in the viewer, G-code of the edited curve is written on demand (S)
	if f.OutputFilePath != "" {
		v.SetPlotTarget(f.OutputFilePath, ws, !f.NoLineComments)
	}

	if f.underlayPath != "" {
		lines, err := underlay.Load(f.underlayPath, f.inkscape, e.Origin(), underlaySize)
		if err != nil {
			glg.Fatalf("Cannot load underlay: %v", err)
		}

		v.SetUnderlay(lines)
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("polarbez")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		glg.Fatalf("Cannot run viewer: %v", err)
	}
}

func loadPreset(f Flags) (*preset.Preset, error) {
	if f.configFile != "" {
		return preset.Load(f.configFile)
	}

	return preset.Get(f.preset)
}

func writeGCode(f Flags, e *editor.Editor, cam *editor.Camera, ws plot.Workspace) {
	if f.OutputFilePath == "" && !f.showGCode {
		return
	}

	gcode, err := e.GCode(cam, ws, !f.NoLineComments)
	if err != nil {
		glg.Fatalf("Cannot generate GCode: %v", err)
	}

	if f.OutputFilePath == "" || f.showGCode {
		fmt.Println(gcode)
	}

	if f.OutputFilePath != "" {
		if err := os.WriteFile(f.OutputFilePath, []byte(gcode), 0o644); err != nil {
			glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
		}
	}
}
