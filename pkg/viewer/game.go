// Package viewer hosts an editor.Editor in an ebiten window.
package viewer

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/kpango/glg"
	"golang.org/x/image/colornames"

	"github.com/gucio321/polarbez/pkg/editor"
	"github.com/gucio321/polarbez/pkg/plot"
	"github.com/gucio321/polarbez/pkg/polar"
)

// ErrNoPlotTarget is returned by Plot when no output file was set.
var ErrNoPlotTarget = errors.New("no G-code output file set")

var _ ebiten.Game = &Viewer{}

const (
	curveWidth    = 2
	levelWidth    = 1.5
	polygonWidth  = 1
	gridWidth     = 1
	markerRadius  = 6
	levelRadius   = 4
	originRadius  = 5
	underlayWidth = 1
)

var (
	backgroundColor = colornames.Black
	curveColor      = colornames.Deepskyblue
	levelCurveColor = colornames.Orange
	firstColor      = colornames.Green
	lastColor       = colornames.Red
	middleColor     = colornames.Yellow
	grabbedColor    = colornames.White
	originColor     = colornames.White
	gridColor       = withAlpha(colornames.White, 20)
	polygonColor    = withAlpha(colornames.White, 90)
	underlayColor   = withAlpha(colornames.Lightgray, 60)
)

// Viewer draws the curve, its control polygon, markers, the polar grid and the
// de Casteljau level curve, and feeds mouse/touch/keyboard input into the editor.
type Viewer struct {
	editor   *editor.Editor
	camera   *editor.Camera
	underlay [][]polar.Vec2
	input    input
	plot     plotTarget
	paused   bool
	status   string

	ShowGrid, ShowPolygon, ShowLevel bool
}

type plotTarget struct {
	path      string
	workspace plot.Workspace
	comments  bool
}

// NewViewer creates a viewer for e with a w x h window.
func NewViewer(e *editor.Editor, w, h int) *Viewer {
	return &Viewer{
		editor:      e,
		camera:      editor.NewCamera(w, h),
		ShowGrid:    true,
		ShowPolygon: true,
		ShowLevel:   true,
	}
}

// SetUnderlay sets polylines drawn faintly behind everything (world coordinates).
func (v *Viewer) SetUnderlay(lines [][]polar.Vec2) {
	v.underlay = lines
}

// SetPlotTarget makes Plot (key S) write G-code of the live curve to path.
func (v *Viewer) SetPlotTarget(path string, ws plot.Workspace, comments bool) {
	v.plot = plotTarget{path: path, workspace: ws, comments: comments}
}

// Plot writes the current curve as G-code to the plot target.
func (v *Viewer) Plot() error {
	if v.plot.path == "" {
		return ErrNoPlotTarget
	}

	gcode, err := v.editor.GCode(v.camera, v.plot.workspace, v.plot.comments)
	if err != nil {
		return err
	}

	if err := os.WriteFile(v.plot.path, []byte(gcode), 0o644); err != nil {
		return fmt.Errorf("cant write %s: %w", v.plot.path, err)
	}

	return nil
}

// Paused reports whether the pause overlay is shown.
func (v *Viewer) Paused() bool {
	return v.paused
}

// SetPaused shows or hides the pause overlay. Pausing drops the grabbed point.
func (v *Viewer) SetPaused(paused bool) {
	if paused {
		v.editor.Release()
		v.input = input{}
	}

	v.paused = paused
}

// Camera returns the viewer's camera.
func (v *Viewer) Camera() *editor.Camera {
	return v.camera
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.SetPaused(!v.paused)
	}

	if v.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}

		return nil
	}

	v.input.update(v)

	return nil
}

func (v *Viewer) plotNow() {
	if err := v.Plot(); err != nil {
		glg.Warnf("cant plot curve: %v", err)
		v.status = err.Error()

		return
	}

	glg.Infof("G-code written to %s", v.plot.path)
	v.status = "G-code written to " + v.plot.path
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	origin := v.editor.Origin()

	for _, line := range v.underlay {
		v.strokePolyline(screen, line, underlayWidth, underlayColor)
	}

	if v.ShowGrid {
		g := v.editor.Grid
		for _, strip := range g.CircleStrips(origin) {
			v.strokePolyline(screen, strip, gridWidth, gridColor)
		}

		for _, spoke := range g.Spokes(origin) {
			v.strokePolyline(screen, spoke[:], gridWidth, gridColor)
		}
	}

	cps := v.editor.ControlPolygon()
	if v.ShowPolygon {
		v.strokePolyline(screen, cps, polygonWidth, polygonColor)
	}

	if v.ShowLevel {
		v.strokePolyline(screen, v.editor.LevelCurve(), levelWidth, levelCurveColor)
		lvl := v.editor.LevelPoints()
		for i, p := range lvl {
			v.fillCircle(screen, p, levelRadius, levelColor(i, len(lvl)))
		}
	}

	curve := v.editor.Curve(v.camera)
	v.strokePolyline(screen, curve, curveWidth, curveColor)

	ox, oy := v.camera.WorldToScreen(origin)
	vector.StrokeCircle(screen, float32(ox), float32(oy), originRadius, 1, originColor, true)

	grabbed, isGrabbed := v.editor.Grabbed()
	for i, p := range cps {
		c := markerColor(i, len(cps))
		if isGrabbed && i == grabbed {
			c = grabbedColor
		}

		v.fillCircle(screen, p, markerRadius, c)
	}

	if v.paused {
		ebitenutil.DebugPrint(screen, "PAUSED\nEsc resume  Q quit")
		return
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"points: %d  segments: %d  t: %.2f\n"+
			"+/- points  [/] t  G grid  P polygon  L level  F frame  S plot  Esc pause\n"+
			"wheel zoom  right/middle/space+left drag pan\n%s",
		len(cps), max(0, len(curve)-1), v.editor.LevelT(), v.status))
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	v.camera.ScreenWidth, v.camera.ScreenHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (v *Viewer) strokePolyline(dst *ebiten.Image, pts []polar.Vec2, width float32, c color.Color) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := v.camera.WorldToScreen(pts[i-1])
		x1, y1 := v.camera.WorldToScreen(pts[i])
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), width, c, true)
	}
}

func (v *Viewer) fillCircle(dst *ebiten.Image, p polar.Vec2, r float32, c color.Color) {
	x, y := v.camera.WorldToScreen(p)
	vector.DrawFilledCircle(dst, float32(x), float32(y), r, c, true)
}

func markerColor(i, n int) color.RGBA {
	switch i {
	case 0:
		return firstColor
	case n - 1:
		return lastColor
	default:
		return middleColor
	}
}
