package viewer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kpango/glg"
)

const (
	zoomStep  = 0.9
	levelStep = 0.01
)

// input tracks pointer state between ticks.
type input struct {
	touch    ebiten.TouchID
	touching bool
	panning  bool
	lastX    int
	lastY    int
}

func (in *input) update(v *Viewer) {
	in.keys(v)

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		x, y := ebiten.CursorPosition()
		v.camera.ZoomAt(math.Pow(zoomStep, wheelY), float64(x), float64(y))
	}

	if in.touchInput(v) {
		return
	}

	in.mouse(v)
}

func (in *input) keys(v *Viewer) {
	e := v.editor

	delta := 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		delta = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		delta = -1
	}

	if delta != 0 {
		if err := e.StepCount(delta); err != nil {
			glg.Warnf("cant change point count: %v", err)
		}
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyBracketLeft):
		e.SetLevelT(e.LevelT() - levelStep)
	case ebiten.IsKeyPressed(ebiten.KeyBracketRight):
		e.SetLevelT(e.LevelT() + levelStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.ShowGrid = !v.ShowGrid
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.ShowPolygon = !v.ShowPolygon
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.ShowLevel = !v.ShowLevel
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		e.Frame(v.camera)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.plotNow()
	}
}

// touchInput handles the first touch. It reports whether a touch is active.
func (in *input) touchInput(v *Viewer) bool {
	if !in.touching {
		ids := inpututil.AppendJustPressedTouchIDs(nil)
		if len(ids) == 0 {
			return false
		}

		in.touch, in.touching = ids[0], true
		x, y := ebiten.TouchPosition(in.touch)
		v.editor.Grab(v.camera.ScreenToWorld(float64(x), float64(y)))

		return true
	}

	if inpututil.IsTouchJustReleased(in.touch) {
		in.touching = false
		v.editor.Release()

		return true
	}

	x, y := ebiten.TouchPosition(in.touch)
	v.editor.DragTo(v.camera.ScreenToWorld(float64(x), float64(y)))

	return true
}

func (in *input) mouse(v *Viewer) {
	x, y := ebiten.CursorPosition()
	world := v.camera.ScreenToWorld(float64(x), float64(y))

	// space turns the left button into a pan button
	spacePan := ebiten.IsKeyPressed(ebiten.KeySpace)
	wantPan := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		(spacePan && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	if !spacePan {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			v.editor.Grab(world)
		}

		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			v.editor.DragTo(world)
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.editor.Release()
	}

	switch {
	case wantPan && in.panning:
		v.camera.Pan(float64(x-in.lastX), float64(y-in.lastY))
	case wantPan:
		in.panning = true
	default:
		in.panning = false
	}

	in.lastX, in.lastY = x, y
}
