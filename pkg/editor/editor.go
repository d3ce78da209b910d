// Package editor keeps the state of an interactive polar Bézier editing session.
package editor

import (
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/polarbez/pkg/bezier"
	"github.com/gucio321/polarbez/pkg/plot"
	"github.com/gucio321/polarbez/pkg/points"
	"github.com/gucio321/polarbez/pkg/polar"
	"github.com/gucio321/polarbez/pkg/tessellate"
)

// DefaultLevelSegments is the segment count of the de Casteljau level curve.
const DefaultLevelSegments = 96

// Editor owns a control polygon and everything that edits it.
// It is driven by a single update loop and is not safe for concurrent use.
type Editor struct {
	// Anchor is the movable origin; Offset is added on top of it.
	Anchor, Offset polar.Vec2
	Tessellation   tessellate.Config
	Grid           polar.Grid
	LevelSegments  int

	list    *polar.List
	manager *points.Manager
	dragger *Dragger
	levelT  float64
}

// New creates an editor over a cubic arch, the default starting curve.
func New(cfg tessellate.Config, manager *points.Manager) *Editor {
	return NewWithPoints(cfg, manager,
		polar.Pt(2, 180),
		polar.Pt(2, 135),
		polar.Pt(2, 45),
		polar.Pt(2, 0),
	)
}

// NewWithPoints creates an editor over the given points.
// A nil manager is replaced by points.NewManager().
func NewWithPoints(cfg tessellate.Config, manager *points.Manager, pts ...polar.Point) *Editor {
	if manager == nil {
		manager = points.NewManager()
	}

	e := &Editor{
		Tessellation:  cfg,
		Grid:          polar.DefaultGrid(),
		LevelSegments: DefaultLevelSegments,
		list:          polar.NewList(pts...),
		manager:       manager,
		dragger:       NewDragger(),
		levelT:        0.5,
	}

	if e.manager.EnsureMinimum(e.list) {
		glg.Warnf("editor started with %d points, using defaults", len(pts))
	}

	return e
}

// Origin is Anchor+Offset.
func (e *Editor) Origin() polar.Vec2 {
	return e.Anchor.Add(e.Offset)
}

// Points returns the control point list. Edits must happen on the update loop.
func (e *Editor) Points() *polar.List {
	return e.list
}

// Manager returns the point count manager.
func (e *Editor) Manager() *points.Manager {
	return e.manager
}

// Dragger returns the point dragger.
func (e *Editor) Dragger() *Dragger {
	return e.dragger
}

// SetCount changes the number of control points.
func (e *Editor) SetCount(n int) error {
	if err := e.manager.SetCount(e.list, n, e.Origin()); err != nil {
		return fmt.Errorf("cant set point count: %w", err)
	}

	return nil
}

// StepCount changes the number of control points by delta. The target is clamped
// to the manager's bounds, so stepping always moves towards them.
func (e *Editor) StepCount(delta int) error {
	return e.SetCount(max(e.list.Len()+delta, polar.MinPoints))
}

// Grab, DragTo and Release forward pointer input to the dragger.
func (e *Editor) Grab(world polar.Vec2) bool {
	return e.dragger.Grab(e.list, e.Origin(), world)
}

func (e *Editor) DragTo(world polar.Vec2) {
	e.dragger.DragTo(e.list, e.Origin(), world)
}

func (e *Editor) Release() {
	e.dragger.Release()
}

// Grabbed returns the index of the point currently grabbed.
func (e *Editor) Grabbed() (int, bool) {
	return e.dragger.Grabbed(e.list)
}

// ControlPolygon returns the cartesian control points.
func (e *Editor) ControlPolygon() []polar.Vec2 {
	return e.list.Cartesian(e.Origin())
}

// Curve tessellates the curve for the given camera.
func (e *Editor) Curve(cam *Camera) []polar.Vec2 {
	return tessellate.Collect(e.list.Points(), e.Origin(), cam.WorldUnitsPerPixel(), e.Tessellation)
}

// Frame fits cam to the curve, sampled FrameSampleCount times.
func (e *Editor) Frame(cam *Camera) {
	if e.list.Len() < polar.MinPoints {
		return
	}

	samples := make([]polar.Vec2, 0, FrameSampleCount+1)
	for p := range tessellate.Uniform(e.ControlPolygon(), FrameSampleCount) {
		samples = append(samples, p)
	}

	cam.Frame(samples, DefaultFramePadding)
}

// GCode plots the curve, tessellated for cam, fitted into ws.
func (e *Editor) GCode(cam *Camera, ws plot.Workspace, comments bool) (string, error) {
	curve := e.Curve(cam)

	tr, err := plot.Fit(ws, plot.DefaultMargin, curve)
	if err != nil {
		return "", fmt.Errorf("cant fit curve into %s: %w", ws.Name, err)
	}

	b := plot.NewBuilder(ws).SetTransform(tr)
	b.Commentf("polar Bézier curve, %d control points, %d samples", e.list.Len(), len(curve))

	if err := b.DrawLines(curve...); err != nil {
		return "", fmt.Errorf("cant plot curve: %w", err)
	}

	return b.String(comments), nil
}

// LevelT returns the parameter of the de Casteljau level display.
func (e *Editor) LevelT() float64 {
	return e.levelT
}

// SetLevelT sets the level parameter, clamped to [0, 1].
func (e *Editor) SetLevelT(t float64) {
	e.levelT = min(max(t, 0), 1)
}

// LevelPoints returns the first de Casteljau level at LevelT.
func (e *Editor) LevelPoints() []polar.Vec2 {
	return bezier.ReduceOnce(e.ControlPolygon(), e.levelT)
}

// LevelCurve samples the Bézier curve spanned by LevelPoints.
// It is empty when there are fewer than 2 control points.
func (e *Editor) LevelCurve() []polar.Vec2 {
	lvl := e.LevelPoints()
	if len(lvl) == 0 {
		return nil
	}

	result := make([]polar.Vec2, 0, e.LevelSegments+1)
	for p := range tessellate.Uniform(lvl, e.LevelSegments) {
		result = append(result, p)
	}

	return result
}

// CurvePoint returns the curve point at LevelT.
func (e *Editor) CurvePoint() polar.Vec2 {
	return bezier.Evaluate(e.ControlPolygon(), e.levelT)
}
