// Package plot renders tessellated curves as G-code for pen plotters.
package plot

import (
	"fmt"
	"math"
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/polarbez/pkg/polar"
)

const DefaultPreamble = `;; BEGIN PREAMBLE
G21 ; Millimeters
G90 ; Absolute positioning
G28 X Y ; Home X and Y axes
;; END PREAMBLE
`

const DefaultPostamble = `;; BEGIN POSTAMBLE
M84 X Y Z E ; Disable ALL motors
;; END POSTAMBLE
`

const (
	// DefaultDepth is how far the pen goes down (mm).
	DefaultDepth = 2
	// DefaultMargin is kept between a fitted drawing and the workspace border (mm).
	DefaultMargin = 5
)

// Transform maps world coordinates to machine coordinates: machine = world*Scale + Offset.
type Transform struct {
	Scale  float64
	Offset polar.Vec2
}

// Apply maps p to machine coordinates.
func (t Transform) Apply(p polar.Vec2) polar.Vec2 {
	return p.Mul(t.Scale).Add(t.Offset)
}

// Fit returns the uniform transform centering paths in ws, leaving margin on each side.
func Fit(ws Workspace, margin float64, paths ...[]polar.Vec2) (Transform, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, path := range paths {
		for _, p := range path {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}

	if math.IsInf(minX, 1) {
		return Transform{}, ErrEmptyPath
	}

	availW := ws.MaxX - ws.MinX - 2*margin
	availH := ws.MaxY - ws.MinY - 2*margin
	if availW <= 0 || availH <= 0 {
		return Transform{}, fmt.Errorf("%w: margin %g does not fit into %s", ErrOutOfBounds, margin, ws.Name)
	}

	scale := math.Inf(1)
	if w := maxX - minX; w > 0 {
		scale = availW / w
	}

	if h := maxY - minY; h > 0 {
		scale = min(scale, availH/h)
	}

	if math.IsInf(scale, 1) {
		scale = 1
	}

	center := polar.Vec((minX+maxX)/2, (minY+maxY)/2)

	return Transform{
		Scale:  scale,
		Offset: ws.Center().Sub(center.Mul(scale)),
	}, nil
}

// Builder allows to build G-code for a plotter.
// All positions given to it are world coordinates mapped through its Transform.
type Builder struct {
	commands            []Command
	depth               float64
	isDrawing           bool
	current             polar.Vec2
	workspace           Workspace
	transform           Transform
	preamble, postamble string
}

// NewBuilder creates new Builder with default values and identity transform.
func NewBuilder(ws Workspace) *Builder {
	return &Builder{
		depth:     DefaultDepth,
		workspace: ws,
		transform: Transform{Scale: 1},
		preamble:  DefaultPreamble,
		postamble: DefaultPostamble,
	}
}

// SetDepth sets how deep the pen should go.
func (b *Builder) SetDepth(depth float64) *Builder {
	b.depth = depth
	return b
}

// SetTransform sets world to machine mapping.
func (b *Builder) SetTransform(t Transform) *Builder {
	b.transform = t
	return b
}

// PushCommand appends raw commands.
func (b *Builder) PushCommand(cmds ...Command) *Builder {
	b.commands = append(b.commands, cmds...)
	return b
}

// Commands returns the commands pushed so far.
func (b *Builder) Commands() []Command {
	return b.commands
}

// Comment writes comment to G-code.
func (b *Builder) Comment(comment string) *Builder {
	return b.PushCommand(Command{LineComment: comment})
}

func (b *Builder) Commentf(format string, args ...any) *Builder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// Down starts drawing
func (b *Builder) Down() error {
	if b.isDrawing {
		return fmt.Errorf("%w: Down called, but already drawing", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		Code:        G0,
		Args:        []Arg{{"Z", -b.depth}},
		LineComment: "start drawing",
	})
	b.isDrawing = true

	return nil
}

// Up stops active drawing
func (b *Builder) Up() error {
	if !b.isDrawing {
		return fmt.Errorf("%w: Up called, but not drawing", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		Code:        G0,
		Args:        []Arg{{"Z", 0}},
		LineComment: "stop drawing",
	})
	b.isDrawing = false

	return nil
}

// Move goes to world position p: a travel move when the pen is up, a line otherwise.
func (b *Builder) Move(p polar.Vec2) error {
	hw := b.transform.Apply(p)
	if !b.workspace.Contains(hw) {
		return fmt.Errorf("%w: %v maps to %v, outside %s", ErrOutOfBounds, p, hw, b.workspace.Name)
	}

	code := G0
	if b.isDrawing {
		code = G1
	}

	b.PushCommand(Command{
		Code:        code,
		Args:        []Arg{{"X", hw.X}, {"Y", hw.Y}},
		LineComment: fmt.Sprintf("to %v", p),
	})
	b.current = p

	return nil
}

// Current returns the current world position.
func (b *Builder) Current() polar.Vec2 {
	return b.current
}

// DrawLines draws a polyline through path.
func (b *Builder) DrawLines(path ...polar.Vec2) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	b.Commentf("BEGIN DrawLines(%d points)", len(path))

	// 1.0: travel to the start and put the pen down
	if err := b.Move(path[0]); err != nil {
		return fmt.Errorf("cant move to start of lines: %w", err)
	}

	if err := b.Down(); err != nil {
		return fmt.Errorf("cant start drawing lines: %w", err)
	}

	// 1.1: draw
	for _, p := range path[1:] {
		if err := b.Move(p); err != nil {
			if upErr := b.Up(); upErr != nil {
				glg.Warnf("cant lift pen after failed move: %v", upErr)
			}

			return fmt.Errorf("cant draw lines: %w", err)
		}
	}

	// 1.2: lift the pen
	if err := b.Up(); err != nil {
		return fmt.Errorf("cant stop drawing lines: %w", err)
	}

	b.Commentf("END DrawLines(%d points)", len(path))

	return nil
}

// String returns built G-code.
func (b *Builder) String(comments bool) string {
	var sb strings.Builder
	sb.WriteString(b.preamble)

	for _, cmd := range b.commands {
		line := cmd.String(comments)
		if line == "" {
			continue
		}

		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	sb.WriteString(b.postamble)

	return sb.String()
}
