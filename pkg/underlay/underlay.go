// Package underlay turns an SVG drawing into polylines shown behind the curve,
// so that the curve can be traced over a reference image.
package underlay

import (
	"errors"
	"fmt"
	"math"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"github.com/gucio321/polarbez/pkg/bezier"
	"github.com/gucio321/polarbez/pkg/polar"
)

const (
	// CurveSegments is the number of segments each SVG cubic is flattened to.
	CurveSegments = 16
	// CircleSegments is the number of segments of an SVG circle.
	CircleSegments = 48
)

var ErrNoDrawing = errors.New("svg contains nothing to draw")

// Parse reads SVG data and returns its outline as polylines in SVG coordinates
// (y pointing down).
func Parse(data []byte) ([][]polar.Vec2, error) {
	// 1.0: unmarshal xml
	doc, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("cant parse svg: %w", err)
	}

	// 2.0: read drawing instructions
	instructions, errs := doc.ParseDrawingInstructions()
	if instructions == nil || errs == nil {
		return nil, errors.New("nil drawing instructions or error channel")
	}

	var (
		lines   [][]polar.Vec2
		current []polar.Vec2
	)

	flush := func() {
		if len(current) > 1 {
			lines = append(lines, current)
		}

		current = nil
	}

	last := func() polar.Vec2 {
		if len(current) == 0 {
			return polar.Vec2{}
		}

		return current[len(current)-1]
	}

reading:
	for {
		select {
		case cmd, ok := <-instructions:
			if !ok || cmd == nil {
				break reading
			}

			switch cmd.Kind {
			case svg.MoveInstruction:
				flush()
				current = append(current, polar.Vec(cmd.M[0], cmd.M[1]))
			case svg.LineInstruction:
				current = append(current, polar.Vec(cmd.M[0], cmd.M[1]))
			case svg.CurveInstruction:
				cps := []polar.Vec2{
					last(),
					polar.Vec(cmd.CurvePoints.C1[0], cmd.CurvePoints.C1[1]),
					polar.Vec(cmd.CurvePoints.C2[0], cmd.CurvePoints.C2[1]),
					polar.Vec(cmd.CurvePoints.T[0], cmd.CurvePoints.T[1]),
				}

				if len(current) == 0 {
					current = append(current, cps[0])
				}

				for i := 1; i <= CurveSegments; i++ {
					current = append(current, bezier.Evaluate(cps, float64(i)/CurveSegments))
				}
			case svg.CircleInstruction:
				flush()
				if cmd.Radius != nil {
					lines = append(lines, circle(polar.Vec(cmd.M[0], cmd.M[1]), *cmd.Radius))
				}
			case svg.CloseInstruction:
				if len(current) > 0 {
					current = append(current, current[0])
				}

				flush()
			case svg.PaintInstruction:
				// style only
			default:
				glg.Debugf("ignoring svg instruction %v", cmd.Kind)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("cant read svg drawing instructions: %w", err)
			}
		}
	}

	flush()

	if len(lines) == 0 {
		return nil, ErrNoDrawing
	}

	return lines, nil
}

func circle(center polar.Vec2, r float64) []polar.Vec2 {
	result := make([]polar.Vec2, 0, CircleSegments+1)
	for i := range CircleSegments + 1 {
		result = append(result, polar.ToCartesian(center, polar.Pt(r, float64(i%CircleSegments)*360/CircleSegments)))
	}

	return result
}

// Fit flips lines from SVG to world orientation (y up), then scales and moves them
// uniformly so that their bounding box is centered on center and its larger side is size.
func Fit(lines [][]polar.Vec2, center polar.Vec2, size float64) [][]polar.Vec2 {
	return fit(lines, center, size, -1)
}

func fit(lines [][]polar.Vec2, center polar.Vec2, size, ySign float64) [][]polar.Vec2 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, line := range lines {
		for _, p := range line {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, ySign*p.Y), max(maxY, ySign*p.Y)
		}
	}

	if math.IsInf(minX, 1) {
		return nil
	}

	scale := 1.0
	if extent := max(maxX-minX, maxY-minY); extent > 0 {
		scale = size / extent
	}

	mid := polar.Vec((minX+maxX)/2, (minY+maxY)/2)
	result := make([][]polar.Vec2, 0, len(lines))
	for _, line := range lines {
		out := make([]polar.Vec2, len(line))
		for i, p := range line {
			out[i] = polar.Vec(p.X, ySign*p.Y).Sub(mid).Mul(scale).Add(center)
		}

		result = append(result, out)
	}

	return result
}
