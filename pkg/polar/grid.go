package polar

import "math"

// Grid describes a polar reference grid: concentric circles and radial spokes.
type Grid struct {
	Circles        int
	RadialLines    int
	MaxRadius      float64
	CircleSegments int
}

// DefaultGrid returns the grid drawn behind the curve by default.
func DefaultGrid() Grid {
	return Grid{
		Circles:        6,
		RadialLines:    12,
		MaxRadius:      6,
		CircleSegments: 96,
	}
}

// Sanitized returns g with every field raised to its minimum.
func (g Grid) Sanitized() Grid {
	g.Circles = max(1, g.Circles)
	g.RadialLines = max(1, g.RadialLines)
	g.MaxRadius = max(0.01, g.MaxRadius)
	g.CircleSegments = max(12, g.CircleSegments)

	return g
}

// CircleStrips returns one closed strip per circle (first vertex repeated at the end),
// innermost first.
func (g Grid) CircleStrips(center Vec2) [][]Vec2 {
	g = g.Sanitized()
	result := make([][]Vec2, 0, g.Circles)

	for c := range g.Circles {
		r := g.MaxRadius * float64(c+1) / float64(g.Circles)
		strip := make([]Vec2, 0, g.CircleSegments+1)
		for i := range g.CircleSegments + 1 {
			a := float64(i%g.CircleSegments) / float64(g.CircleSegments) * 2 * math.Pi
			y, x := math.Sincos(a)
			strip = append(strip, center.Add(Vec2{x, y}.Mul(r)))
		}

		result = append(result, strip)
	}

	return result
}

// Spokes returns start/end pairs of the radial lines, starting at angle 0.
func (g Grid) Spokes(center Vec2) [][2]Vec2 {
	g = g.Sanitized()
	result := make([][2]Vec2, 0, g.RadialLines)

	for i := range g.RadialLines {
		a := float64(i) / float64(g.RadialLines) * 2 * math.Pi
		y, x := math.Sincos(a)
		result = append(result, [2]Vec2{center, center.Add(Vec2{x, y}.Mul(g.MaxRadius))})
	}

	return result
}
