// Package tessellate approximates Bézier curves with polylines sized for the screen.
//
// The segment count follows the on-screen length of the curve (so smoothness does not
// depend on zoom) and is boosted where the curve bends.
package tessellate

import (
	"iter"
	"math"

	"github.com/gucio321/polarbez/pkg/bezier"
	"github.com/gucio321/polarbez/pkg/polar"
)

const (
	// curvatureReference is the total turning angle (radians) regarded as fully curved.
	curvatureReference = 20
	minChord           = 1e-6
	minWorldPerPixel   = 1e-6
	minPixelsPerSeg    = 0.5
)

// Tessellate samples the curve described by points around origin.
// It yields SegmentCount+1 points at t = i/segments, using at least one segment
// even when cfg allows zero. Fewer than 2 control points yield nothing.
//
// worldUnitsPerPixel is the world size of one screen pixel, e.g.
// 2*orthographicHalfHeight/screenHeight.
func Tessellate(points []polar.Point, origin polar.Vec2, worldUnitsPerPixel float64, cfg Config) iter.Seq[polar.Vec2] {
	return func(yield func(polar.Vec2) bool) {
		if len(points) < 2 {
			return
		}

		cps := polar.AppendCartesian(make([]polar.Vec2, 0, len(points)), origin, points)
		segments := max(1, SegmentCount(cps, worldUnitsPerPixel, cfg))
		sample(cps, segments, yield)
	}
}

// Collect is Tessellate returning a slice.
func Collect(points []polar.Point, origin polar.Vec2, worldUnitsPerPixel float64, cfg Config) []polar.Vec2 {
	var result []polar.Vec2
	for p := range Tessellate(points, origin, worldUnitsPerPixel, cfg) {
		result = append(result, p)
	}

	return result
}

// Uniform samples the curve of cps at segments+1 evenly spaced parameters.
func Uniform(cps []polar.Vec2, segments int) iter.Seq[polar.Vec2] {
	return func(yield func(polar.Vec2) bool) {
		if len(cps) == 0 || segments < 1 {
			return
		}

		sample(cps, segments, yield)
	}
}

func sample(cps []polar.Vec2, segments int, yield func(polar.Vec2) bool) {
	buf := make([]polar.Vec2, len(cps))
	for i := range segments + 1 {
		copy(buf, cps)
		if !yield(bezier.EvaluateBuf(buf, float64(i)/float64(segments))) {
			return
		}
	}
}

// SegmentCount decides how many segments approximate the curve of cps.
// The result is within [cfg.MinSegments, cfg.MaxSegments].
func SegmentCount(cps []polar.Vec2, worldUnitsPerPixel float64, cfg Config) int {
	length := ArcLength(cps, cfg.LengthSampleCount)
	pixelLength := length / math.Max(minWorldPerPixel, worldUnitsPerPixel)

	base := math.Ceil(pixelLength / math.Max(minPixelsPerSeg, cfg.PixelsPerSegment))
	segments := clamp(base, cfg.MinSegments, cfg.MaxSegments)

	k := CurvatureFactor(cps, cfg.CurvatureSampleCount)
	boosted := math.Round(float64(segments) * (1 + cfg.CurvatureBoost*k))

	return clamp(boosted, cfg.MinSegments, cfg.MaxSegments)
}

// ArcLength estimates the length of the curve by summing the chords of a polyline
// with the given number of samples.
func ArcLength(cps []polar.Vec2, samples int) float64 {
	if len(cps) < 2 || samples < 1 {
		return 0
	}

	buf := make([]polar.Vec2, len(cps))
	prev := cps[0]
	sum := 0.0

	for i := 1; i <= samples; i++ {
		copy(buf, cps)
		p := bezier.EvaluateBuf(buf, float64(i)/float64(samples))
		sum += prev.Distance(p)
		prev = p
	}

	return sum
}

// CurvatureFactor returns the total turning angle of the sampled curve normalized
// to [0, 1]. Chords shorter than 1e-6 are ignored.
func CurvatureFactor(cps []polar.Vec2, samples int) float64 {
	if len(cps) < 3 || samples < 2 {
		return 0
	}

	buf := make([]polar.Vec2, len(cps))
	at := func(t float64) polar.Vec2 {
		copy(buf, cps)
		return bezier.EvaluateBuf(buf, t)
	}

	p0 := cps[0]
	p1 := at(1 / float64(samples))
	sum := 0.0

	for i := 2; i <= samples; i++ {
		p2 := at(float64(i) / float64(samples))
		a, b := p1.Sub(p0), p2.Sub(p1)

		la, lb := a.Hypot(), b.Hypot()
		if la > minChord && lb > minChord {
			cos := math.Max(-1, math.Min(1, a.Dot(b)/(la*lb)))
			sum += math.Acos(cos)
		}

		p0, p1 = p1, p2
	}

	return math.Max(0, math.Min(1, sum/curvatureReference))
}

func clamp(v float64, lo, hi int) int {
	switch {
	case math.IsNaN(v) || v < float64(lo):
		return lo
	case v > float64(hi):
		return hi
	}

	return int(v)
}
