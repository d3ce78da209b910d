// Package bezier evaluates Bézier curves of arbitrary degree with de Casteljau's algorithm.
package bezier

import "github.com/gucio321/polarbez/pkg/polar"

// Evaluate returns the point of the curve defined by cps at parameter t.
// The degree of the curve is len(cps)-1.
//
// t is not clamped: values outside [0, 1] extrapolate linearly along the construction.
// A single control point is returned as is; no control points yield the zero vector.
func Evaluate(cps []polar.Vec2, t float64) polar.Vec2 {
	switch len(cps) {
	case 0:
		return polar.Vec2{}
	case 1:
		return cps[0]
	}

	var stack [8]polar.Vec2
	return EvaluateBuf(append(stack[:0], cps...), t)
}

// EvaluateBuf is Evaluate working in place: buf is overwritten.
// Callers evaluating many parameters reuse one buffer to avoid allocations.
func EvaluateBuf(buf []polar.Vec2, t float64) polar.Vec2 {
	if len(buf) == 0 {
		return polar.Vec2{}
	}

	for k := len(buf) - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			buf[i] = buf[i].Lerp(buf[i+1], t)
		}
	}

	return buf[0]
}

// ReduceOnce returns the first de Casteljau level at t: the len(cps)-1 points
// lerp(cps[i], cps[i+1], t). It is nil for fewer than 2 control points.
func ReduceOnce(cps []polar.Vec2, t float64) []polar.Vec2 {
	if len(cps) < 2 {
		return nil
	}

	result := make([]polar.Vec2, len(cps)-1)
	for i := range result {
		result[i] = cps[i].Lerp(cps[i+1], t)
	}

	return result
}

// Levels returns every de Casteljau level at t, starting with a copy of cps
// and ending with the single curve point.
func Levels(cps []polar.Vec2, t float64) [][]polar.Vec2 {
	if len(cps) == 0 {
		return nil
	}

	result := make([][]polar.Vec2, 0, len(cps))
	result = append(result, append([]polar.Vec2(nil), cps...))

	for level := cps; len(level) > 1; {
		level = ReduceOnce(level, t)
		result = append(result, level)
	}

	return result
}
