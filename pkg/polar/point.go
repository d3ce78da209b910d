// Package polar holds control points expressed as (radius, angle) around a movable origin.
package polar

import "math"

const (
	deg2Rad = math.Pi / 180
	rad2Deg = 180 / math.Pi
)

// ID identifies a Point for as long as it lives in a List.
// Zero is never assigned by a List.
type ID uint32

// Point is a single control point. AngleDeg is in degrees and is never normalized.
type Point struct {
	ID       ID
	Radius   float64
	AngleDeg float64
}

// Pt returns an unregistered point; radius is clamped to be non-negative.
func Pt(radius, angleDeg float64) Point {
	return Point{Radius: clampRadius(radius), AngleDeg: angleDeg}
}

// SetRadius sets radius, clamping negative values to 0.
func (p *Point) SetRadius(radius float64) {
	p.Radius = clampRadius(radius)
}

// Set replaces both coordinates.
func (p *Point) Set(radius, angleDeg float64) {
	p.SetRadius(radius)
	p.AngleDeg = angleDeg
}

// SetCartesian moves the point to pos as seen from origin.
func (p *Point) SetCartesian(origin, pos Vec2) {
	p.Set(FromCartesian(origin, pos))
}

// Cartesian is ToCartesian(origin, p).
func (p Point) Cartesian(origin Vec2) Vec2 {
	return ToCartesian(origin, p)
}

// ToCartesian maps p to a world position relative to origin.
func ToCartesian(origin Vec2, p Point) Vec2 {
	y, x := math.Sincos(p.AngleDeg * deg2Rad)
	return origin.Add(Vec2{x, y}.Mul(p.Radius))
}

// FromCartesian returns polar coordinates of pos around origin.
// The angle is in (-180, 180].
func FromCartesian(origin, pos Vec2) (radius, angleDeg float64) {
	d := pos.Sub(origin)
	return d.Hypot(), d.Angle() * rad2Deg
}

func clampRadius(r float64) float64 {
	if r < 0 || math.IsNaN(r) {
		return 0
	}

	return r
}
