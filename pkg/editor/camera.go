package editor

import (
	"math"

	"github.com/gucio321/polarbez/pkg/polar"
)

const (
	DefaultHalfHeight = 5
	MinHalfHeight     = 0.5
	MaxHalfHeight     = 50

	// DefaultFramePadding is the margin factor used by Frame.
	DefaultFramePadding = 1.2
	// FrameSampleCount is the number of curve samples Frame is given by the editor.
	FrameSampleCount = 128
)

// Camera is an orthographic 2D camera. World y points up, screen y points down.
type Camera struct {
	Center polar.Vec2
	// HalfHeight is half of the visible world height.
	HalfHeight float64
	// ScreenWidth and ScreenHeight are in pixels.
	ScreenWidth, ScreenHeight int
}

// NewCamera creates a camera centered on world origin.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		HalfHeight:   DefaultHalfHeight,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldUnitsPerPixel is 2*HalfHeight/ScreenHeight.
func (c *Camera) WorldUnitsPerPixel() float64 {
	return 2 * c.HalfHeight / float64(max(1, c.ScreenHeight))
}

// ScreenToWorld maps pixel coordinates to world coordinates.
func (c *Camera) ScreenToWorld(x, y float64) polar.Vec2 {
	s := c.WorldUnitsPerPixel()
	return polar.Vec2{
		X: c.Center.X + (x-float64(c.ScreenWidth)/2)*s,
		Y: c.Center.Y - (y-float64(c.ScreenHeight)/2)*s,
	}
}

// WorldToScreen maps world coordinates to pixel coordinates.
func (c *Camera) WorldToScreen(p polar.Vec2) (x, y float64) {
	s := c.WorldUnitsPerPixel()
	return (p.X-c.Center.X)/s + float64(c.ScreenWidth)/2,
		-(p.Y-c.Center.Y)/s + float64(c.ScreenHeight)/2
}

// Zoom multiplies the visible height by factor, keeping it within [MinHalfHeight, MaxHalfHeight].
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}

	c.HalfHeight = min(max(c.HalfHeight*factor, MinHalfHeight), MaxHalfHeight)
}

// Pan moves the camera by a screen-space offset in pixels.
func (c *Camera) Pan(dx, dy float64) {
	s := c.WorldUnitsPerPixel()
	c.Center = c.Center.Add(polar.Vec2{X: -dx * s, Y: dy * s})
}

// ZoomAt zooms like Zoom, keeping the world point under screen position (x, y) in place.
func (c *Camera) ZoomAt(factor, x, y float64) {
	before := c.ScreenToWorld(x, y)
	c.Zoom(factor)
	after := c.ScreenToWorld(x, y)
	c.Center = c.Center.Add(before.Sub(after))
}

// Frame centers the camera on the bounding box of samples and sets the half height so
// that the box grown by padding fits the screen, within [MinHalfHeight, MaxHalfHeight].
func (c *Camera) Frame(samples []polar.Vec2, padding float64) {
	if len(samples) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range samples {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	c.Center = polar.Vec((minX+maxX)/2, (minY+maxY)/2)

	aspect := float64(max(1, c.ScreenWidth)) / float64(max(1, c.ScreenHeight))
	byHeight := (maxY - minY) / 2 * padding
	byWidth := (maxX - minX) / 2 * padding / aspect

	c.HalfHeight = min(max(byHeight, byWidth, MinHalfHeight), MaxHalfHeight)
}
