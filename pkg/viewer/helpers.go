package viewer

import (
	"image/color"
	"math"
)

// GreenToRedHSV maps v in [0, 1] to a hue between green (0) and red (1).
func GreenToRedHSV(v float64) color.RGBA {
	// Clamp v between 0 and 1
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	// Interpolate hue from 120 (green) to 0 (red)
	hue := (1.0 - v) * 120.0
	return HSVtoRGB(hue, 1.0, 1.0)
}

// HSVtoRGB maps h ∈ [0, 360), s, v ∈ [0,1] to an RGBA color
func HSVtoRGB(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	case h < 360:
		r, g, b = c, 0, x
	default:
		r, g, b = 0, 0, 0
	}

	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}

// withAlpha returns c premultiplied with alpha a.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(uint16(v) * uint16(a) / 255)
	}

	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), a}
}

// levelColor colors the i-th of n intermediate de Casteljau points.
func levelColor(i, n int) color.RGBA {
	if n <= 1 {
		return GreenToRedHSV(0)
	}

	return GreenToRedHSV(float64(i) / float64(n-1))
}
