package tessellate

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid tessellation config")

// Default values; they match the look of the interactive editor.
const (
	DefaultMinSegments          = 32
	DefaultMaxSegments          = 1024
	DefaultPixelsPerSegment     = 6
	DefaultCurvatureBoost       = 0.6
	DefaultCurvatureSampleCount = 64
	DefaultLengthSampleCount    = 32
	// MaxCurvatureBoost is the upper bound of Config.CurvatureBoost.
	MaxCurvatureBoost = 2
)

// Config controls how many segments approximate a curve.
type Config struct {
	MinSegments int `json:"minSegments" toml:"minSegments" yaml:"minSegments"`
	MaxSegments int `json:"maxSegments" toml:"maxSegments" yaml:"maxSegments"`
	// PixelsPerSegment is the on-screen length a single segment aims for.
	PixelsPerSegment float64 `json:"pixelsPerSegment" toml:"pixelsPerSegment" yaml:"pixelsPerSegment"`
	// CurvatureBoost scales the extra segments spent on bent curves, in [0, 2].
	CurvatureBoost       float64 `json:"curvatureBoost" toml:"curvatureBoost" yaml:"curvatureBoost"`
	CurvatureSampleCount int     `json:"curvatureSampleCount" toml:"curvatureSampleCount" yaml:"curvatureSampleCount"`
	LengthSampleCount    int     `json:"lengthSampleCount" toml:"lengthSampleCount" yaml:"lengthSampleCount"`
}

// DefaultConfig returns the default tessellation settings.
func DefaultConfig() Config {
	return Config{
		MinSegments:          DefaultMinSegments,
		MaxSegments:          DefaultMaxSegments,
		PixelsPerSegment:     DefaultPixelsPerSegment,
		CurvatureBoost:       DefaultCurvatureBoost,
		CurvatureSampleCount: DefaultCurvatureSampleCount,
		LengthSampleCount:    DefaultLengthSampleCount,
	}
}

// Validate checks ranges of all fields.
func (c Config) Validate() error {
	switch {
	case c.MinSegments <= 0:
		return fmt.Errorf("%w: minSegments must be positive, got %d", ErrInvalidConfig, c.MinSegments)
	case c.MaxSegments < c.MinSegments:
		return fmt.Errorf("%w: maxSegments (%d) must be at least minSegments (%d)", ErrInvalidConfig, c.MaxSegments, c.MinSegments)
	case !(c.PixelsPerSegment > 0):
		return fmt.Errorf("%w: pixelsPerSegment must be positive, got %g", ErrInvalidConfig, c.PixelsPerSegment)
	case !(c.CurvatureBoost >= 0 && c.CurvatureBoost <= MaxCurvatureBoost):
		return fmt.Errorf("%w: curvatureBoost must be in [0, %d], got %g", ErrInvalidConfig, MaxCurvatureBoost, c.CurvatureBoost)
	case c.CurvatureSampleCount < 2:
		return fmt.Errorf("%w: curvatureSampleCount must be at least 2, got %d", ErrInvalidConfig, c.CurvatureSampleCount)
	case c.LengthSampleCount < 1:
		return fmt.Errorf("%w: lengthSampleCount must be positive, got %d", ErrInvalidConfig, c.LengthSampleCount)
	}

	return nil
}
