package tessellate

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/polarbez/pkg/bezier"
	"github.com/gucio321/polarbez/pkg/polar"
)

func line(length float64) []polar.Point {
	return []polar.Point{polar.Pt(length/2, 180), polar.Pt(length/2, 0)}
}

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero min", func(c *Config) { c.MinSegments = 0 }},
		{"max below min", func(c *Config) { c.MaxSegments = c.MinSegments - 1 }},
		{"zero pixels", func(c *Config) { c.PixelsPerSegment = 0 }},
		{"NaN pixels", func(c *Config) { c.PixelsPerSegment = math.NaN() }},
		{"negative boost", func(c *Config) { c.CurvatureBoost = -0.1 }},
		{"boost too big", func(c *Config) { c.CurvatureBoost = 2.1 }},
		{"curvature samples", func(c *Config) { c.CurvatureSampleCount = 1 }},
		{"length samples", func(c *Config) { c.LengthSampleCount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestTessellateDegenerate(t *testing.T) {
	assert.Empty(t, Collect(nil, polar.Vec2{}, 0.01, DefaultConfig()))
	assert.Empty(t, Collect([]polar.Point{polar.Pt(1, 0)}, polar.Vec2{}, 0.01, DefaultConfig()))
}

func TestTessellateZeroConfig(t *testing.T) {
	// zero-length curve with no segment minimum still yields one finite segment
	pts := Collect([]polar.Point{polar.Pt(1, 30), polar.Pt(1, 30)}, polar.Vec(1, 1), 0.01, Config{})
	require.Len(t, pts, 2)

	for _, p := range pts {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y), "got %v", p)
	}
}

func TestTessellateStraightLineUsesPixelBudget(t *testing.T) {
	cfg := DefaultConfig()
	// 4 world units at 0.01 units per pixel is 400 px; 400/6 rounds up to 67.
	pts := Collect(line(4), polar.Vec2{}, 0.01, cfg)
	require.Len(t, pts, 68)

	assert.InDelta(t, -2, pts[0].X, 1e-9)
	assert.InDelta(t, 2, pts[len(pts)-1].X, 1e-9)
	for _, p := range pts {
		assert.InDelta(t, 0, p.Y, 1e-9)
	}
}

func TestTessellateClampsToBounds(t *testing.T) {
	cfg := DefaultConfig()

	// far away: tiny on screen
	assert.Len(t, Collect(line(4), polar.Vec2{}, 100, cfg), cfg.MinSegments+1)
	// extreme zoom
	assert.Len(t, Collect(line(4), polar.Vec2{}, 1e-9, cfg), cfg.MaxSegments+1)
	// zero world units per pixel must not divide by zero
	assert.Len(t, Collect(line(4), polar.Vec2{}, 0, cfg), cfg.MaxSegments+1)
}

func TestTessellateCurvatureBoost(t *testing.T) {
	// half circle-ish arch
	pts := []polar.Point{polar.Pt(2, 180), polar.Pt(4, 150), polar.Pt(4, 30), polar.Pt(2, 0)}
	cfg := DefaultConfig()
	flat := cfg
	flat.CurvatureBoost = 0

	cps := polar.AppendCartesian(nil, polar.Vec2{}, pts)
	k := CurvatureFactor(cps, cfg.CurvatureSampleCount)
	require.Greater(t, k, 0.0)

	plain := SegmentCount(cps, 0.005, flat)
	boosted := SegmentCount(cps, 0.005, cfg)
	assert.Equal(t, int(math.Round(float64(plain)*(1+cfg.CurvatureBoost*k))), boosted)
	assert.Greater(t, boosted, plain)
}

func TestTessellateBoundsProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for range 300 {
		n := 2 + rng.IntN(10)
		pts := make([]polar.Point, n)
		for i := range pts {
			pts[i] = polar.Pt(rng.Float64()*10, rng.Float64()*720-360)
		}

		cfg := Config{
			MinSegments:          1 + rng.IntN(50),
			PixelsPerSegment:     rng.Float64()*20 + 0.01,
			CurvatureBoost:       rng.Float64() * 2,
			CurvatureSampleCount: 2 + rng.IntN(100),
			LengthSampleCount:    1 + rng.IntN(100),
		}
		cfg.MaxSegments = cfg.MinSegments + rng.IntN(500)
		require.NoError(t, cfg.Validate())

		got := len(Collect(pts, polar.Vec(rng.Float64(), rng.Float64()), rng.Float64()*0.1, cfg)) - 1
		assert.GreaterOrEqual(t, got, cfg.MinSegments)
		assert.LessOrEqual(t, got, cfg.MaxSegments)
	}
}

func TestTessellateLazy(t *testing.T) {
	n := 0
	for range Tessellate(line(4), polar.Vec2{}, 0.01, DefaultConfig()) {
		n++
		if n == 3 {
			break
		}
	}

	assert.Equal(t, 3, n)
}

func TestArcLength(t *testing.T) {
	cps := []polar.Vec2{{X: 0, Y: 0}, {X: 3, Y: 4}}
	assert.InDelta(t, 5, ArcLength(cps, 32), 1e-9)
	assert.Zero(t, ArcLength(cps[:1], 32))

	// quarter circle approximated by a cubic, radius 1
	const k = 0.5522847498
	arc := []polar.Vec2{{X: 1, Y: 0}, {X: 1, Y: k}, {X: k, Y: 1}, {X: 0, Y: 1}}
	assert.InDelta(t, math.Pi/2, ArcLength(arc, 256), 1e-3)
}

func TestCurvatureFactor(t *testing.T) {
	assert.Zero(t, CurvatureFactor([]polar.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, 64))
	// collinear control points: still a straight curve
	assert.InDelta(t, 0, CurvatureFactor([]polar.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, 64), 1e-6)

	// this loop turns by about 3π/2
	loop := []polar.Vec2{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: -4, Y: 4}, {X: 0, Y: 0}}
	k := CurvatureFactor(loop, 256)
	assert.Greater(t, k, 0.15)
	assert.LessOrEqual(t, k, 1.0)
}

func TestUniform(t *testing.T) {
	cps := []polar.Vec2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}
	var got []polar.Vec2
	for p := range Uniform(cps, 4) {
		got = append(got, p)
	}

	require.Len(t, got, 5)
	for i, p := range got {
		want := bezier.Evaluate(cps, float64(i)/4)
		assert.InDelta(t, want.X, p.X, 1e-12)
		assert.InDelta(t, want.Y, p.Y, 1e-12)
	}

	for range Uniform(cps, 0) {
		t.Fatal("Uniform with 0 segments yielded a point")
	}
}
