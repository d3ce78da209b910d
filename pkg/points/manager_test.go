package points

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/polarbez/pkg/polar"
)

func ids(list *polar.List) []polar.ID {
	result := make([]polar.ID, 0, list.Len())
	for i := range list.Len() {
		result = append(result, list.At(i).ID)
	}

	return result
}

func TestSetCountInvalidTarget(t *testing.T) {
	m := NewManager()
	list := polar.DefaultList()
	for _, target := range []int{1, 0, -3} {
		assert.ErrorIs(t, m.SetCount(list, target, polar.Vec2{}), ErrInvalidTarget)
	}

	assert.Equal(t, 2, list.Len())
}

func TestSetCountNoop(t *testing.T) {
	m := NewManager()
	list := polar.NewList(polar.Pt(2, 180), polar.Pt(3, 100), polar.Pt(1, 45), polar.Pt(2, 0))
	before := list.Points()

	require.NoError(t, m.SetCount(list, 4, polar.Vec(1, 1)))
	assert.Equal(t, before, list.Points())
	assert.Empty(t, m.Added())
}

func TestGrowPlacesMidpoint(t *testing.T) {
	m := NewManager()
	list := polar.DefaultList()
	origin := polar.Vec(0.5, -1)
	a, b := list.At(0).Cartesian(origin), list.At(1).Cartesian(origin)

	require.NoError(t, m.SetCount(list, 3, origin))
	require.Equal(t, 3, list.Len())

	got := list.At(1).Cartesian(origin)
	want := a.Midpoint(b)
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
	assert.Equal(t, []polar.ID{list.At(1).ID}, m.Added())
}

func TestGrowSpreadsOverLongestGaps(t *testing.T) {
	m := NewManager()
	list := polar.DefaultList()

	// (-2,0) -> (2,0): first split at index 1, then the left half (first of equal gaps)
	require.NoError(t, m.SetCount(list, 4, polar.Vec2{}))
	xs := make([]float64, 0, list.Len())
	for _, v := range list.Cartesian(polar.Vec2{}) {
		xs = append(xs, v.X)
	}

	assert.InDeltaSlice(t, []float64{-2, -1, 0, 2}, xs, 1e-9)

	require.NoError(t, m.SetCount(list, 5, polar.Vec2{}))
	assert.Equal(t, 5, list.Len())
	// the remaining long gap (0 -> 2) is split next
	assert.InDelta(t, 1, list.At(3).Cartesian(polar.Vec2{}).X, 1e-9)
}

func TestShrinkFIFO(t *testing.T) {
	m := NewManager()
	list := polar.DefaultList()
	original := ids(list)

	require.NoError(t, m.SetCount(list, 5, polar.Vec2{}))
	added := m.Added()
	require.Len(t, added, 3)

	require.NoError(t, m.SetCount(list, 4, polar.Vec2{}))
	assert.False(t, list.Contains(added[0]), "oldest added point should go first")
	assert.True(t, list.Contains(added[1]))
	assert.True(t, list.Contains(added[2]))

	require.NoError(t, m.SetCount(list, 3, polar.Vec2{}))
	assert.False(t, list.Contains(added[1]))
	assert.True(t, list.Contains(added[2]))

	require.NoError(t, m.SetCount(list, 2, polar.Vec2{}))
	assert.Equal(t, original, ids(list))
	assert.Empty(t, m.Added())
}

func TestShrinkFallbackKeepsEndpoints(t *testing.T) {
	m := NewManager()
	list := polar.NewList(polar.Pt(2, 180), polar.Pt(2, 135), polar.Pt(2, 45), polar.Pt(2, 0))
	first, second, last := list.At(0).ID, list.At(1).ID, list.At(3).ID

	require.NoError(t, m.SetCount(list, 3, polar.Vec2{}))
	assert.Equal(t, []polar.ID{first, second, last}, ids(list))

	require.NoError(t, m.SetCount(list, 2, polar.Vec2{}))
	assert.Equal(t, []polar.ID{first, last}, ids(list))
}

func TestShrinkFallbackRemovesLast(t *testing.T) {
	m := NewManager()
	m.KeepEndpointsFixed = false
	list := polar.NewList(polar.Pt(2, 180), polar.Pt(2, 135), polar.Pt(2, 45), polar.Pt(2, 0))
	first, second := list.At(0).ID, list.At(1).ID

	require.NoError(t, m.SetCount(list, 2, polar.Vec2{}))
	assert.Equal(t, []polar.ID{first, second}, ids(list))
}

func TestShrinkSkipsStaleEntries(t *testing.T) {
	m := NewManager()
	list := polar.DefaultList()
	require.NoError(t, m.SetCount(list, 4, polar.Vec2{}))
	added := m.Added()

	// an editor deletes the oldest added point behind the manager's back
	list.RemoveAt(list.IndexOf(added[0]))
	require.Equal(t, 3, list.Len())

	require.NoError(t, m.SetCount(list, 2, polar.Vec2{}))
	assert.False(t, list.Contains(added[1]))
	assert.Equal(t, 2, list.Len())
	assert.Empty(t, m.Added())
}

func TestShrinkSkipsProtectedEndpoint(t *testing.T) {
	m := NewManager()
	list := polar.DefaultList()
	require.NoError(t, m.SetCount(list, 3, polar.Vec2{}))
	added := m.Added()[0]

	// the original end point is removed externally; the added point becomes the end
	list.RemoveAt(2)
	middle := list.Insert(1, polar.Pt(1, 90))
	require.Equal(t, 2, list.IndexOf(added))

	require.NoError(t, m.SetCount(list, 2, polar.Vec2{}))
	assert.True(t, list.Contains(added), "protected endpoint must survive")
	assert.False(t, list.Contains(middle))
	assert.Empty(t, m.Added())
}

func TestMinimumGuard(t *testing.T) {
	for _, keep := range []int{0, 1} {
		m := NewManager()
		list := polar.DefaultList()
		require.NoError(t, m.SetCount(list, 5, polar.Vec2{}))
		list.Truncate(keep)

		require.NoError(t, m.SetCount(list, 2, polar.Vec2{}))
		require.Equal(t, 2, list.Len())
		assert.Equal(t, float64(polar.DefaultRadius), list.At(0).Radius)
		assert.Equal(t, float64(polar.DefaultStartAngle), list.At(0).AngleDeg)
		assert.Equal(t, float64(polar.DefaultEndAngle), list.At(1).AngleDeg)
		assert.Empty(t, m.Added())
	}
}

func TestMinimumGuardBeforeGrow(t *testing.T) {
	m := NewManager()
	list := polar.NewList(polar.Pt(5, 10))

	require.NoError(t, m.SetCount(list, 3, polar.Vec2{}))
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, float64(polar.DefaultRadius), list.At(0).Radius)
	assert.Len(t, m.Added(), 1)
}

func TestSetCountClampsToBounds(t *testing.T) {
	m := NewManager()
	m.MinCount, m.MaxCount = 3, 6
	list := polar.DefaultList()

	require.NoError(t, m.SetCount(list, 2, polar.Vec2{}))
	assert.Equal(t, 3, list.Len())

	require.NoError(t, m.SetCount(list, 40, polar.Vec2{}))
	assert.Equal(t, 6, list.Len())
}

func TestSetCountProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	m := NewManager()
	m.MaxCount = 30
	list := polar.DefaultList()
	origin := polar.Vec(rng.Float64(), rng.Float64())

	for range 500 {
		if rng.IntN(10) == 0 {
			// simulate a drag between count changes
			p := list.At(rng.IntN(list.Len()))
			p.Set(rng.Float64()*5, rng.Float64()*360)
		}

		target := 2 + rng.IntN(29)
		require.NoError(t, m.SetCount(list, target, origin))
		require.Equal(t, max(target, m.MinCount), list.Len())

		for _, id := range m.Added() {
			require.NotZero(t, id)
		}
	}
}

func TestGrowShrinkWithoutBounds(t *testing.T) {
	m := NewManager()
	list := polar.DefaultList()

	m.Grow(list, 20, polar.Vec2{})
	assert.Equal(t, 22, list.Len())

	assert.Equal(t, 20, m.Shrink(list, 100))
	assert.Equal(t, 2, list.Len())
}
