// Package points grows and shrinks a control polygon while keeping the curve shape.
//
// New points are placed at the midpoint of the longest gap; removal undoes
// previous additions first (oldest first) before touching other points.
package points

import (
	"errors"
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/polarbez/pkg/polar"
)

// ErrInvalidTarget is returned when a count below polar.MinPoints is requested.
var ErrInvalidTarget = errors.New("invalid target point count")

const (
	DefaultMinCount = polar.MinPoints
	DefaultMaxCount = 12
)

// Manager changes the number of points of a polar.List.
//
// It remembers which points it added (by polar.ID, never owning them) so that a
// later shrink removes those first. It is not safe for concurrent use.
type Manager struct {
	// MinCount and MaxCount bound the requested target.
	MinCount, MaxCount int
	// KeepEndpointsFixed protects the first and the last point from removal.
	KeepEndpointsFixed bool

	added []polar.ID
}

// NewManager creates a Manager with default bounds that keeps endpoints fixed.
func NewManager() *Manager {
	return &Manager{
		MinCount:           DefaultMinCount,
		MaxCount:           DefaultMaxCount,
		KeepEndpointsFixed: true,
	}
}

// Added returns IDs of points added by the manager, oldest first.
// Entries may refer to points already gone from the list.
func (m *Manager) Added() []polar.ID {
	return append([]polar.ID(nil), m.added...)
}

// Reset forgets all added points.
func (m *Manager) Reset() {
	m.added = m.added[:0]
}

// Bounds returns the effective [min, max] target range.
func (m *Manager) Bounds() (lo, hi int) {
	lo = max(polar.MinPoints, m.MinCount)
	hi = m.MaxCount
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// EnsureMinimum resets list to its two default points (and forgets added points)
// when it holds fewer than polar.MinPoints. It reports whether it did so.
func (m *Manager) EnsureMinimum(list *polar.List) bool {
	if list.Len() >= polar.MinPoints {
		return false
	}

	glg.Debugf("point list has %d points, resetting to defaults", list.Len())
	list.Reset()
	m.Reset()

	return true
}

// SetCount grows or shrinks list to target points (clamped to Bounds).
// origin is the polar origin the list is expressed in.
func (m *Manager) SetCount(list *polar.List, target int, origin polar.Vec2) error {
	if target < polar.MinPoints {
		return fmt.Errorf("%w: %d (minimum is %d)", ErrInvalidTarget, target, polar.MinPoints)
	}

	lo, hi := m.Bounds()
	target = min(max(target, lo), hi)

	m.EnsureMinimum(list)

	switch current := list.Len(); {
	case target > current:
		m.grow(list, target-current, origin)
	case target < current:
		m.shrink(list, current-target)
	}

	return nil
}

// Grow adds n points. It is SetCount without bounds.
func (m *Manager) Grow(list *polar.List, n int, origin polar.Vec2) {
	m.EnsureMinimum(list)
	m.grow(list, n, origin)
}

// Shrink removes up to n points, never going below polar.MinPoints.
// It returns the number of points removed.
func (m *Manager) Shrink(list *polar.List, n int) int {
	m.EnsureMinimum(list)
	return m.shrink(list, n)
}

func (m *Manager) grow(list *polar.List, n int, origin polar.Vec2) {
	for range n {
		idx := longestGap(list, origin)
		mid := midpoint(list, idx, origin)

		var p polar.Point
		p.SetCartesian(origin, mid)

		m.added = append(m.added, list.Insert(idx, p))
	}
}

func (m *Manager) shrink(list *polar.List, n int) (removed int) {
	for range n {
		if list.Len() <= polar.MinPoints {
			return removed
		}

		if m.removeOldestAdded(list) {
			removed++
			continue
		}

		if m.KeepEndpointsFixed {
			idx := list.Len() - 2
			if idx <= 0 {
				return removed
			}

			list.RemoveAt(idx)
		} else {
			list.RemoveAt(list.Len() - 1)
		}

		removed++
	}

	return removed
}

// removeOldestAdded pops the queue until it finds a point it may remove.
// Stale and protected entries are dropped on the way.
func (m *Manager) removeOldestAdded(list *polar.List) bool {
	for len(m.added) > 0 {
		id := m.added[0]
		m.added = m.added[1:]

		idx := list.IndexOf(id)
		switch {
		case idx < 0:
			glg.Debugf("dropping stale added point %d", id)
			continue
		case m.KeepEndpointsFixed && (idx == 0 || idx == list.Len()-1):
			glg.Debugf("added point %d became an endpoint, not removing", id)
			continue
		}

		list.RemoveAt(idx)

		return true
	}

	return false
}

// longestGap returns the insertion index splitting the longest segment of the
// control polygon (by cartesian length). Ties go to the first segment.
func longestGap(list *polar.List, origin polar.Vec2) int {
	best, bestD2 := 1, -1.0
	for i := 0; i+1 < list.Len(); i++ {
		a := list.At(i).Cartesian(origin)
		b := list.At(i + 1).Cartesian(origin)

		if d2 := a.DistanceSquared(b); d2 > bestD2 {
			best, bestD2 = i+1, d2
		}
	}

	return min(max(best, 1), list.Len())
}

func midpoint(list *polar.List, idx int, origin polar.Vec2) polar.Vec2 {
	last := list.Len() - 1
	left := min(max(idx-1, 0), last)
	right := min(max(idx, 0), last)

	return list.At(left).Cartesian(origin).Midpoint(list.At(right).Cartesian(origin))
}
