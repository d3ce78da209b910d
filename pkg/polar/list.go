package polar

import "slices"

// DefaultRadius, DefaultStartAngle and DefaultEndAngle describe the two points
// a List falls back to when it would otherwise hold fewer than MinPoints.
const (
	DefaultRadius     = 2
	DefaultStartAngle = 180
	DefaultEndAngle   = 0
	// MinPoints is the smallest number of points describing a curve.
	MinPoints = 2
)

// List is the ordered control polygon. Index 0 is the curve start, Len()-1 its end.
// The degree of the curve is Len()-1.
//
// List is not safe for concurrent use; callers serialize edits.
type List struct {
	points []Point
	lastID ID
	// index maps IDs to positions. nil means stale.
	index map[ID]int
}

// NewList registers the given points (assigning fresh IDs) in order.
func NewList(pts ...Point) *List {
	l := &List{points: make([]Point, 0, len(pts))}
	for _, p := range pts {
		l.Append(p)
	}

	return l
}

// DefaultList returns the 2-point list used as a minimum.
func DefaultList() *List {
	l := &List{}
	l.Reset()
	return l
}

// Len returns number of points.
func (l *List) Len() int {
	return len(l.points)
}

// At returns a pointer to the i-th point. It stays valid until the next structural change.
func (l *List) At(i int) *Point {
	return &l.points[i]
}

// Points returns a copy of the current points.
func (l *List) Points() []Point {
	return slices.Clone(l.points)
}

// Append registers p at the end of the list and returns its ID.
func (l *List) Append(p Point) ID {
	return l.Insert(len(l.points), p)
}

// Insert registers p at index i (0 <= i <= Len()) and returns its new ID.
// Any ID already carried by p is replaced.
func (l *List) Insert(i int, p Point) ID {
	l.lastID++
	p.ID = l.lastID
	p.SetRadius(p.Radius)
	l.points = slices.Insert(l.points, i, p)
	l.index = nil

	return p.ID
}

// RemoveAt removes the point at index i and returns it.
func (l *List) RemoveAt(i int) Point {
	p := l.points[i]
	l.points = slices.Delete(l.points, i, i+1)
	l.index = nil

	return p
}

// Truncate drops every point from index n onward.
func (l *List) Truncate(n int) {
	if n < 0 {
		n = 0
	}

	if n >= len(l.points) {
		return
	}

	l.points = l.points[:n]
	l.index = nil
}

// Reset replaces the contents with the two default points.
func (l *List) Reset() {
	l.points = l.points[:0]
	l.index = nil
	l.Append(Pt(DefaultRadius, DefaultStartAngle))
	l.Append(Pt(DefaultRadius, DefaultEndAngle))
}

// IndexOf returns the current index of id, or -1 when it is not in the list.
func (l *List) IndexOf(id ID) int {
	if l.index == nil {
		l.index = make(map[ID]int, len(l.points))
		for i, p := range l.points {
			l.index[p.ID] = i
		}
	}

	if i, ok := l.index[id]; ok {
		return i
	}

	return -1
}

// Contains reports whether id is in the list.
func (l *List) Contains(id ID) bool {
	return l.IndexOf(id) >= 0
}

// Cartesian converts every point to a world position around origin.
func (l *List) Cartesian(origin Vec2) []Vec2 {
	return AppendCartesian(make([]Vec2, 0, len(l.points)), origin, l.points)
}

// AppendCartesian appends the world positions of pts to dst.
func AppendCartesian(dst []Vec2, origin Vec2, pts []Point) []Vec2 {
	for _, p := range pts {
		dst = append(dst, ToCartesian(origin, p))
	}

	return dst
}
