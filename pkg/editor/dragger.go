package editor

import "github.com/gucio321/polarbez/pkg/polar"

// DefaultPickRadius is the max world distance for grabbing a point.
const DefaultPickRadius = 0.35

// Dragger moves a single grabbed control point around.
type Dragger struct {
	PickRadius float64

	grabbed polar.ID
}

// NewDragger returns a Dragger with DefaultPickRadius.
func NewDragger() *Dragger {
	return &Dragger{PickRadius: DefaultPickRadius}
}

// Grab picks the point closest to world within PickRadius.
// On equal distances the later point wins. It reports whether a point was grabbed.
func (d *Dragger) Grab(list *polar.List, origin, world polar.Vec2) bool {
	d.grabbed = 0
	best := d.PickRadius * d.PickRadius

	for i := range list.Len() {
		p := list.At(i)
		if dsq := p.Cartesian(origin).DistanceSquared(world); dsq <= best {
			best = dsq
			d.grabbed = p.ID
		}
	}

	return d.grabbed != 0
}

// DragTo moves the grabbed point to world. It does nothing if no point is grabbed
// or the grabbed point is gone.
func (d *Dragger) DragTo(list *polar.List, origin, world polar.Vec2) {
	idx, ok := d.Grabbed(list)
	if !ok {
		return
	}

	list.At(idx).SetCartesian(origin, world)
}

// Release drops the grabbed point.
func (d *Dragger) Release() {
	d.grabbed = 0
}

// Grabbed returns the current index of the grabbed point.
func (d *Dragger) Grabbed(list *polar.List) (int, bool) {
	if d.grabbed == 0 {
		return -1, false
	}

	idx := list.IndexOf(d.grabbed)
	if idx < 0 {
		d.grabbed = 0
		return -1, false
	}

	return idx, true
}
