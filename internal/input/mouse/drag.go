package mouse

import "github.com/dshills/penstroke/internal/geom"

// DragTracker tracks the state of one press-drag-release cycle.
type DragTracker struct {
	active  bool
	dragged bool

	start   geom.Point
	last    geom.Point
	current geom.Point
}

// Start begins tracking at the press position.
func (t *DragTracker) Start(p geom.Point) {
	t.active = true
	t.dragged = false
	t.start = p
	t.last = p
	t.current = p
}

// Update records a new pointer position and returns the delta from the
// previous one. It is a no-op when no press is being tracked.
func (t *DragTracker) Update(p geom.Point) geom.Point {
	if !t.active {
		return geom.Point{}
	}
	t.last = t.current
	t.current = p
	if !p.Sub(t.start).IsZero() {
		t.dragged = true
	}
	return t.current.Sub(t.last)
}

// End stops tracking. Start, current position and the dragged flag are kept
// so a release handler can still read them.
func (t *DragTracker) End() {
	t.active = false
}

// Active returns true between Start and End.
func (t *DragTracker) Active() bool {
	return t.active
}

// Dragged returns true once the pointer has left the press position.
func (t *DragTracker) Dragged() bool {
	return t.dragged
}

// StartPoint returns where the press happened.
func (t *DragTracker) StartPoint() geom.Point {
	return t.start
}

// CurrentPoint returns the latest pointer position.
func (t *DragTracker) CurrentPoint() geom.Point {
	return t.current
}

// Delta returns the total displacement since the press.
func (t *DragTracker) Delta() geom.Point {
	return t.current.Sub(t.start)
}

// Rect returns the rubber band spanned by the press and the current point.
func (t *DragTracker) Rect() geom.Rect {
	return geom.RectFromPoints(t.start, t.current)
}
