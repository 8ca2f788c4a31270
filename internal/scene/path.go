package scene

import "github.com/dshills/penstroke/internal/geom"

// HandleSide selects one of the two Bézier handles of a segment.
type HandleSide uint8

const (
	// HandleIn controls the curve arriving at the segment.
	HandleIn HandleSide = iota
	// HandleOut controls the curve leaving the segment.
	HandleOut
)

// String returns "in" or "out".
func (s HandleSide) String() string {
	if s == HandleOut {
		return "out"
	}
	return "in"
}

// Segment is an anchor point with optional handles. Handles are stored
// relative to the anchor; a zero handle means the curve is straight there.
type Segment struct {
	Point     geom.Point
	HandleIn  geom.Point
	HandleOut geom.Point
}

// Handle returns the absolute position of one handle.
func (s Segment) Handle(side HandleSide) geom.Point {
	if side == HandleOut {
		return s.Point.Add(s.HandleOut)
	}
	return s.Point.Add(s.HandleIn)
}

// Path is the geometry of a path item.
type Path struct {
	Segments []Segment
	Closed   bool
	Filled   bool
}

// Clone returns a deep copy.
func (p Path) Clone() Path {
	p.Segments = append([]Segment(nil), p.Segments...)
	return p
}

// SegmentCount returns the number of anchors.
func (p Path) SegmentCount() int {
	return len(p.Segments)
}

// CurveCount returns the number of curves between anchors. A closed path
// has a closing curve from the last anchor back to the first.
func (p Path) CurveCount() int {
	n := len(p.Segments)
	switch {
	case n < 2:
		return 0
	case p.Closed:
		return n
	default:
		return n - 1
	}
}

// Curve returns the cubic for curve i, which runs from segment i to
// segment i+1 (wrapping on closed paths).
func (p Path) Curve(i int) geom.Cubic {
	a := p.Segments[i]
	b := p.Segments[(i+1)%len(p.Segments)]
	return geom.Cubic{
		P0: a.Point,
		P1: a.Handle(HandleOut),
		P2: b.Handle(HandleIn),
		P3: b.Point,
	}
}

// IsEndpoint reports whether segment i is the first or last anchor of an
// open path.
func (p Path) IsEndpoint(i int) bool {
	if p.Closed || len(p.Segments) == 0 {
		return false
	}
	return i == 0 || i == len(p.Segments)-1
}

// Bounds returns the box around every anchor and handle.
func (p Path) Bounds() geom.Rect {
	r := geom.EmptyRect
	for _, s := range p.Segments {
		r = r.Union(geom.RectFromPoints(s.Point, s.Point))
		r = r.Union(geom.RectFromPoints(s.Handle(HandleIn), s.Handle(HandleOut)))
	}
	return r
}

// Translate moves every anchor by d.
func (p *Path) Translate(d geom.Point) {
	for i := range p.Segments {
		p.Segments[i].Point = p.Segments[i].Point.Add(d)
	}
}
