// Package gesture defines the behaviour unit that owns one press-to-release
// interaction cycle, the closed set of gesture variants the selector can
// choose, and a registry that turns a variant into a running Gesture.
//
// # Variants
//
// A Variant is a value naming which gesture was chosen and what it is bound
// to (an item, a segment index, a curve and parametric time). The set is
// sealed: only this package can add variants, so a type switch over them is
// exhaustive.
//
//	switch v := variant.(type) {
//	case gesture.MouldCurve:
//	    fmt.Println(v.Curve, v.Time)
//	case gesture.SelectDragHandle:
//	    fmt.Println(v.Segment, v.Side)
//	}
//
// # Lifecycle
//
// A Gesture receives OnMouseDown once, right after construction, then zero
// or more OnMouseDrag and OnMouseMove calls, then exactly one OnMouseUp,
// after which it is discarded. Key events go to whichever gesture is
// current, including Hover while the dispatcher is idle.
//
// # Registry
//
// Registry maps each Kind to a Constructor. DefaultRegistry supplies the
// built-in selection gestures; hosts register constructors for the rest
// (creation, rotate, scale, transform, mould, draw segments). Kinds with no
// constructor get a Passive gesture.
package gesture
