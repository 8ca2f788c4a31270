// Package mouse provides pointer events for the gesture core.
//
// Event is a pointer event in scene coordinates. The constructors build
// the four actions the dispatcher understands:
//
//	ev := mouse.Press(geom.Pt(100, 50), key.ModShift)
//
// ClickDetector counts presses that land close together in time and space:
//
//	clicks := mouse.NewClickDetector(mouse.DefaultClickConfig())
//	clicks.Record(ev)
//	if clicks.IsDoubleClick() {
//	    // second press of a sequence
//	}
//
// Record must see every pointer event in order; only presses advance the
// sequence.
//
// DragTracker remembers where a press started and where the pointer is now,
// which is what most gestures need to compute deltas and rubber bands.
//
// Nothing here is synchronized. The gesture core runs on the host's event
// loop and owns these values exclusively.
package mouse
