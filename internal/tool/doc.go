// Package tool decides which gesture owns each press and drives the
// Idle/Active state machine around it.
//
// Selector is the pure decision procedure: given a press, whether it is a
// double click, the editor state and the hit-test oracle, it returns a
// gesture.Variant. It only mutates editor state in one place, when edit-path
// mode is active with no path yet, in which case it creates the path first.
//
// Dispatcher feeds raw events through a click detector, asks the selector
// for a gesture on every press, forwards drags and moves to the active
// gesture and returns to Hover on every release.
//
//	d := tool.NewDispatcher(state, oracle, tool.WithLogger(logger))
//	if err := d.HandleMouse(ev); errors.Is(err, tool.ErrInvariant) {
//	    // the dispatcher is now faulted and rejects further events
//	}
package tool
