package gesture

import (
	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"
)

// SelectDragHandleGesture selects a Bézier handle and drags it.
type SelectDragHandleGesture struct {
	*Passive
	env     Env
	segment int
	side    scene.HandleSide
	path    scene.ItemID
}

func newSelectDragHandle(v Variant, env Env) (Gesture, error) {
	hv := v.(SelectDragHandle)
	return &SelectDragHandleGesture{Passive: NewPassive(v), env: env, segment: hv.Segment, side: hv.Side}, nil
}

// OnMouseDown marks the handle as selected in the focus record.
func (g *SelectDragHandleGesture) OnMouseDown(ev mouse.Event) error {
	_ = g.Passive.OnMouseDown(ev)

	focus := g.env.State.EditPathFocus().Clone()
	if focus == nil {
		return ErrNoFocus
	}
	focus.SelectHandle(g.segment, g.side)
	g.path = focus.LayerID
	g.env.State.SetEditPathFocus(focus)
	return nil
}

// OnMouseDrag moves the handle by the pointer delta.
func (g *SelectDragHandleGesture) OnMouseDrag(ev mouse.Event) error {
	delta := g.drag.Update(ev.Point)
	if delta.IsZero() || g.env.Mutator == nil {
		return nil
	}
	return g.env.Mutator.MoveHandle(g.path, g.segment, g.side, delta)
}

// ToggleSegmentHandlesGesture shows both handles of a segment, or hides
// them when both are already shown.
type ToggleSegmentHandlesGesture struct {
	*Passive
	env     Env
	segment int
}

func newToggleSegmentHandles(v Variant, env Env) (Gesture, error) {
	tv := v.(ToggleSegmentHandles)
	return &ToggleSegmentHandlesGesture{Passive: NewPassive(v), env: env, segment: tv.Segment}, nil
}

// OnMouseDown toggles handle visibility.
func (g *ToggleSegmentHandlesGesture) OnMouseDown(ev mouse.Event) error {
	_ = g.Passive.OnMouseDown(ev)

	focus := g.env.State.EditPathFocus().Clone()
	if focus == nil {
		return ErrNoFocus
	}
	i := g.segment
	if focus.VisibleHandleIns.Has(i) && focus.VisibleHandleOuts.Has(i) {
		delete(focus.VisibleHandleIns, i)
		delete(focus.VisibleHandleOuts, i)
	} else {
		focus.VisibleHandleIns[i] = struct{}{}
		focus.VisibleHandleOuts[i] = struct{}{}
	}
	g.env.State.SetEditPathFocus(focus)
	return nil
}

// BatchSelectSegmentsGesture is a rubber-band anchor selection on the focus
// path.
type BatchSelectSegmentsGesture struct {
	*Passive
	env          Env
	clearOnClick bool
}

func newBatchSelectSegments(v Variant, env Env) (Gesture, error) {
	bv := v.(BatchSelectSegments)
	return &BatchSelectSegmentsGesture{
		Passive:      NewPassive(v),
		env:          env,
		clearOnClick: bv.ClearEditPathOnDraglessClick,
	}, nil
}

// OnMouseUp selects the anchors inside the band. Shift extends the segment
// selection. A release without a drag clears it, or leaves edit-path mode
// when the gesture was started by a miss.
func (g *BatchSelectSegmentsGesture) OnMouseUp(ev mouse.Event) error {
	_ = g.Passive.OnMouseUp(ev)

	state := g.env.State
	focus := state.EditPathFocus().Clone()
	if focus == nil {
		return ErrNoFocus
	}
	shift := ev.Modifiers.HasShift()

	if !g.drag.Dragged() {
		if g.clearOnClick {
			state.SetEditPathFocus(nil)
			g.env.Log().Debug("leave edit-path", "item", string(focus.LayerID))
			return nil
		}
		if !shift {
			focus.SelectedSegments = editor.IndexSet{}
			focus.ClearHandleSelection()
			state.SetEditPathFocus(focus)
		}
		return nil
	}

	if !shift {
		focus.SelectedSegments = editor.IndexSet{}
	}
	focus.ClearHandleSelection()
	if path, ok := state.Scene().Path(focus.LayerID); ok {
		band := g.drag.Rect()
		for i, seg := range path.Segments {
			if band.Contains(seg.Point) {
				focus.SelectedSegments[i] = struct{}{}
			}
		}
	}
	state.SetEditPathFocus(focus)
	return nil
}
