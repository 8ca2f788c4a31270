package gesture

import (
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/mouse"
)

// HoverGesture tracks what is under the pointer while no other gesture owns
// the stream.
type HoverGesture struct {
	*Passive
	env     Env
	hovered hittest.Result
}

func newHover(v Variant, env Env) (Gesture, error) {
	return &HoverGesture{Passive: NewPassive(v), env: env}, nil
}

// Hovered returns the last hover hit, or a miss.
func (h *HoverGesture) Hovered() hittest.Result {
	return h.hovered
}

// OnMouseMove hit-tests the focus path in edit-path mode and the scene
// otherwise.
func (h *HoverGesture) OnMouseMove(ev mouse.Event) error {
	h.hovered = h.probe(ev)
	return nil
}

func (h *HoverGesture) probe(ev mouse.Event) hittest.Result {
	state, oracle := h.env.State, h.env.Oracle

	if focus := state.EditPathFocus(); focus != nil {
		if focus.LayerID == "" {
			return hittest.Miss
		}
		if r := oracle.PathSegments(ev.Point, focus.LayerID); r.Hit() {
			return r
		}
		return oracle.PathBody(ev.Point, focus.LayerID, hittest.Probe{Fill: true, Stroke: true, Curves: true})
	}

	sel := state.Selection()
	if !sel.Empty() {
		if r := oracle.SelectionBounds(ev.Point, sel.IDs()); r.Hit() {
			return r
		}
	}
	if hits := oracle.Items(ev.Point, hittest.ItemQuery{}); len(hits) > 0 {
		return hits[0]
	}
	return hittest.Miss
}
