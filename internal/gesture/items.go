package gesture

import (
	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"
)

// BatchSelectItemsGesture is a rubber-band item selection.
type BatchSelectItemsGesture struct {
	*Passive
	env       Env
	cancelled bool
}

func newBatchSelectItems(v Variant, env Env) (Gesture, error) {
	return &BatchSelectItemsGesture{Passive: NewPassive(v), env: env}, nil
}

// Band returns the current selection rectangle.
func (g *BatchSelectItemsGesture) Band() geom.Rect {
	return g.drag.Rect()
}

// OnMouseUp selects the items meeting the band. Shift extends the current
// selection. A release without a drag clears the selection unless shift is
// held.
func (g *BatchSelectItemsGesture) OnMouseUp(ev mouse.Event) error {
	_ = g.Passive.OnMouseUp(ev)
	if g.cancelled {
		return nil
	}

	state := g.env.State
	shift := ev.Modifiers.HasShift()

	if !g.drag.Dragged() {
		if !shift {
			state.SetSelection(editor.Selection{})
		}
		return nil
	}

	hits := g.env.Oracle.Intersecting(g.drag.Rect())
	sel := editor.NewSelection(hits...)
	if shift {
		sel = state.Selection()
		for _, id := range hits {
			sel = sel.With(id)
		}
	}
	state.SetSelection(sel)
	g.env.Log().Debug("band select", "rect", g.drag.Rect().String(), "items", len(hits))
	return nil
}

// OnKeyDown cancels the band on escape.
func (g *BatchSelectItemsGesture) OnKeyDown(ev key.Event) error {
	if ev.IsEscape() {
		g.cancelled = true
	}
	return nil
}

// SelectDragCloneItemsGesture selects an item, then moves the selection, or
// clones it first when alt is held at the start of the drag.
type SelectDragCloneItemsGesture struct {
	*Passive
	env         Env
	item        scene.ItemID
	wasSelected bool
	cloned      bool
}

func newSelectDragCloneItems(v Variant, env Env) (Gesture, error) {
	sv := v.(SelectDragCloneItems)
	return &SelectDragCloneItemsGesture{Passive: NewPassive(v), env: env, item: sv.Item}, nil
}

// Cloned reports whether the drag cloned the selection.
func (g *SelectDragCloneItemsGesture) Cloned() bool {
	return g.cloned
}

// OnMouseDown selects the item. Shift adds it to the selection; otherwise
// an unselected item replaces the selection.
func (g *SelectDragCloneItemsGesture) OnMouseDown(ev mouse.Event) error {
	_ = g.Passive.OnMouseDown(ev)

	state := g.env.State
	sel := state.Selection()
	g.wasSelected = sel.Contains(g.item)

	switch {
	case ev.Modifiers.HasShift():
		state.SetSelection(sel.With(g.item))
	case !g.wasSelected:
		state.SetSelection(editor.NewSelection(g.item))
	}
	return nil
}

// OnMouseDrag moves the selection by the pointer delta.
func (g *SelectDragCloneItemsGesture) OnMouseDrag(ev mouse.Event) error {
	first := !g.drag.Dragged()
	delta := g.drag.Update(ev.Point)
	if delta.IsZero() || g.env.Mutator == nil {
		return nil
	}

	state := g.env.State
	if first && ev.Modifiers.HasAlt() {
		clones, err := g.env.Mutator.Clone(state.Selection().IDs())
		if err != nil {
			return err
		}
		state.SetSelection(editor.NewSelection(clones...))
		g.cloned = true
		g.env.Log().Debug("cloned selection", "items", len(clones))
	}
	return g.env.Mutator.Translate(state.Selection().IDs(), delta)
}

// OnMouseUp narrows a multi-item selection to the pressed item when the
// press was a plain click on an already selected item.
func (g *SelectDragCloneItemsGesture) OnMouseUp(ev mouse.Event) error {
	dragged := g.drag.Dragged()
	g.drag.End()

	state := g.env.State
	if !dragged && g.wasSelected && !ev.Modifiers.HasShift() && state.Selection().Len() > 1 {
		state.SetSelection(editor.NewSelection(g.item))
	}
	return nil
}

// DeselectItemGesture removes one item from the selection on release.
type DeselectItemGesture struct {
	*Passive
	env  Env
	item scene.ItemID
}

func newDeselectItem(v Variant, env Env) (Gesture, error) {
	dv := v.(DeselectItem)
	return &DeselectItemGesture{Passive: NewPassive(v), env: env, item: dv.Item}, nil
}

// OnMouseUp removes the item from the selection.
func (g *DeselectItemGesture) OnMouseUp(ev mouse.Event) error {
	_ = g.Passive.OnMouseUp(ev)
	g.env.State.SetSelection(g.env.State.Selection().Without(g.item))
	return nil
}

// EditPathGesture enters edit-path mode on an item.
type EditPathGesture struct {
	*Passive
	env  Env
	item scene.ItemID
}

func newEditPath(v Variant, env Env) (Gesture, error) {
	ev := v.(EditPath)
	return &EditPathGesture{Passive: NewPassive(v), env: env, item: ev.Item}, nil
}

// OnMouseDown focuses the item and makes it the only selected item.
func (g *EditPathGesture) OnMouseDown(ev mouse.Event) error {
	_ = g.Passive.OnMouseDown(ev)
	g.env.State.SetEditPathFocus(editor.NewFocus(g.item))
	g.env.State.SetSelection(editor.NewSelection(g.item))
	g.env.Log().Debug("enter edit-path", "item", string(g.item))
	return nil
}
