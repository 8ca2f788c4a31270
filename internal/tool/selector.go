package tool

import (
	"fmt"

	"github.com/dshills/penstroke/internal/editor"
	"github.com/dshills/penstroke/internal/gesture"
	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/input/mouse"
	"github.com/dshills/penstroke/internal/scene"
)

// bodyProbe is the broad first pass over a path body.
var bodyProbe = hittest.Probe{Fill: true, Stroke: true, Curves: true}

// curveProbe is the curve-precision second pass.
var curveProbe = hittest.Probe{Curves: true}

// Selector chooses the gesture for a press.
type Selector struct {
	state  editor.State
	oracle hittest.Oracle
	policy HitPolicy
}

// NewSelector creates a selector. A nil policy means PreferUnselected.
func NewSelector(state editor.State, oracle hittest.Oracle, policy HitPolicy) *Selector {
	if policy == nil {
		policy = PreferUnselected
	}
	return &Selector{state: state, oracle: oracle, policy: policy}
}

// SetPolicy replaces the hit policy. A nil policy means PreferUnselected.
func (s *Selector) SetPolicy(policy HitPolicy) {
	if policy == nil {
		policy = PreferUnselected
	}
	s.policy = policy
}

// Select returns the gesture variant for a press. Creation modes never
// consult the oracle. An error means an invariant fault or a scene store
// failure; the decision itself is total.
func (s *Selector) Select(ev mouse.Event, doubleClick bool) (gesture.Variant, error) {
	switch s.state.ToolMode() {
	case editor.ToolEllipse:
		return gesture.EllipseCreate{}, nil
	case editor.ToolRectangle:
		return gesture.RectangleCreate{}, nil
	case editor.ToolPencil:
		return gesture.PencilCreate{}, nil
	}

	if focus := s.state.EditPathFocus(); focus != nil {
		return s.selectEditPath(ev, doubleClick, focus)
	}
	return s.selectItems(ev, doubleClick), nil
}

func (s *Selector) selectEditPath(ev mouse.Event, doubleClick bool, focus *editor.Focus) (gesture.Variant, error) {
	store := s.state.Scene()

	if focus.LayerID == "" {
		id, err := store.CreatePath()
		if err != nil {
			return nil, fmt.Errorf("create edit path: %w", err)
		}
		focus = focus.Clone()
		focus.LayerID = id
		s.state.SetSelection(editor.NewSelection(id))
		s.state.SetEditPathFocus(focus)
	}

	path, ok := store.Path(focus.LayerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFocusUnresolved, focus.LayerID)
	}

	seg := s.oracle.PathSegments(ev.Point, focus.LayerID)
	switch seg.Kind {
	case hittest.KindHandleIn, hittest.KindHandleOut:
		return gesture.SelectDragHandle{Segment: seg.SegmentIndex, Side: seg.Side()}, nil
	case hittest.KindSegment:
		if doubleClick {
			return gesture.ToggleSegmentHandles{Segment: seg.SegmentIndex}, nil
		}
		return gesture.SelectDragDrawSegments{Entry: gesture.EntryHitSegment, Segment: seg.SegmentIndex}, nil
	}

	body := s.oracle.PathBody(ev.Point, focus.LayerID, bodyProbe)
	if !body.Hit() && path.CurveCount() > 0 {
		body = s.oracle.PathBody(ev.Point, focus.LayerID, curveProbe)
	}
	switch body.Kind {
	case hittest.KindNone:
		// total miss, handled below
	case hittest.KindCurve:
		if ev.Modifiers.HasCommand() {
			return gesture.MouldCurve{Curve: body.CurveIndex, Time: body.Time}, nil
		}
		return gesture.SelectDragDrawSegments{Entry: gesture.EntryHitCurve, Curve: body.CurveIndex, Time: body.Time}, nil
	default:
		return gesture.BatchSelectSegments{ClearEditPathOnDraglessClick: false}, nil
	}

	if path.SegmentCount() == 0 {
		return gesture.SelectDragDrawSegments{Entry: gesture.EntryMiss}, nil
	}
	if !path.Closed {
		if i, ok := focus.SelectedSegments.Only(); ok && path.IsEndpoint(i) {
			return gesture.SelectDragDrawSegments{Entry: gesture.EntryMiss}, nil
		}
	}
	return gesture.BatchSelectSegments{ClearEditPathOnDraglessClick: true}, nil
}

// selectItems resolves a press in selection mode: selection bound handles
// first, then the item under the pointer.
//
// A double click descends one level. On a container it queries the
// container's own children, not the layer's, with the container excluded;
// an empty container or no deeper hit starts a band selection. On a path it
// enters edit-path mode. Other shapes have no path geometry to edit and are
// selected as on a single click.
func (s *Selector) selectItems(ev mouse.Event, doubleClick bool) gesture.Variant {
	sel := s.state.Selection()

	if !sel.Empty() {
		if hit := s.oracle.SelectionBounds(ev.Point, sel.IDs()); hit.Hit() {
			switch {
			case s.state.RotateInProgress():
				return gesture.RotateItems{Hit: hit}
			case s.state.TransformInProgress():
				return gesture.TransformPaths{Hit: hit}
			default:
				return gesture.ScaleItems{Hit: hit}
			}
		}
	}

	hit, ok := s.policy.Pick(s.oracle.Items(ev.Point, hittest.ItemQuery{}), sel)
	if !ok {
		return gesture.BatchSelectItems{}
	}

	if doubleClick {
		if v, ok := s.descend(ev, hit.ItemID, sel); ok {
			return v
		}
	}

	if sel.Contains(hit.ItemID) && ev.Modifiers.HasShift() && sel.Len() > 1 {
		return gesture.DeselectItem{Item: hit.ItemID}
	}
	return gesture.SelectDragCloneItems{Item: hit.ItemID}
}

// descend picks the double-click variant for a hit item. It returns false
// when the press should be treated as a single click.
func (s *Selector) descend(ev mouse.Event, id scene.ItemID, sel editor.Selection) (gesture.Variant, bool) {
	item, found := s.state.Scene().Item(id)
	if !found {
		return nil, false
	}

	switch {
	case item.Kind == scene.KindPath:
		return gesture.EditPath{Item: id}, true
	case !item.Kind.IsContainer():
		return nil, false
	case !item.HasChildren():
		return gesture.BatchSelectItems{}, true
	}

	deeper := s.oracle.Items(ev.Point, hittest.ItemQuery{
		Scope:   id,
		Exclude: []scene.ItemID{id},
	})
	if d, ok := s.policy.Pick(deeper, sel); ok {
		return gesture.SelectDragCloneItems{Item: d.ItemID}, true
	}
	return gesture.BatchSelectItems{}, true
}
