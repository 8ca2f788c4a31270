package gesture

import (
	"fmt"

	"github.com/dshills/penstroke/internal/hittest"
	"github.com/dshills/penstroke/internal/scene"
)

// Variant is the selector's decision: which gesture, bound to what.
type Variant interface {
	// Kind returns the variant's tag.
	Kind() Kind

	sealed()
}

// Hover is the idle gesture.
type Hover struct{}

// EllipseCreate draws a new ellipse.
type EllipseCreate struct{}

// RectangleCreate draws a new rectangle.
type RectangleCreate struct{}

// PencilCreate draws a free-hand path.
type PencilCreate struct{}

// BatchSelectItems is a rubber-band item selection.
type BatchSelectItems struct{}

// SelectDragCloneItems selects an item and then moves or clones the selection.
type SelectDragCloneItems struct {
	Item scene.ItemID
}

// DeselectItem removes one item from a multi-item selection.
type DeselectItem struct {
	Item scene.ItemID
}

// EditPath enters edit-path mode on a leaf item.
type EditPath struct {
	Item scene.ItemID
}

// RotateItems rotates the selection around its bounds.
type RotateItems struct {
	Hit hittest.Result
}

// ScaleItems scales the selection from a bounds handle.
type ScaleItems struct {
	Hit hittest.Result
}

// TransformPaths applies a free transform from a bounds handle.
type TransformPaths struct {
	Hit hittest.Result
}

// SelectDragHandle selects and drags one Bézier handle of the focus path.
type SelectDragHandle struct {
	Segment int
	Side    scene.HandleSide
}

// ToggleSegmentHandles shows or hides both handles of a segment.
type ToggleSegmentHandles struct {
	Segment int
}

// DrawEntry says how a SelectDragDrawSegments gesture was entered.
type DrawEntry uint8

const (
	// EntryHitSegment starts on an existing anchor.
	EntryHitSegment DrawEntry = iota
	// EntryHitCurve inserts a new anchor on a curve.
	EntryHitCurve
	// EntryMiss starts or extends a path from empty space.
	EntryMiss
)

// String returns the entry name.
func (e DrawEntry) String() string {
	switch e {
	case EntryHitSegment:
		return "hit-segment"
	case EntryHitCurve:
		return "hit-curve"
	case EntryMiss:
		return "miss"
	default:
		return fmt.Sprintf("DrawEntry(%d)", e)
	}
}

// SelectDragDrawSegments selects, drags or draws segments of the focus path.
// Segment is meaningful for EntryHitSegment; Curve and Time for EntryHitCurve.
type SelectDragDrawSegments struct {
	Entry   DrawEntry
	Segment int
	Curve   int
	Time    float64
}

// MouldCurve reshapes a curve by dragging the point at Time.
type MouldCurve struct {
	Curve int
	Time  float64
}

// BatchSelectSegments is a rubber-band segment selection in edit-path mode.
type BatchSelectSegments struct {
	// ClearEditPathOnDraglessClick leaves edit-path mode when the press is
	// released without moving.
	ClearEditPathOnDraglessClick bool
}

func (Hover) Kind() Kind                  { return KindHover }
func (EllipseCreate) Kind() Kind          { return KindEllipseCreate }
func (RectangleCreate) Kind() Kind        { return KindRectangleCreate }
func (PencilCreate) Kind() Kind           { return KindPencilCreate }
func (BatchSelectItems) Kind() Kind       { return KindBatchSelectItems }
func (SelectDragCloneItems) Kind() Kind   { return KindSelectDragCloneItems }
func (DeselectItem) Kind() Kind           { return KindDeselectItem }
func (EditPath) Kind() Kind               { return KindEditPath }
func (RotateItems) Kind() Kind            { return KindRotateItems }
func (ScaleItems) Kind() Kind             { return KindScaleItems }
func (TransformPaths) Kind() Kind         { return KindTransformPaths }
func (SelectDragHandle) Kind() Kind       { return KindSelectDragHandle }
func (ToggleSegmentHandles) Kind() Kind   { return KindToggleSegmentHandles }
func (SelectDragDrawSegments) Kind() Kind { return KindSelectDragDrawSegments }
func (MouldCurve) Kind() Kind             { return KindMouldCurve }
func (BatchSelectSegments) Kind() Kind    { return KindBatchSelectSegments }

func (Hover) sealed()                  {}
func (EllipseCreate) sealed()          {}
func (RectangleCreate) sealed()        {}
func (PencilCreate) sealed()           {}
func (BatchSelectItems) sealed()       {}
func (SelectDragCloneItems) sealed()   {}
func (DeselectItem) sealed()           {}
func (EditPath) sealed()               {}
func (RotateItems) sealed()            {}
func (ScaleItems) sealed()             {}
func (TransformPaths) sealed()         {}
func (SelectDragHandle) sealed()       {}
func (ToggleSegmentHandles) sealed()   {}
func (SelectDragDrawSegments) sealed() {}
func (MouldCurve) sealed()             {}
func (BatchSelectSegments) sealed()    {}
