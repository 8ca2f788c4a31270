package hittest

import (
	"fmt"

	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/scene"
)

// Kind tags a hit-test result.
type Kind uint8

const (
	// KindNone means nothing was hit.
	KindNone Kind = iota
	// KindItem is a scene item; ItemID is set.
	KindItem
	// KindBounds is a selection-bounds handle; SegmentIndex is the handle.
	KindBounds
	// KindSegment is a path anchor; ItemID and SegmentIndex are set.
	KindSegment
	// KindHandleIn is a segment's incoming handle.
	KindHandleIn
	// KindHandleOut is a segment's outgoing handle.
	KindHandleOut
	// KindCurve is a location on a path curve; CurveIndex and Time are set.
	KindCurve
	// KindFill is the inside of a filled path.
	KindFill
	// KindStroke is the outline of a path without curve localization.
	KindStroke
)

// String returns the tag name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindItem:
		return "item"
	case KindBounds:
		return "bounds"
	case KindSegment:
		return "segment"
	case KindHandleIn:
		return "handle-in"
	case KindHandleOut:
		return "handle-out"
	case KindCurve:
		return "curve"
	case KindFill:
		return "fill"
	case KindStroke:
		return "stroke"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// BoundsItemID is the ItemID reported for selection-bounds handles.
const BoundsItemID scene.ItemID = "selection-bounds"

// Result is the outcome of one hit test.
type Result struct {
	Kind Kind

	// ItemID is the hit item (or the path for segment, handle and body hits).
	ItemID scene.ItemID

	// SegmentIndex is the anchor or bounds handle index.
	SegmentIndex int

	// CurveIndex and Time locate a curve hit.
	CurveIndex int
	Time       float64

	// Point is where the hit geometry is, which may differ from the query
	// point by up to the tolerance.
	Point geom.Point
}

// Miss is the zero result.
var Miss = Result{}

// Hit returns true unless the result is a miss.
func (r Result) Hit() bool {
	return r.Kind != KindNone
}

// IsHandle returns true for handle-in and handle-out hits.
func (r Result) IsHandle() bool {
	return r.Kind == KindHandleIn || r.Kind == KindHandleOut
}

// Side returns the handle side of a handle hit.
func (r Result) Side() scene.HandleSide {
	if r.Kind == KindHandleOut {
		return scene.HandleOut
	}
	return scene.HandleIn
}

func (r Result) String() string {
	switch r.Kind {
	case KindNone:
		return "miss"
	case KindItem:
		return fmt.Sprintf("item %s", r.ItemID)
	case KindCurve:
		return fmt.Sprintf("curve %d@%.3f of %s", r.CurveIndex, r.Time, r.ItemID)
	case KindFill, KindStroke:
		return fmt.Sprintf("%s of %s", r.Kind, r.ItemID)
	default:
		return fmt.Sprintf("%s %d of %s", r.Kind, r.SegmentIndex, r.ItemID)
	}
}
