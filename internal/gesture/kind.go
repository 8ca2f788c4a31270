package gesture

import (
	"fmt"
	"strings"
)

// Kind identifies a gesture variant.
type Kind uint8

const (
	KindHover Kind = iota
	KindEllipseCreate
	KindRectangleCreate
	KindPencilCreate
	KindBatchSelectItems
	KindSelectDragCloneItems
	KindDeselectItem
	KindEditPath
	KindRotateItems
	KindScaleItems
	KindTransformPaths
	KindSelectDragHandle
	KindToggleSegmentHandles
	KindSelectDragDrawSegments
	KindMouldCurve
	KindBatchSelectSegments

	kindCount
)

var kindNames = [kindCount]string{
	KindHover:                  "hover",
	KindEllipseCreate:          "ellipse-create",
	KindRectangleCreate:        "rectangle-create",
	KindPencilCreate:           "pencil-create",
	KindBatchSelectItems:       "batch-select-items",
	KindSelectDragCloneItems:   "select-drag-clone-items",
	KindDeselectItem:           "deselect-item",
	KindEditPath:               "edit-path",
	KindRotateItems:            "rotate-items",
	KindScaleItems:             "scale-items",
	KindTransformPaths:         "transform-paths",
	KindSelectDragHandle:       "select-drag-handle",
	KindToggleSegmentHandles:   "toggle-segment-handles",
	KindSelectDragDrawSegments: "select-drag-draw-segments",
	KindMouldCurve:             "mould-curve",
	KindBatchSelectSegments:    "batch-select-segments",
}

// String returns the kebab-case name used in configuration.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind parses a kind name as written by String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
