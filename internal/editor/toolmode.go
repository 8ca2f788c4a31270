package editor

import (
	"fmt"
	"strings"
)

// ToolMode is the active drawing tool.
type ToolMode uint8

const (
	// ToolSelection selects, transforms and edits existing items.
	ToolSelection ToolMode = iota
	// ToolEllipse draws ellipses.
	ToolEllipse
	// ToolRectangle draws rectangles.
	ToolRectangle
	// ToolPencil draws free-hand paths.
	ToolPencil
)

// String returns the lowercase mode name.
func (m ToolMode) String() string {
	switch m {
	case ToolSelection:
		return "selection"
	case ToolEllipse:
		return "ellipse"
	case ToolRectangle:
		return "rectangle"
	case ToolPencil:
		return "pencil"
	default:
		return fmt.Sprintf("ToolMode(%d)", m)
	}
}

// IsCreation returns true for the shape-creation modes.
func (m ToolMode) IsCreation() bool {
	return m == ToolEllipse || m == ToolRectangle || m == ToolPencil
}

// ParseToolMode parses a mode name (case-insensitive).
func ParseToolMode(s string) (ToolMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "selection", "select":
		return ToolSelection, nil
	case "ellipse":
		return ToolEllipse, nil
	case "rectangle", "rect":
		return ToolRectangle, nil
	case "pencil":
		return ToolPencil, nil
	default:
		return ToolSelection, fmt.Errorf("unknown tool mode %q", s)
	}
}
