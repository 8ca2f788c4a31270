package editor

import "github.com/dshills/penstroke/internal/scene"

// State is the editor state seen by the gesture core.
type State interface {
	// ToolMode returns the current tool.
	ToolMode() ToolMode

	// Selection returns the current selection.
	Selection() Selection

	// SetSelection replaces the selection.
	SetSelection(s Selection)

	// EditPathFocus returns the edit-path focus, or nil outside edit-path
	// mode. Callers must not modify the returned record; clone it and call
	// SetEditPathFocus instead.
	EditPathFocus() *Focus

	// SetEditPathFocus replaces the focus. Nil leaves edit-path mode.
	SetEditPathFocus(f *Focus)

	// RotateInProgress reports the rotate flag set by the UI.
	RotateInProgress() bool

	// TransformInProgress reports the transform flag set by the UI.
	TransformInProgress() bool

	// Scene returns the scene store.
	Scene() scene.Store
}

// Change describes what a state mutation touched.
type Change uint8

const (
	// ChangeToolMode is reported by SetToolMode.
	ChangeToolMode Change = 1 << iota
	// ChangeSelection is reported by SetSelection.
	ChangeSelection
	// ChangeFocus is reported by SetEditPathFocus.
	ChangeFocus
	// ChangeFlags is reported by the rotate/transform setters.
	ChangeFlags
)

// ChangeCallback is called after the state changes.
type ChangeCallback func(c Change)
