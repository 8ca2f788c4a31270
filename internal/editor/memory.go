package editor

import (
	"github.com/dshills/penstroke/internal/scene"
)

// Memory is an in-memory State.
//
// Memory is not synchronized; it belongs to the event loop.
type Memory struct {
	store scene.Store

	mode         ToolMode
	selection    Selection
	focus        *Focus
	rotating     bool
	transforming bool

	callbacks []ChangeCallback
}

// NewMemory creates state over a scene store in selection mode.
func NewMemory(store scene.Store) *Memory {
	return &Memory{store: store}
}

// ToolMode returns the current tool.
func (m *Memory) ToolMode() ToolMode { return m.mode }

// SetToolMode switches the tool.
func (m *Memory) SetToolMode(mode ToolMode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	m.notify(ChangeToolMode)
}

// Selection returns the current selection.
func (m *Memory) Selection() Selection { return m.selection }

// SetSelection replaces the selection.
func (m *Memory) SetSelection(s Selection) {
	if m.selection.Equal(s) {
		return
	}
	m.selection = s
	m.notify(ChangeSelection)
}

// EditPathFocus returns the focus record, or nil.
func (m *Memory) EditPathFocus() *Focus { return m.focus }

// SetEditPathFocus stores a focus record; nil leaves edit-path mode.
func (m *Memory) SetEditPathFocus(f *Focus) {
	m.focus = f
	m.notify(ChangeFocus)
}

// RotateInProgress reports the rotate flag.
func (m *Memory) RotateInProgress() bool { return m.rotating }

// SetRotateInProgress sets the rotate flag.
func (m *Memory) SetRotateInProgress(v bool) {
	m.rotating = v
	m.notify(ChangeFlags)
}

// TransformInProgress reports the transform flag.
func (m *Memory) TransformInProgress() bool { return m.transforming }

// SetTransformInProgress sets the transform flag.
func (m *Memory) SetTransformInProgress(v bool) {
	m.transforming = v
	m.notify(ChangeFlags)
}

// Scene returns the scene store.
func (m *Memory) Scene() scene.Store { return m.store }

// OnChange registers a callback for state changes.
// Returns a function to unregister the callback.
func (m *Memory) OnChange(cb ChangeCallback) func() {
	m.callbacks = append(m.callbacks, cb)
	index := len(m.callbacks) - 1

	return func() {
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

func (m *Memory) notify(c Change) {
	for _, cb := range m.callbacks {
		if cb != nil {
			cb(c)
		}
	}
}
