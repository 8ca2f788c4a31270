// Package editor holds the mutable editor state the gesture core reads and
// writes: the tool mode, the selection, the edit-path focus and the
// transform flags set by the UI chrome.
//
// The gesture core talks to State, never to a concrete type, so tests and
// hosts can substitute their own. Memory is the reference implementation.
//
// # Edit-Path Focus
//
// A non-nil Focus means the editor is in edit-path mode. Its LayerID is the
// path being edited; an empty LayerID means the next press starts a brand
// new path. The selector clones a focus before changing it and stores the
// clone back with SetEditPathFocus.
package editor
