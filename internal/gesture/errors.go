package gesture

import "errors"

var (
	// ErrUnknownKind is returned when parsing an unknown gesture name.
	ErrUnknownKind = errors.New("unknown gesture kind")

	// ErrNoFocus is returned by edit-path gestures started outside
	// edit-path mode.
	ErrNoFocus = errors.New("no edit-path focus")
)
