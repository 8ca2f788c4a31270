package tool

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is wrapped by every fatal consistency fault. After one is
	// returned the dispatcher rejects all further events.
	ErrInvariant = errors.New("gesture core invariant violated")

	// ErrGestureActive is returned when a press arrives while a gesture
	// already owns the event stream.
	ErrGestureActive = fmt.Errorf("%w: press while a gesture is active", ErrInvariant)

	// ErrFocusUnresolved is returned when the edit-path focus names no path.
	ErrFocusUnresolved = fmt.Errorf("%w: edit-path focus has no path", ErrInvariant)

	// ErrFaulted is returned for events received after a fatal fault.
	ErrFaulted = errors.New("dispatcher faulted")

	// ErrUnknownPolicy is returned when parsing an unknown hit policy name.
	ErrUnknownPolicy = errors.New("unknown hit policy")
)
