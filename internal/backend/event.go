package backend

import (
	"github.com/dshills/penstroke/internal/input/key"
	"github.com/dshills/penstroke/internal/input/mouse"
)

// EventType identifies the type of event.
type EventType uint8

const (
	// EventNone is an event the dispatcher does not care about.
	EventNone EventType = iota
	// EventKey is a key press.
	EventKey
	// EventMouse is a pointer event.
	EventMouse
	// EventResize is a terminal resize.
	EventResize
	// EventInterrupt carries a value posted with PostInterrupt.
	EventInterrupt
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventMouse:
		return "mouse"
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// Event is a converted terminal event. Only the fields for Type are set.
type Event struct {
	Type EventType

	Key   key.Event
	Mouse mouse.Event

	Width, Height int

	Data any
}
