package mouse

import (
	"fmt"
	"time"

	"github.com/dshills/penstroke/internal/geom"
	"github.com/dshills/penstroke/internal/input/key"
)

// Button is a pointer button.
type Button uint8

const (
	// ButtonNone is a buttonless event such as a hover move.
	ButtonNone Button = iota
	// ButtonLeft is the primary button; every gesture is driven by it.
	ButtonLeft
	ButtonMiddle
	ButtonRight

	buttonCount
)

var buttonNames = [buttonCount]string{"none", "left", "middle", "right"}

// String returns the button name.
func (b Button) String() string {
	if b < buttonCount {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", b)
}

// Action is what happened to the pointer.
type Action uint8

const (
	// ActionNone is the zero action.
	ActionNone Action = iota
	// ActionPress starts a gesture.
	ActionPress
	// ActionRelease ends a gesture.
	ActionRelease
	// ActionMove is motion with no button held.
	ActionMove
	// ActionDrag is motion with the button held.
	ActionDrag

	actionCount
)

var actionNames = [actionCount]string{"none", "press", "release", "move", "drag"}

// String returns the action name.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// Event is a pointer event in scene coordinates.
type Event struct {
	Point     geom.Point
	Button    Button
	Modifiers key.Modifier
	Action    Action

	// Timestamp feeds double-click detection. Zero means "now".
	Timestamp time.Time
}

func newEvent(a Action, b Button, p geom.Point, mods key.Modifier) Event {
	return Event{Point: p, Button: b, Modifiers: mods, Action: a, Timestamp: time.Now()}
}

// Press builds a primary-button press at p.
func Press(p geom.Point, mods key.Modifier) Event {
	return newEvent(ActionPress, ButtonLeft, p, mods)
}

// Drag builds a primary-button drag to p.
func Drag(p geom.Point, mods key.Modifier) Event {
	return newEvent(ActionDrag, ButtonLeft, p, mods)
}

// Release builds a primary-button release at p.
func Release(p geom.Point, mods key.Modifier) Event {
	return newEvent(ActionRelease, ButtonLeft, p, mods)
}

// Move builds a buttonless move to p.
func Move(p geom.Point, mods key.Modifier) Event {
	return newEvent(ActionMove, ButtonNone, p, mods)
}

// At returns a copy of the event stamped with ts.
func (e Event) At(ts time.Time) Event {
	e.Timestamp = ts
	return e
}
