package key

// Action distinguishes key presses from releases.
type Action uint8

const (
	// ActionPress is a key going down or repeating.
	ActionPress Action = iota
	// ActionRelease is a key coming up.
	ActionRelease
)

// String returns "press" or "release".
func (a Action) String() string {
	if a == ActionRelease {
		return "release"
	}
	return "press"
}

// Event is one key press or release.
type Event struct {
	Key Key

	// Rune is the character of a KeyRune event.
	Rune rune

	Modifiers Modifier
	Action    Action
}

// NewRuneEvent returns a press of a character key.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent returns a press of a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Released returns a copy of the event marked as a release.
func (e Event) Released() Event {
	e.Action = ActionRelease
	return e
}

// IsRune reports whether the event carries a character.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsEscape reports an unmodified Escape, the cancel key.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape && e.Modifiers == ModNone
}

// String returns the chord, e.g. "a", "Ctrl+z" or "Shift+Up". Shift is
// implied by the character for runes and left out.
func (e Event) String() string {
	mods := e.Modifiers
	name := e.Key.String()
	if e.Key == KeyRune {
		mods = mods.Without(ModShift)
		name = string(e.Rune)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
