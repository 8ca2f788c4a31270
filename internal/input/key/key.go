package key

import "fmt"

// Key identifies a keyboard key. Character keys are KeyRune with the
// character in Event.Rune.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Modifier keys pressed on their own.
	KeyShift
	KeyCtrl
	KeyAlt
	KeyMeta

	// KeyRune is any character key.
	KeyRune

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeySpace:     "Space",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyShift:     "Shift",
	KeyCtrl:      "Ctrl",
	KeyAlt:       "Alt",
	KeyMeta:      "Meta",
	KeyRune:      "Rune",
}

// String returns the key name.
func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// Modifier returns the bit a standalone modifier key controls, or ModNone.
func (k Key) Modifier() Modifier {
	switch k {
	case KeyShift:
		return ModShift
	case KeyCtrl:
		return ModCtrl
	case KeyAlt:
		return ModAlt
	case KeyMeta:
		return ModMeta
	default:
		return ModNone
	}
}

// IsModifier reports whether k is a standalone modifier key.
func (k Key) IsModifier() bool {
	return k.Modifier() != ModNone
}
