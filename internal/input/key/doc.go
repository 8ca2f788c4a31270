// Package key holds keyboard events as the gesture core sees them.
//
// A Key names a special key, a standalone modifier key or, with KeyRune, a
// character carried in Event.Rune. Modifier is the bitmask of modifiers
// held during any key or pointer event.
//
// Modifier keys are reported both in that bitmask and as keys in their own
// right, so a gesture can react to Alt going down in the middle of a drag.
//
// "Command" is the platform's primary shortcut modifier. Either Ctrl or
// Meta satisfies it.
package key
