package key

import "unicode"

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if Ctrl, Alt or Meta is pressed.
// Shift alone does not count since it is part of the character.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
}

// Normalize returns the canonical form used to compare bindings.
// For characters Shift is dropped, since it is already reflected in the
// rune, and a modified letter is lower-cased so "Ctrl+S" and "<C-s>"
// compare equal.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.IsModified() {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Normalize() == other.Normalize()
}

// String returns a Vim-style representation.
// Examples: "a", "<C-s>", "<S-Left>", "<CR>", "<Space>"
func (e Event) String() string {
	e = e.Normalize()

	if e.IsRune() && e.Modifiers == ModNone {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	case KeyDelete:
		name = "Del"
	default:
		name = e.Key.String()
	}
	return "<" + e.Modifiers.vimPrefix() + name + ">"
}
