package key

import (
	"fmt"
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintableASCII returns true for character events in 0x20-0x7E.
func (e Event) IsPrintableASCII() bool {
	return e.IsRune() && e.Rune >= 0x20 && e.Rune <= 0x7e
}

// IsSpecial returns true if this is a special (non-character) key.
func (e Event) IsSpecial() bool {
	return e.Key.IsSpecial()
}

// Chord returns the event reduced to what a binding matches on: no
// timestamp, Ctrl letters in lower case, and Shift dropped whenever
// Ctrl is held.
func (e Event) Chord() Event {
	c := Event{Key: e.Key, Rune: e.Rune, Modifiers: e.Modifiers}
	if c.Modifiers.HasCtrl() {
		c.Modifiers = c.Modifiers.Without(ModShift)
		c.Rune = unicode.ToLower(c.Rune)
	}
	if c.Key == KeyRune && c.Rune == ' ' {
		c.Key, c.Rune = KeySpace, 0
	}
	return c
}

// String returns the canonical specification, e.g. "Ctrl+S", "Enter",
// "a". The result parses back to an equal event.
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		switch {
		case e.Rune == ' ':
			name = "Space"
		case e.Modifiers.HasCtrl() && e.Rune >= 'a' && e.Rune <= 'z':
			name = string(unicode.ToUpper(e.Rune))
		default:
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune && !mods.HasCtrl() {
		// Shift is part of the character itself
		mods = mods.Without(ModShift)
	}
	if mods.IsEmpty() {
		return name
	}
	return mods.String() + "+" + name
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Chord().Equals(parsed.Chord())
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
