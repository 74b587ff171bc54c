package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "Ctrl+=", "Ctrl+-", "Alt+Left"
//
// The key is the text after the last '+', except that a trailing "++"
// names the '+' key itself ("Ctrl++").
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	modPart, keyPart := splitSpec(spec)

	var mods Modifier
	if modPart != "" {
		for _, p := range strings.Split(modPart, "+") {
			mod := ModifierFromName(p)
			if mod == ModNone {
				return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, strings.TrimSpace(p))
			}
			mods = mods.With(mod)
		}
	}

	return parseKey(keyPart, mods)
}

// splitSpec separates "Ctrl+Alt+X" into "Ctrl+Alt" and "X".
func splitSpec(spec string) (mods, key string) {
	if strings.HasSuffix(spec, "++") {
		return strings.TrimSuffix(spec, "++"), "+"
	}
	i := strings.LastIndex(spec, "+")
	if i < 0 || i == len(spec)-1 {
		return "", spec
	}
	return spec[:i], spec[i+1:]
}

func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		if k == KeySpace {
			return NewRuneEvent(' ', mods), nil
		}
		return NewSpecialEvent(k, mods), nil
	}

	if utf8.RuneCountInString(keyPart) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	r, _ := utf8.DecodeRuneInString(keyPart)
	switch {
	case mods.HasCtrl():
		// Ctrl chords are case-insensitive
		r = unicode.ToLower(r)
	case unicode.IsUpper(r):
		mods = mods.With(ModShift)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.String(), nil
}
