package input

import (
	"errors"
	"fmt"
	"maps"

	"github.com/dshills/fluffy/internal/input/key"
)

// Keymap errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrDuplicateKey  = errors.New("key bound to more than one action")
	ErrUnboundable   = errors.New("key cannot be bound")
)

// Keymap maps command actions to key specifications such as "Ctrl+S".
type Keymap map[string]string

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		ActionSave:         "Ctrl+S",
		ActionPaste:        "Ctrl+V",
		ActionInvertColors: "Ctrl+I",
		ActionFontIncrease: "Ctrl+=",
		ActionFontDecrease: "Ctrl+-",
	}
}

// Merge returns a copy of m with the non-empty entries of overrides
// applied on top.
func (m Keymap) Merge(overrides Keymap) Keymap {
	out := maps.Clone(m)
	if out == nil {
		out = Keymap{}
	}
	for action, spec := range overrides {
		if spec != "" {
			out[action] = spec
		}
	}
	return out
}

// Compile parses every specification and returns the chord table the
// router matches against.
func (m Keymap) Compile() (map[key.Event]string, error) {
	chords := make(map[key.Event]string, len(m))
	for action, spec := range m {
		if !IsCommand(action) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}

		ev, err := key.Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", action, err)
		}
		chord := ev.Chord()
		if !isChord(chord) {
			return nil, fmt.Errorf("%w: %s for %s needs Ctrl, Alt or Meta", ErrUnboundable, spec, action)
		}

		if other, ok := chords[chord]; ok {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateKey, spec, other, action)
		}
		chords[chord] = action
	}
	return chords, nil
}

// isChord reports whether a binding would shadow plain typing.
func isChord(ev key.Event) bool {
	return ev.Modifiers.Has(key.ModCtrl | key.ModAlt | key.ModMeta)
}
