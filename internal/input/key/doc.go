// Package key provides the decoded keyboard events the input router
// consumes.
//
// A frontend turns platform key codes into Event values:
//
//   - Key: a special key (Enter, Backspace, arrows) or KeyRune
//   - Rune: the character for KeyRune events
//   - Modifiers: Ctrl, Alt, Shift, Meta
//
// # Key Specifications
//
// Bindings are written as "Ctrl+S", "Ctrl+=", "Alt+Left", "Enter" or a
// single character. Parse turns a specification into an Event and
// Event.String formats one back.
package key
