// Package input routes decoded key events to the editing engine and to
// the command collaborators.
//
// A frontend decodes platform key events into key.Event values and
// hands each one to Router.Route, which classifies the intent:
//
//   - Control chords are commands looked up in a Keymap (save, paste,
//     invert colors, font size). Unbound chords do nothing.
//   - Backspace, Enter, Tab, Space and the arrows call the matching
//     engine operation, with or without Shift.
//   - Characters are inserted, shifted through a shift.Table when Shift
//     is held. Only printable ASCII is inserted.
//
// The router owns no document state. Commands reach the outside world
// through the Saver, Clipboard and Display interfaces, and every event
// yields a Result describing what happened.
//
// # Usage
//
//	router := input.NewRouter(eng,
//	    input.WithSaver(session),
//	    input.WithClipboard(clipboard.NewSystem()),
//	    input.WithDisplay(theme),
//	)
//
//	for ev := range events {
//	    res := router.Route(ev)
//	    if res.IsError() {
//	        log.Printf("%s: %v", res.Action, res.Error)
//	    }
//	}
package input
