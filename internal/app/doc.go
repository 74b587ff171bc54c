// Package app ties the editor together for one session.
//
// A Session owns the open Document (path plus engine), the input router,
// the file store, the display state, the configuration and a logger
// tagged with the session id. Frontends feed it decoded key events with
// HandleKey and draw the result of Frame after each one.
package app
