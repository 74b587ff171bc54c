// Package buffer provides the line store for a single document: an
// ordered sequence of text lines that always contains at least one line.
//
// The buffer package provides:
//
//   - Row-indexed access to line text and length
//   - Line insertion, removal and replacement with precondition checks
//   - Wholesale replacement for document loads
//   - Line ending bookkeeping for serialization
//
// Basic usage:
//
//	buf := buffer.NewBuffer()          // [""]
//	buf.SetLineText(0, "Hello")        // ["Hello"]
//	buf.InsertLine(1, "World")         // ["Hello", "World"]
//	buf.RemoveLine(0)                  // ["World"]
//
// Preconditions:
//
// Row arguments are preconditions owned by the caller. A violation is a
// programming error and is reported with an error wrapping ErrOutOfRange;
// it is never silently clamped. Line content may not contain '\n'
// (ErrLineBreak), and the last remaining line cannot be removed
// (ErrLastLine), so the non-empty invariant holds by construction.
package buffer
