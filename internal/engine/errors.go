package engine

import (
	"errors"

	"github.com/dshills/fluffy/internal/engine/buffer"
)

// Errors returned by engine operations.
var (
	// ErrOutOfRange indicates a row or column outside the document.
	ErrOutOfRange = buffer.ErrOutOfRange

	// ErrLineBreak indicates single-line input that contains '\n'.
	ErrLineBreak = buffer.ErrLineBreak

	// ErrInconsistentState indicates the document or cursor broke an
	// engine invariant. It signals a defect, not a user error.
	ErrInconsistentState = errors.New("engine state inconsistent")

	// ErrUnknownDirection indicates an invalid cursor direction.
	ErrUnknownDirection = errors.New("unknown cursor direction")
)
