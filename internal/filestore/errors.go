package filestore

import (
	"errors"
	"fmt"
)

// Standard errors returned by the filestore package.
var (
	// ErrIOUnavailable indicates the file could not be opened, read or
	// written. The OS error is wrapped alongside it.
	ErrIOUnavailable = errors.New("file unavailable")

	// ErrNoPath indicates a save or load without a file path.
	ErrNoPath = errors.New("no file path")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrFileTooLarge indicates the file exceeds the maximum size limit.
	ErrFileTooLarge = errors.New("file too large")

	// ErrBinaryFile indicates the file appears to be binary.
	ErrBinaryFile = errors.New("binary file")
)

// PathError represents an error associated with a file path.
type PathError struct {
	Op   string // Operation that failed (load, save)
	Path string // File path
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *PathError) Unwrap() error {
	return e.Err
}

// unavailable wraps an OS error so that it matches both ErrIOUnavailable
// and the original error.
func unavailable(op, path string, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: fmt.Errorf("%w: %w", ErrIOUnavailable, err)}
}
