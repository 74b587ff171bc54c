package input

import "fmt"

// ResultStatus indicates the outcome of routing a key event.
type ResultStatus uint8

const (
	// StatusOK indicates the action ran and changed something.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the event had no effect.
	StatusNoOp
	// StatusError indicates the action failed.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result represents the outcome of routing one key event.
type Result struct {
	// Status indicates the result status.
	Status ResultStatus

	// Action is the action the event resolved to. Empty when the event
	// was ignored.
	Action string

	// Error contains any error that occurred.
	Error error

	// Message is an optional status message for display.
	Message string
}

// IsOK returns true if the result indicates success.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError returns true if the result indicates an error.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success(action string) Result {
	return Result{Status: StatusOK, Action: action}
}

// SuccessWithMessage creates a successful result with a message.
func SuccessWithMessage(action, msg string) Result {
	return Result{Status: StatusOK, Action: action, Message: msg}
}

// NoOp creates a no-operation result.
func NoOp(action string) Result {
	return Result{Status: StatusNoOp, Action: action}
}

// Error creates an error result.
func Error(action string, err error) Result {
	return Result{Status: StatusError, Action: action, Error: err}
}

// WithMessage returns a copy of the result with the specified message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// String returns a short description for logging.
func (r Result) String() string {
	if r.Error != nil {
		return fmt.Sprintf("%s %s: %v", r.Action, r.Status, r.Error)
	}
	return fmt.Sprintf("%s %s", r.Action, r.Status)
}
