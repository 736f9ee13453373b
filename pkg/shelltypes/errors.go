package shelltypes

import (
	"errors"
	"fmt"
)

// ErrQuit is the control-flow signal that terminates an interpreter loop.
// It propagates through the filter chain like an error but is never
// reported to the user.
var ErrQuit = errors.New("quit interpreter")

// StatusError is a well-known application-level failure: unknown command,
// unknown option, duplicate registration, usage mistakes. The interpreter
// reports these message-only; everything else gets a full diagnostic.
type StatusError struct {
	Message string
}

// Error returns the formatted message.
func (e *StatusError) Error() string { return e.Message }

// Statusf builds a StatusError with a formatted message.
func Statusf(format string, args ...any) error {
	return &StatusError{Message: fmt.Sprintf(format, args...)}
}

// IsStatus reports whether err is (or wraps) a StatusError.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
