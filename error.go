package pistache

import "fmt"

// Error is a protocol-level failure, carrying the status code to report and
// a human-readable reason. It has no behavior beyond data carriage.
type Error struct {
	Code   int
	Reason string
}

// NewError creates an Error from a status code enumerator.
func NewError(code Code, reason string) *Error {
	return &Error{Code: int(code), Reason: reason}
}

// NewErrorFromStatus creates an Error from a raw status code.
func NewErrorFromStatus(status int, reason string) *Error {
	return &Error{Code: status, Reason: reason}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Reason)
}
