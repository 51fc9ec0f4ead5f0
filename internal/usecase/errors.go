package usecase

import (
	"errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUpstreamFetch         = errors.New("upstream fetch failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// OperationError is returned when a provider call fails a whole operation. Error()
// yields only the fixed public message; the cause is kept for errors.Is and logs.
type OperationError struct {
	Op      string
	Message string
	kind    error
	cause   error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// Cause returns the underlying provider error.
func (e *OperationError) Cause() error {
	return e.cause
}

func newOperationError(op, message string, cause error) error {
	kind := ErrUpstreamFetch
	switch {
	case errors.Is(cause, ErrNotFound):
		kind = ErrNotFound
	case errors.Is(cause, ErrDependencyUnavailable):
		kind = ErrDependencyUnavailable
	}
	return &OperationError{Op: op, Message: message, kind: kind, cause: cause}
}
