package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err *ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// ConnectionError indicates that the task store could not be reached.
// Unlike validation and not-found failures it may be transient; callers
// are free to retry with backoff.
type ConnectionError struct {
	Err error
}

func NewConnectionError(err error) error {
	return &ConnectionError{Err: err}
}

func (err *ConnectionError) Error() string {
	if err.Err == nil {
		return "store unreachable"
	}
	return err.Err.Error()
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s *shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
