package core

import "github.com/pkg/errors"

// FieldError ties a message to one payload field, keyed by its JSON name.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned by services when a gradebook or account payload
// fails a business rule that the struct validators cannot express (duplicate
// email, common password, ...). The HTTP error handler renders Fields as a
// field→message map, same shape as translated validator errors.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown signals an unrecoverable integrity problem; the API server traps it
// and starts a graceful stop instead of serving further requests.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown checks if an error, at its cause, is a shutdown request.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
