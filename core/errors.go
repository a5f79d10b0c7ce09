package core

import "github.com/pkg/errors"

// ErrInputExhausted is returned when the input source ends before a valid value was read.
var ErrInputExhausted = errors.New("input exhausted")

// FieldError is used to indicate an error with a specific input field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports a rejected input value. It is recoverable: callers re-prompt.
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

func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func IsInputExhausted(err error) bool {
	return errors.Cause(err) == ErrInputExhausted
}
