package service

import "errors"

// ErrValidation is the sentinel wrapped by every input-validation
// failure, so handlers can map the whole class to one response code.
var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
