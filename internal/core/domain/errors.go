package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("invalid input")

// ErrMalformedResponse indicates a collaborator answered with an unexpected shape.
var ErrMalformedResponse = errors.New("malformed collaborator response")

// ValidationError describes the first input violation found at the boundary.
// Field names the offending wire key when a single field is at fault.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "Invalid input: " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MissingFields builds the error used when required request fields are absent.
func MissingFields(fields ...string) *ValidationError {
	if len(fields) == 1 {
		return &ValidationError{Field: fields[0], Reason: "missing " + fields[0]}
	}
	return &ValidationError{Reason: "missing required fields"}
}

// ExternalServiceError wraps a failure reported by a collaborator API.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
