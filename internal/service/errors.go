package service

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")
var ErrForbidden = errors.New("forbidden")

// ValidationError carries field-level messages. Handlers surface it as a 422.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
