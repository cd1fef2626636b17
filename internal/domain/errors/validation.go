package errors

import (
	"net/http"
	"strings"
)

// FieldViolation names a single payload field that failed validation.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every violated field of a request payload. It is
// raised before any persistence attempt.
type ValidationError struct {
	violations []FieldViolation
}

// NewValidationError creates a validation error from field violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{violations: violations}
}

// Violations returns one entry per violated field.
func (e *ValidationError) Violations() []FieldViolation {
	return e.violations
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		fields = append(fields, v.Field)
	}

	return "validation failed: " + strings.Join(fields, ", ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Request payload failed validation"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}
