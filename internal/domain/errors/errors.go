// Package errors defines application errors carried across layers and mapped
// to HTTP responses by the delivery layer.
package errors

import (
	"net/http"

	"stockroom/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types
var (
	// Catalog errors. Malformed ids map to the same not-found errors as
	// well-formed but absent ids.
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item not found",
		"",
	)

	ErrOutOfStockNotFound = NewBaseError(
		http.StatusNotFound,
		"OUT_OF_STOCK_NOT_FOUND",
		"Out-of-stock request not found",
		"",
	)

	// Authentication errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized access. Please log in.",
		"",
	)

	ErrOAuthStateMismatch = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_STATE_MISMATCH",
		"OAuth state parameter is missing or invalid",
		"",
	)

	ErrOAuthExchangeFailed = NewBaseError(
		http.StatusBadGateway,
		"OAUTH_EXCHANGE_FAILED",
		"Failed to exchange the authorization grant with the provider",
		"",
	)

	ErrSessionDestroyFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_DESTROY_FAILED",
		"Failed to log out.",
		"",
	)
)

// DatabaseExecuteError wraps an unexpected database failure. No internals are
// exposed beyond the wrapped message.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the wrapped error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "An internal server error occurred."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
