package response

import (
	"net/http"

	domainerrors "stockroom/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`

	// Errors carries one entry per violated payload field on validation
	// failures.
	Errors []domainerrors.FieldViolation `json:"errors,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "ITEM_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// ValidationFailed 400 response naming every violated field
func ValidationFailed(c echo.Context, message string, violations []domainerrors.FieldViolation) error {
	if message == "" {
		message = "Request payload failed validation"
	}

	return c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Code:    http.StatusBadRequest,
		Message: message,
		Error: &ErrorInfo{
			Code: "VALIDATION_FAILED",
		},
		Errors: violations,
	})
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}
