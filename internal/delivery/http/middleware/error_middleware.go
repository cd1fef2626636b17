package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"stockroom/internal/delivery/http/response"
	domainerrors "stockroom/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware centralized error handling, wired as echo's HTTPErrorHandler.
// It is the catch-all boundary for unrouted paths and errors escaping handlers.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Validation failures carry one entry per violated field.
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		//nolint:errcheck // Nothing left to do if writing the response fails.
		response.ValidationFailed(c, validationErr.Message(), validationErr.Violations())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()

		// Server-side failures stay server-side: log the full error, send
		// the message alone.
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			details = ""
		}

		//nolint:errcheck
		response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		// A JSON type mismatch during binding means a malformed payload, not
		// a server fault; report it as a validation failure naming the field.
		var typeErr *json.UnmarshalTypeError
		if errors.As(httpErr.Internal, &typeErr) && typeErr.Field != "" {
			//nolint:errcheck
			response.ValidationFailed(c, "", []domainerrors.FieldViolation{{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			}})

			return
		}

		//nolint:errcheck
		response.Error(c, httpErr.Code, "HTTP_ERROR", fmt.Sprintf("%v", httpErr.Message), "")

		return
	}

	// Default to internal error: log it, leak nothing but the message.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	//nolint:errcheck
	response.InternalServerError(c, "INTERNAL_ERROR", "An internal server error occurred.")
}
