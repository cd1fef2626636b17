// Package validator adapts go-playground/validator to echo and translates
// its failures into per-field application errors.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	domainerrors "stockroom/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// iso8601Layouts are the accepted date formats, broadest first.
var iso8601Layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the request payload validator.
func New() *CustomValidator {
	validate := validator.New()

	// Report violations under the wire (json) field name, not the Go one.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// The original API accepts both plain dates and full timestamps.
	_ = validate.RegisterValidation("iso8601", isISO8601)

	return &CustomValidator{validate: validate}
}

// Validate checks the payload and returns a ValidationError listing every
// violated field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrors) {
		return err
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   fieldError.Field(),
			Message: violationMessage(fieldError),
		})
	}

	return domainerrors.NewValidationError(violations...)
}

func violationMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "iso8601":
		return fmt.Sprintf("%s must be a valid ISO-8601 date", fieldError.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fieldError.Field(), fieldError.Tag())
	}
}

func isISO8601(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, layout := range iso8601Layouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}

	return false
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}

	*target = fieldErrors

	return true
}
