package validator

import (
	"testing"

	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func validItem() entity.Item {
	return entity.Item{
		ProductType:    "dairy",
		ProductBrand:   "Acme",
		ProductName:    "Milk",
		WeightPerUnit:  floatPtr(1),
		PricePerUnit:   floatPtr(2.5),
		SellingPrice:   floatPtr(3.0),
		ExpirationDate: "2025-01-01",
	}
}

func TestValidate_ValidItem(t *testing.T) {
	cv := New()

	assert.NoError(t, cv.Validate(validItem()))
}

func TestValidate_AcceptsTimestampDates(t *testing.T) {
	cv := New()

	item := validItem()
	item.ExpirationDate = "2025-01-01T10:30:00Z"
	assert.NoError(t, cv.Validate(item))

	item.ExpirationDate = "2025-01-01T10:30:00"
	assert.NoError(t, cv.Validate(item))
}

func TestValidate_MissingFieldsNamedByJSONTag(t *testing.T) {
	cv := New()

	item := validItem()
	item.ProductBrand = ""
	item.WeightPerUnit = nil

	err := cv.Validate(item)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Violations()))
	for _, violation := range validationErr.Violations() {
		fields = append(fields, violation.Field)
	}

	assert.ElementsMatch(t, []string{"productBrand", "weightPerUnit"}, fields)
}

func TestValidate_RejectsMalformedDate(t *testing.T) {
	cv := New()

	item := validItem()
	item.ExpirationDate = "not-a-date"

	err := cv.Validate(item)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Violations(), 1)
	assert.Equal(t, "expirationDate", validationErr.Violations()[0].Field)
}

func TestValidate_ZeroNumbersArePresent(t *testing.T) {
	cv := New()

	item := validItem()
	item.WeightPerUnit = floatPtr(0)
	item.PricePerUnit = floatPtr(0)

	assert.NoError(t, cv.Validate(item))
}
