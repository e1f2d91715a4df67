package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 97.2, Round2(97.2))
	assert.Equal(t, 133.2, Round2(740*0.18))
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 540.0, Round2(300*2*0.9))
}

func TestValidateRequiredString(t *testing.T) {
	assert.NoError(t, ValidateRequiredString("A", "name"))
	assert.Error(t, ValidateRequiredString("", "name"))
	assert.Error(t, ValidateRequiredString("   ", "name"))
}

func TestValidateDateFormat(t *testing.T) {
	assert.NoError(t, ValidateDateFormat("2024-01-01", "bill_date"))
	assert.Error(t, ValidateDateFormat("", "bill_date"))
	assert.Error(t, ValidateDateFormat("01/01/2024", "bill_date"))
	assert.Error(t, ValidateDateFormat("2024-13-01", "bill_date"))
}

func TestValidateDiscountPercent(t *testing.T) {
	assert.NoError(t, ValidateDiscountPercent(0, "discount"))
	assert.NoError(t, ValidateDiscountPercent(100, "discount"))
	assert.Error(t, ValidateDiscountPercent(-1, "discount"))
	assert.Error(t, ValidateDiscountPercent(101, "discount"))
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	assert.Nil(t, OptionalString("  "))
	if got := OptionalString(" a@example.com "); assert.NotNil(t, got) {
		assert.Equal(t, "a@example.com", *got)
	}
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "", SafeString(nil))
	s := "x"
	assert.Equal(t, "x", SafeString(&s))
}
