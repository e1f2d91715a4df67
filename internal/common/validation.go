package common

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Round2 rounds a monetary amount to 2 decimal places. All row totals and
// aggregates displayed or persisted by the system go through this.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidateRequiredString validates required string fields
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateDateFormat validates date strings in YYYY-MM-DD format
func ValidateDateFormat(dateStr, fieldName string) error {
	if strings.TrimSpace(dateStr) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("%s must be in YYYY-MM-DD format", fieldName)
	}
	return nil
}

// ValidateDiscountPercent validates discount percentage bounds
func ValidateDiscountPercent(value float64, fieldName string) error {
	if value < 0 || value > 100 {
		return fmt.Errorf("%s must be between 0 and 100", fieldName)
	}
	return nil
}

// SafeString safely handles string pointer operations
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OptionalString maps an empty form value to a NULL-able column value.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
