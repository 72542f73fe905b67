package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxFieldLen bounds every free-text field, matching the width of the
// on-disk format.
const MaxFieldLen = 99

// ValidateField checks a free-text field against the serialization
// contract: non-empty, at most MaxFieldLen characters, and free of the
// pipe delimiter and line breaks. The data files have no escaping, so
// offending input is rejected at the door instead of corrupting them.
func ValidateField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidField, name)
	}
	if len(value) > MaxFieldLen {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidField, name, MaxFieldLen)
	}
	if strings.ContainsAny(value, "|\n\r") {
		return fmt.Errorf("%w: %s must not contain '|' or line breaks", ErrInvalidField, name)
	}
	return nil
}

// ValidatePrice checks that a price is strictly positive.
func ValidatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrice
	}
	return nil
}

// ValidatePassenger checks every passenger field.
func ValidatePassenger(p Passenger) error {
	fields := []struct {
		name  string
		value string
	}{
		{"full name", p.FullName},
		{"ID number", p.IDNumber},
		{"phone number", p.PhoneNumber},
		{"email", p.Email},
	}
	for _, f := range fields {
		if err := ValidateField(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}
