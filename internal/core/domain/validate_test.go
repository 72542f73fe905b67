package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/busdesk/busdesk/internal/core/domain"
)

func TestValidateField(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"plain text", "Istanbul", true},
		{"spaces and punctuation", "34 ABC 123", true},
		{"max length", strings.Repeat("a", domain.MaxFieldLen), true},
		{"empty", "", false},
		{"too long", strings.Repeat("a", domain.MaxFieldLen+1), false},
		{"pipe", "a|b", false},
		{"newline", "a\nb", false},
		{"carriage return", "a\rb", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.ValidateField("field", tc.value)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, domain.ErrInvalidField) {
				t.Fatalf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	if err := domain.ValidatePrice(decimal.RequireFromString("0.01")); err != nil {
		t.Fatalf("positive price: %v", err)
	}
	for _, s := range []string{"0", "-1.50"} {
		if err := domain.ValidatePrice(decimal.RequireFromString(s)); !errors.Is(err, domain.ErrInvalidPrice) {
			t.Fatalf("price %s: expected ErrInvalidPrice, got %v", s, err)
		}
	}
}

func TestValidatePassenger(t *testing.T) {
	valid := domain.Passenger{
		FullName:    "Ayse Yilmaz",
		IDNumber:    "12345678901",
		PhoneNumber: "+90 555 123 4567",
		Email:       "ayse@example.com",
	}
	if err := domain.ValidatePassenger(valid); err != nil {
		t.Fatalf("valid passenger: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(p *domain.Passenger)
	}{
		{"empty name", func(p *domain.Passenger) { p.FullName = "" }},
		{"pipe in ID", func(p *domain.Passenger) { p.IDNumber = "123|456" }},
		{"newline in phone", func(p *domain.Passenger) { p.PhoneNumber = "555\n123" }},
		{"empty email", func(p *domain.Passenger) { p.Email = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			if err := domain.ValidatePassenger(p); !errors.Is(err, domain.ErrInvalidField) {
				t.Fatalf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}
