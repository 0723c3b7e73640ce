package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"officeit/internal/catalog"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "user@example.com", true},
		{"plus and dots", "first.last+tag@mail.example.co.uk", true},
		{"special local chars", "o'brien!#$%&*/=?^_`{|}~-@example.com", true},
		{"double at", "user@@example.com", false},
		{"two ats", "us@er@example.com", false},
		{"no at", "user.example.com", false},
		{"empty local", "@example.com", false},
		{"empty domain", "user@", false},
		{"local too long", "a" + strings.Repeat("x", 70) + "@example.com", false},
		{"local exactly 64", strings.Repeat("x", 64) + "@example.com", true},
		{"leading dot", ".user@example.com", false},
		{"trailing dot", "user.@example.com", false},
		{"double dot", "us..er@example.com", false},
		{"space in local", "us er@example.com", false},
		{"domain without dot", "user@localhost", false},
		{"empty domain segment", "user@example..com", false},
		{"leading hyphen segment", "user@-example.com", false},
		{"trailing hyphen segment", "user@example-.com", false},
		{"underscore in domain", "user@exa_mple.com", false},
		{"too long overall", strings.Repeat("a", 60) + "@" + strings.Repeat("b", 190) + ".com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.ValidateEmail(tt.email))
		})
	}
}

func TestValidateEmailRejectsAnyAtCountOtherThanOne(t *testing.T) {
	for _, email := range []string{"plain", "a@b@c.com", "@@", "x@y.z@w.com"} {
		assert.False(t, catalog.ValidateEmail(email), email)
	}
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, catalog.ValidatePhone("072-582-8283"))
	assert.True(t, catalog.ValidatePhone("(072) 582 8283"))
	assert.True(t, catalog.ValidatePhone("0725828283"))
	assert.False(t, catalog.ValidatePhone("12345"))
	assert.False(t, catalog.ValidatePhone("+94 72 582 8283"))
	assert.False(t, catalog.ValidatePhone(""))
}
