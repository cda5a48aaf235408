package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  string
	}{
		{"valid simple", "frank", ""},
		{"valid with separators", "frank.ocean_77-x", ""},
		{"too short", "ab", "at least 3 characters"},
		{"too long", strings.Repeat("a", 81), "not exceed 80"},
		{"spaces rejected", "frank ocean", "may only contain"},
		{"symbols rejected", "frank!", "may only contain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("frank@example.com"))
	assert.NoError(t, ValidateEmail("a.b+c@sub.example.co.ke"))

	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("no@tld"))
	assert.Error(t, ValidateEmail("spaces in@example.com"))
	assert.ErrorContains(t, ValidateEmail(strings.Repeat("a", 115)+"@example.com"), "not exceed 120")
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"meets all rules", "Passw0rd", ""},
		{"long mixed", "Correct-Horse-Battery-1", ""},
		{"too short", "Ab1", "at least 8 characters"},
		{"too long", "A1" + strings.Repeat("a", 127), "not exceed 128"},
		{"no uppercase", "passw0rd", "uppercase letter"},
		{"no lowercase", "PASSW0RD", "lowercase letter"},
		{"no digit", "Password", "digit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
