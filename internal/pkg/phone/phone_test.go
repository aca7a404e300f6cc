//go:build unit

package phone_test

import (
	"testing"

	"bagtrack/internal/pkg/phone"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare e164", "+966501234567", "+966501234567"},
		{"spaces stripped", "+966 50 123 4567", "+966501234567"},
		{"dashes stripped", "+966-50-123-4567", "+966501234567"},
		{"parens stripped", "+1 (415) 555-0100", "+14155550100"},
		{"surrounding whitespace", "  +966501234567 ", "+966501234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := phone.Normalize(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing plus", "966501234567"},
		{"leading zero country code", "+0501234567"},
		{"too short", "+96650"},
		{"too long", "+9665012345678901"},
		{"letters", "+96650abc4567"},
		{"double plus", "++966501234567"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := phone.Normalize(tt.input)
			assert.ErrorIs(t, err, phone.ErrInvalidPhoneNumber)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, phone.IsValid("+966 501 234 567"))
	assert.False(t, phone.IsValid("0501234567"))
}
