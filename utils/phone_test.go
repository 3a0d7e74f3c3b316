package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full number with country code", "998901234567", "+998 90 123 45 67"},
		{"local nine digit number", "901234567", "+998 90 123 45 67"},
		{"already formatted", "+998 (90) 123-45-67", "+998 90 123 45 67"},
		{"dots and dashes", "90.123.45.67", "+998 90 123 45 67"},
		{"foreign number kept as digits", "4915123456789", "4915123456789"},
		{"twelve digits without country code", "123456789012", "123456789012"},
		{"letters stripped", "abc123", "123"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPhoneNumber(tt.input))
		})
	}
}
