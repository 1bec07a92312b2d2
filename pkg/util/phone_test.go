package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  bool
	}{
		{"Valid starting with 9", "9876543210", true},
		{"Valid starting with 6", "6123456789", true},
		{"Starts below 6", "5876543210", false},
		{"Too short", "987654321", false},
		{"Too long", "98765432100", false},
		{"With country code", "+919876543210", false},
		{"Contains letters", "98765x3210", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPhoneNumber(tt.phone))
		})
	}
}
