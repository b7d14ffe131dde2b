package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whereizit-service/internal/pkg/utils"
)

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lng   float64
		valid bool
	}{
		{"seoul", 37.5, 127.03, true},
		{"equator prime meridian", 0, 0, true},
		{"north pole", 90, 0, true},
		{"date line", 0, 180, true},
		{"latitude too high", 90.1, 0, false},
		{"latitude too low", -90.1, 0, false},
		{"longitude too high", 0, 180.1, false},
		{"longitude too low", 0, -180.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, utils.ValidateCoordinates(tt.lat, tt.lng))
		})
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters   float64
		expected string
	}{
		{0, "0m"},
		{17.4, "17m"},
		{999.4, "999m"},
		{1000, "1.0km"},
		{1550, "1.6km"},
		{12345, "12.3km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, utils.FormatDistance(tt.meters))
	}
}
