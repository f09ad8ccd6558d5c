package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "zero value",
			input:    0.0,
			expected: "0.00",
		},
		{
			name:     "whole number gains decimals",
			input:    123.0,
			expected: "123.00",
		},
		{
			name:     "one decimal place padded",
			input:    13.4,
			expected: "13.40",
		},
		{
			name:     "rounded to two decimals",
			input:    47.1285,
			expected: "47.13",
		},
		{
			name:     "negative value",
			input:    -7.5,
			expected: "-7.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFloat(tt.input))
		})
	}
}

func TestFormatQuantile(t *testing.T) {
	assert.Equal(t, "0.000000", formatQuantile(0))
	assert.Equal(t, "-0.869442", formatQuantile(-0.8694424))
	assert.Equal(t, "1.959964", formatQuantile(1.9599640))
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "42", formatInt(42))
	assert.Equal(t, "-3", formatInt(-3))
}
