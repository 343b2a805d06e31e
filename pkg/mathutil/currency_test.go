package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Exact value", 100.00, 100.00},
		{"Round down", 100.004, 100.00},
		{"Round up", 100.005, 100.01},
		{"Round up from above", 100.006, 100.01},
		{"Negative round", -100.005, -100.01},
		{"Float artifact", 0.1 + 0.2, 0.30},
		{"Large value", 115838.19342, 115838.19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exact zero", 0.0, true},
		{"Sub-cent residue", 0.004, true},
		{"One cent", 0.01, true},
		{"Above tolerance", 0.02, false},
		{"Negative residue", -0.005, true},
		{"Clearly nonzero", 1.50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsPositive(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Clearly positive", 1.50, true},
		{"One cent", 0.01, false},
		{"Sub-cent residue", 0.004, false},
		{"Zero", 0.0, false},
		{"Negative", -0.02, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsPositive(tt.input); result != tt.expected {
				t.Errorf("IsPositive(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
