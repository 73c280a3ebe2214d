package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOps(t *testing.T) {
	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{
			name:     "Add",
			result:   NewVec3(1, 2, 3).Add(NewVec3(4, 5, 6)),
			expected: NewVec3(5, 7, 9),
		},
		{
			name:     "Subtract",
			result:   NewVec3(4, 5, 6).Subtract(NewVec3(1, 2, 3)),
			expected: NewVec3(3, 3, 3),
		},
		{
			name:     "Multiply",
			result:   NewVec3(1, -2, 3).Multiply(2),
			expected: NewVec3(2, -4, 6),
		},
		{
			name:     "MultiplyVec",
			result:   NewVec3(1, 2, 3).MultiplyVec(NewVec3(2, 0.5, -1)),
			expected: NewVec3(2, 1, -3),
		},
		{
			name:     "Cross of axes",
			result:   NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Normalize",
			result:   NewVec3(0, 3, 4).Normalize(),
			expected: NewVec3(0, 0.6, 0.8),
		},
		{
			name:     "Lerp midpoint",
			result:   NewVec3(0, 0, 0).Lerp(NewVec3(2, 4, 6), 0.5),
			expected: NewVec3(1, 2, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const tolerance = 1e-9
			if tt.result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_Dot(t *testing.T) {
	v := NewVec3(1, 2, 3)
	w := NewVec3(4, -5, 6)
	if got := v.Dot(w); got != 12 {
		t.Errorf("Dot: got %f, expected 12", got)
	}
}

func TestVec3_ToSRGB(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected float64
	}{
		{name: "Black", linear: 0.0, expected: 0.0},
		{name: "Linear segment", linear: 0.002, expected: 12.92 * 0.002},
		{name: "White", linear: 1.0, expected: 1.0},
		{
			name:     "Mid gray",
			linear:   0.5,
			expected: 1.055*math.Pow(0.5, 1.0/2.4) - 0.055,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVec3(tt.linear, tt.linear, tt.linear).ToSRGB()
			if math.Abs(got.X-tt.expected) > 1e-9 {
				t.Errorf("ToSRGB(%f): got %f, expected %f", tt.linear, got.X, tt.expected)
			}
		})
	}
}

func TestVec3_Luminance(t *testing.T) {
	// Weights must sum to 1 so a gray value maps to itself
	gray := NewVec3(0.5, 0.5, 0.5)
	if got := gray.Luminance(); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("Luminance of gray: got %f, expected 0.5", got)
	}
	// Green dominates
	if NewVec3(1, 0, 0).Luminance() >= NewVec3(0, 1, 0).Luminance() {
		t.Error("Expected green channel to dominate luminance")
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector to report finite")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN component to report non-finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Expected infinite component to report non-finite")
	}
}
