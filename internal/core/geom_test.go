package core

import (
	"math"
	"testing"
)

func TestCircleOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{
			name:     "overlapping",
			a:        Circle{Center: Vec2{X: 0, Y: 0}, Radius: 10},
			b:        Circle{Center: Vec2{X: 15, Y: 0}, Radius: 10},
			expected: true,
		},
		{
			name:     "touching (no overlap)",
			a:        Circle{Center: Vec2{X: 0, Y: 0}, Radius: 10},
			b:        Circle{Center: Vec2{X: 20, Y: 0}, Radius: 10},
			expected: false,
		},
		{
			name:     "apart",
			a:        Circle{Center: Vec2{X: 0, Y: 0}, Radius: 10},
			b:        Circle{Center: Vec2{X: 25, Y: 0}, Radius: 10},
			expected: false,
		},
		{
			name:     "diagonal within radius sum",
			a:        Circle{Center: Vec2{X: 0, Y: 0}, Radius: 5},
			b:        Circle{Center: Vec2{X: 12, Y: 16}, Radius: 16},
			expected: true,
		},
		{
			name:     "same centre",
			a:        Circle{Center: Vec2{X: 5, Y: 5}, Radius: 1},
			b:        Circle{Center: Vec2{X: 5, Y: 5}, Radius: 1},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	d := Distance(Vec2{X: 1, Y: 2}, Vec2{X: 4, Y: 6})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance() = %f, expected 5", d)
	}

	v := Vec2{X: 1, Y: 1}.Add(Vec2{X: 2, Y: 3}).Sub(Vec2{X: 3, Y: 0})
	if v != (Vec2{X: 0, Y: 4}) {
		t.Errorf("Add/Sub = %+v, expected {0 4}", v)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{20, 20, 620, 20},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := ColorRed.Hex(); got != "#ff0000" {
		t.Errorf("ColorRed.Hex() = %q, expected #ff0000", got)
	}
	if !ColorDefault.IsZero() {
		t.Error("ColorDefault should be zero")
	}
	if ColorBlack.IsZero() {
		t.Error("opaque black is not the zero colour")
	}
}
