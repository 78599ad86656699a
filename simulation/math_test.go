package simulation

import (
	"math"
	"testing"
)

func TestWrapUnit(t *testing.T) {
	tests := []struct {
		input    float32
		min, max float32
	}{
		{0, 0, 0},
		{0.5, 0.5, 0.5},
		{1, 0, 0},
		{1.004, 0.0039, 0.0041},
		{-0.004, 0.9959, 0.9961},
		{-1e-9, 0.99, 1},
		{2.25, 0.25, 0.25},
	}

	for _, tt := range tests {
		got := wrapUnit(tt.input)
		if got < tt.min || got > tt.max {
			t.Errorf("wrapUnit(%v) = %v, want in [%v, %v]", tt.input, got, tt.min, tt.max)
		}
		if got < 0 || got >= 1 {
			t.Errorf("wrapUnit(%v) = %v, outside [0, 1)", tt.input, got)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		input    float32
		expected float32
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}

	for _, tt := range tests {
		got := normalizeAngle(tt.input)
		if !approxEqual(got, tt.expected, 1e-5) {
			t.Errorf("normalizeAngle(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestClampFloat(t *testing.T) {
	if got := clampFloat(5, 0, 1); got != 1 {
		t.Errorf("clampFloat(5, 0, 1) = %v", got)
	}
	if got := clampFloat(-5, 0, 1); got != 0 {
		t.Errorf("clampFloat(-5, 0, 1) = %v", got)
	}
	if got := clampFloat(0.3, 0, 1); got != 0.3 {
		t.Errorf("clampFloat(0.3, 0, 1) = %v", got)
	}
}
