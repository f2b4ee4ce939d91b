package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 0.99, expected: 0.99},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(-5, 0, 9); got != 0 {
		t.Fatalf("ClampInt(-5, 0, 9) = %d", got)
	}
	if got := ClampInt(12, 0, 9); got != 9 {
		t.Fatalf("ClampInt(12, 0, 9) = %d", got)
	}
	if got := ClampInt(4, 9, 0); got != 4 {
		t.Fatalf("ClampInt(4, 9, 0) = %d", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) || IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("IsFinite misclassified a value")
	}
}

func TestFlushDenormals32(t *testing.T) {
	if got := FlushDenormals32(1e-35); got != 0 {
		t.Fatalf("FlushDenormals32(1e-35) = %v", got)
	}
	if got := FlushDenormals32(-1e-35); got != 0 {
		t.Fatalf("FlushDenormals32(-1e-35) = %v", got)
	}
	if got := FlushDenormals32(0.25); got != 0.25 {
		t.Fatalf("FlushDenormals32(0.25) = %v", got)
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(0.001); math.Abs(got+60) > 1e-9 {
		t.Fatalf("LinearToDB(0.001) = %v want -60", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative input")
	}
}
