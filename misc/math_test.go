package misc

import (
	"math"
	"testing"
)

func TestRemap(t *testing.T) {
	tests := []struct {
		v, inLo, inHi, outLo, outHi float64
		want                        float64
	}{
		{0, 0, 10, -1, 1, -1},
		{10, 0, 10, -1, 1, 1},
		{5, 0, 10, -1, 1, 0},
		{2.5, 0, 10, 0, 100, 25},
		{1, 0, 2, 4, 2, 3},
	}

	for _, tt := range tests {
		if got := Remap(tt.v, tt.inLo, tt.inHi, tt.outLo, tt.outHi); got != tt.want {
			t.Errorf("Remap(%v, %v, %v, %v, %v) = %v, want %v", tt.v, tt.inLo, tt.inHi, tt.outLo, tt.outHi, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-0.5, 0},
		{0.25, 0.25},
		{1.5, 1},
		{math.NaN(), 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 1); got != tt.want {
			t.Errorf("Clamp(%v, 0, 1) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	if got := Count(2073600); got != "2,073,600" {
		t.Errorf("Count(2073600) = %q, want %q", got, "2,073,600")
	}
}
