package palette

import (
	"encoding/json"
	"testing"
)

func TestLerpUint8(t *testing.T) {
	tests := []struct {
		a, b   uint8
		weight float64
		want   uint8
	}{
		{100, 200, 0.75, 175},
		{200, 100, 0.75, 125},
		{100, 200, 1.0, 200},
		{200, 100, 1.0, 100},
		{0, 255, 0, 0},
		{255, 0, 0, 255},
		{255, 0, 1, 0},
	}

	for _, tt := range tests {
		if got := lerpUint8(tt.a, tt.b, tt.weight); got != tt.want {
			t.Errorf("lerpUint8(%d, %d, %v) = %d, want %d", tt.a, tt.b, tt.weight, got, tt.want)
		}
	}
}

func TestColorLerp(t *testing.T) {
	black := NewColor(0, 0, 0)
	other := NewColor(200, 160, 120)

	if got, want := black.Lerp(other, 0.5), NewColor(100, 80, 60); got != want {
		t.Errorf("Lerp forward = %v, want %v", got, want)
	}
	if got, want := other.Lerp(black, 0.5), NewColor(100, 80, 60); got != want {
		t.Errorf("Lerp backward = %v, want %v", got, want)
	}
}

func TestColorLerpStaysBetweenEndpoints(t *testing.T) {
	weights := []float64{0, 0.01, 0.1, 0.25, 0.333, 0.5, 0.666, 0.75, 0.9, 0.99, 1}
	for a := 0; a < 256; a += 15 {
		for b := 0; b < 256; b += 17 {
			for _, w := range weights {
				got := lerpUint8(uint8(a), uint8(b), w)
				lo, hi := uint8(min(a, b)), uint8(max(a, b))
				if got < lo || got > hi {
					t.Fatalf("lerpUint8(%d, %d, %v) = %d, outside [%d, %d]", a, b, w, got, lo, hi)
				}
			}
			if got := lerpUint8(uint8(a), uint8(b), 0); got != uint8(a) {
				t.Fatalf("lerpUint8(%d, %d, 0) = %d, want %d", a, b, got, a)
			}
			if got := lerpUint8(uint8(a), uint8(b), 1); got != uint8(b) {
				t.Fatalf("lerpUint8(%d, %d, 1) = %d, want %d", a, b, got, b)
			}
		}
	}
}

func TestColorLerpClampsWeight(t *testing.T) {
	from, to := NewColor(10, 20, 30), NewColor(110, 120, 130)

	if got := from.Lerp(to, -1); got != from {
		t.Errorf("Lerp(-1) = %v, want %v", got, from)
	}
	if got := from.Lerp(to, 2); got != to {
		t.Errorf("Lerp(2) = %v, want %v", got, to)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := NewColor(255, 128, 0).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (0xffff, 0x8080, 0x0, 0xffff)", r, g, b, a)
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(NewColor(1, 2, 3))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "[1,2,3]" {
		t.Errorf("Marshal = %s, want [1,2,3]", data)
	}

	var c Color
	if err := json.Unmarshal([]byte(`{"r": 1}`), &c); err == nil {
		t.Error("Unmarshal of an object should fail")
	}
	if err := json.Unmarshal([]byte(`[1, 2, 300]`), &c); err == nil {
		t.Error("Unmarshal of an out of range channel should fail")
	}
}
