package palette

import "testing"

func TestPaletteSample(t *testing.T) {
	palette := NewPalette(
		NewColor(200, 0, 0),
		NewColor(0, 200, 0),
		NewColor(0, 0, 200),
		NewColor(0, 200, 200),
		NewColor(200, 200, 200),
	).MakeLooped()

	if palette.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", palette.Len())
	}

	tests := []struct {
		pos  float64
		want Color
	}{
		{0.0, NewColor(200, 0, 0)},
		{0.2, NewColor(0, 200, 0)},
		{0.1, NewColor(100, 100, 0)},
		{0.7, NewColor(100, 200, 200)},
		{1.0, NewColor(200, 0, 0)},
	}

	for _, tt := range tests {
		got, ok := palette.Sample(tt.pos)
		if !ok {
			t.Errorf("Sample(%v) reported no color", tt.pos)
			continue
		}
		if got != tt.want {
			t.Errorf("Sample(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestPaletteSampleSingleStop(t *testing.T) {
	stop := NewColor(100, 100, 100)
	palette := NewPalette(stop)

	for _, pos := range []float64{0, 0.25, 0.5, 0.99, 1} {
		got, ok := palette.Sample(pos)
		if !ok || got != stop {
			t.Errorf("Sample(%v) = %v, %t, want %v, true", pos, got, ok, stop)
		}
	}
}

func TestPaletteSampleEmpty(t *testing.T) {
	palette := NewPalette()

	for _, pos := range []float64{0, 0.5, 1} {
		if got, ok := palette.Sample(pos); ok {
			t.Errorf("Sample(%v) = %v, want no color", pos, got)
		}
	}
}

func TestPaletteSampleLastStop(t *testing.T) {
	palette := NewPalette(NewColor(1, 2, 3), NewColor(4, 5, 6), NewColor(7, 8, 9))

	if got, _ := palette.Sample(1); got != NewColor(7, 8, 9) {
		t.Errorf("Sample(1) = %v, want last stop", got)
	}
	if got, _ := palette.Sample(1.5); got != NewColor(7, 8, 9) {
		t.Errorf("Sample(1.5) = %v, want last stop", got)
	}
	if got, _ := palette.Sample(-1); got != NewColor(1, 2, 3) {
		t.Errorf("Sample(-1) = %v, want first stop", got)
	}
}

func TestMakeLooped(t *testing.T) {
	original := NewPalette(NewColor(1, 1, 1), NewColor(2, 2, 2))
	looped := original.MakeLooped()

	if looped.Len() != original.Len()+1 {
		t.Fatalf("Len() = %d, want %d", looped.Len(), original.Len()+1)
	}
	if looped.Colors[looped.Len()-1] != looped.Colors[0] {
		t.Errorf("last stop = %v, want first stop %v", looped.Colors[looped.Len()-1], looped.Colors[0])
	}
	if original.Len() != 2 {
		t.Errorf("MakeLooped modified the receiver: Len() = %d", original.Len())
	}

	first, _ := looped.Sample(0)
	last, _ := looped.Sample(1)
	if first != last {
		t.Errorf("Sample(0) = %v, Sample(1) = %v, want equal", first, last)
	}

	if empty := NewPalette().MakeLooped(); !empty.IsEmpty() {
		t.Errorf("looping an empty palette gave %d stops", empty.Len())
	}
}

func TestGenerate(t *testing.T) {
	palette := Generate(NewColor(0, 0, 0), NewColor(100, 200, 40), 4)

	want := []Color{
		NewColor(0, 0, 0),
		NewColor(25, 50, 10),
		NewColor(50, 100, 20),
		NewColor(75, 150, 30),
	}
	if palette.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", palette.Len(), len(want))
	}
	for i, c := range want {
		if palette.Colors[i] != c {
			t.Errorf("Colors[%d] = %v, want %v", i, palette.Colors[i], c)
		}
	}

	if Generate(White, Black, 0).Len() != 0 {
		t.Error("Generate with no colors should be empty")
	}
}

func TestDefaultBailoutPalette(t *testing.T) {
	bp := DefaultBailoutPalette()

	if bp.EscapeRadius != 4.0 {
		t.Errorf("EscapeRadius = %v, want 4", bp.EscapeRadius)
	}
	if bp.Inner != Black {
		t.Errorf("Inner = %v, want black", bp.Inner)
	}
	if bp.Outer.Len() != 5 {
		t.Errorf("Outer has %d stops, want 5", bp.Outer.Len())
	}
	if err := bp.Verify(); err != nil {
		t.Errorf("Verify() = %v", err)
	}

	bp.EscapeRadius = 0
	if err := bp.Verify(); err == nil {
		t.Error("Verify() accepted a zero escape radius")
	}
}
