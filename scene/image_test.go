package scene

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func TestNewImage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		length        int
		wantErr       bool
	}{
		{"exact", 4, 3, 36, false},
		{"short", 4, 3, 35, true},
		{"long", 4, 3, 37, true},
		{"empty", 0, 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImage(tt.width, tt.height, make([]byte, tt.length))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewImage(%d, %d, %d bytes) = %v, wantErr %t", tt.width, tt.height, tt.length, err, tt.wantErr)
			}
		})
	}
}

func TestImageAt(t *testing.T) {
	img, err := NewImage(2, 1, []byte{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	if got, want := img.At(1, 0), (color.RGBA{R: 4, G: 5, B: 6, A: 255}); got != want {
		t.Errorf("At(1, 0) = %v, want %v", got, want)
	}
	if got := img.At(2, 0); got != (color.RGBA{}) {
		t.Errorf("At(2, 0) = %v, want transparent", got)
	}
}

func TestEncodeFormats(t *testing.T) {
	img, err := NewImage(3, 2, []byte{
		255, 0, 0, 0, 255, 0, 0, 0, 255,
		10, 20, 30, 40, 50, 60, 70, 80, 90,
	})
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	for _, format := range Formats {
		var buf bytes.Buffer
		if err := Encode(&buf, img, format); err != nil {
			t.Errorf("Encode(%s): %v", format, err)
			continue
		}
		if buf.Len() == 0 {
			t.Errorf("Encode(%s) wrote nothing", format)
		}
	}

	if err := Encode(&bytes.Buffer{}, img, "gif"); err == nil {
		t.Error("Encode accepted an unknown format")
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	pix := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	img, err := NewImage(2, 2, pix)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, "png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			r, g, b, _ := decoded.At(x, y).RGBA()
			p := (x + y*2) * 3
			if uint8(r>>8) != pix[p] || uint8(g>>8) != pix[p+1] || uint8(b>>8) != pix[p+2] {
				t.Errorf("pixel (%d, %d) = (%d, %d, %d), want %v", x, y, r>>8, g>>8, b>>8, pix[p:p+3])
			}
		}
	}
}
