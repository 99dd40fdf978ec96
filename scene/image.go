package scene

import (
	"fmt"
	"image"
	"image/color"
)

// Image is a finished render: Width*Height pixels as row-major RGB bytes.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage wraps pix, which must hold exactly width*height*3 bytes.
func NewImage(width int, height int, pix []byte) (Image, error) {
	if width < 1 || height < 1 {
		return Image{}, fmt.Errorf("image size must be at least 1x1, got %dx%d", width, height)
	}
	if want := width * height * 3; len(pix) != want {
		return Image{}, fmt.Errorf("image %dx%d needs %d bytes of pixel data, got %d", width, height, want, len(pix))
	}
	return Image{Width: width, Height: height, Pix: pix}, nil
}

func (i Image) ColorModel() color.Model {
	return color.RGBAModel
}

func (i Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.Width, i.Height)
}

func (i Image) At(x int, y int) color.Color {
	if x < 0 || y < 0 || x >= i.Width || y >= i.Height {
		return color.RGBA{}
	}
	p := (x + y*i.Width) * 3
	return color.RGBA{R: i.Pix[p], G: i.Pix[p+1], B: i.Pix[p+2], A: 255}
}
