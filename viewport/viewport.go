package viewport

import (
	"errors"
	"fmt"

	"mandelpng/misc"
)

// Viewport places an image of Width x Height pixels over the complex plane.
// Zoom is the world half height; the half width follows the aspect ratio.
type Viewport struct {
	Width         int     `json:"image_width"`
	Height        int     `json:"image_height"`
	CenterX       float64 `json:"cx"`
	CenterY       float64 `json:"cy"`
	Zoom          float64 `json:"zoom"`
	SuperSampling int     `json:"supersampling"`
}

func Default() Viewport {
	return Viewport{
		Width:         1920,
		Height:        1080,
		CenterX:       -0.5,
		CenterY:       0.0,
		Zoom:          2.0,
		SuperSampling: 2,
	}
}

func (v *Viewport) String() string {
	output := "{Viewport "
	output += fmt.Sprintf("Width: %d ", v.Width)
	output += fmt.Sprintf("Height: %d ", v.Height)
	output += fmt.Sprintf("CenterX: %f ", v.CenterX)
	output += fmt.Sprintf("CenterY: %f ", v.CenterY)
	output += fmt.Sprintf("Zoom: %f ", v.Zoom)
	output += fmt.Sprintf("SuperSampling: %d}", v.SuperSampling)
	return output
}

func (v *Viewport) Verify() error {
	if v.Width < 1 || v.Height < 1 {
		return fmt.Errorf("image size must be at least 1x1, got %dx%d", v.Width, v.Height)
	}
	if !(v.Zoom > 0) {
		return errors.New("zoom must be greater than 0")
	}
	if v.SuperSampling < 1 {
		return errors.New("supersampling must be at least 1")
	}
	return nil
}

func (v *Viewport) AspectRatio() float64 {
	return float64(v.Width) / float64(v.Height)
}

// Bounds returns the world rectangle covered by the image.
func (v *Viewport) Bounds() (xMin, xMax, yMin, yMax float64) {
	halfWidth := v.Zoom * v.AspectRatio()
	return v.CenterX - halfWidth, v.CenterX + halfWidth, v.CenterY - v.Zoom, v.CenterY + v.Zoom
}

// ScreenToWorld maps a possibly fractional pixel position to world coordinates.
// (0, 0) is the (xMin, yMin) corner and (Width, Height) the (xMax, yMax) one.
func (v *Viewport) ScreenToWorld(screenX float64, screenY float64) (float64, float64) {
	xMin, xMax, yMin, yMax := v.Bounds()
	return misc.Remap(screenX, 0, float64(v.Width), xMin, xMax),
		misc.Remap(screenY, 0, float64(v.Height), yMin, yMax)
}

// SubPixelOffsets returns the SuperSampling evenly spaced offsets inside one pixel along an axis.
func (v *Viewport) SubPixelOffsets() []float64 {
	samples := max(v.SuperSampling, 1)
	offsets := make([]float64, samples)
	for i := range offsets {
		offsets[i] = float64(i) / float64(samples)
	}
	return offsets
}
