package palette

import (
	"encoding/json"
	"fmt"

	"mandelpng/misc"
)

// Color is an opaque 8-bit RGB triple. It serializes as the array [r, g, b].
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black = Color{R: 0, G: 0, B: 0}
	White = Color{R: 255, G: 255, B: 255}
)

func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) String() string {
	return fmt.Sprintf("{Color R: %d G: %d B: %d}", c.R, c.G, c.B)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Lerp moves each channel from c toward to by weight, clamped to [0, 1].
func (c Color) Lerp(to Color, weight float64) Color {
	weight = misc.Clamp(weight, 0, 1)
	return Color{
		R: lerpUint8(c.R, to.R, weight),
		G: lerpUint8(c.G, to.G, weight),
		B: lerpUint8(c.B, to.B, weight),
	}
}

// lerpUint8 always steps up from the smaller endpoint so the channel cannot wrap.
func lerpUint8(a, b uint8, weight float64) uint8 {
	if b >= a {
		return a + uint8(float64(b-a)*weight)
	}
	return b + uint8(float64(a-b)*(1-weight))
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint8{c.R, c.G, c.B})
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var channels [3]uint8
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("color must be an [r, g, b] array: %w", err)
	}
	c.R, c.G, c.B = channels[0], channels[1], channels[2]
	return nil
}
