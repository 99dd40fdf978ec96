package palette

import "mandelpng/misc"

// Palette is an ordered ramp of color stops sampled by a position in [0, 1].
type Palette struct {
	Colors []Color `json:"colors"`
}

func NewPalette(colors ...Color) Palette {
	return Palette{Colors: colors}
}

// Generate builds a ramp of numberColors steps starting at start and heading toward end.
// The end color itself is not included so consecutive ramps can be chained.
func Generate(start Color, end Color, numberColors int) Palette {
	palette := Palette{Colors: make([]Color, 0, max(numberColors, 0))}
	for j := 0; j < numberColors; j++ {
		fraction := float64(j) / float64(numberColors)
		palette.Colors = append(palette.Colors, start.Lerp(end, fraction))
	}
	return palette
}

func (p Palette) IsEmpty() bool {
	return len(p.Colors) == 0
}

func (p Palette) Len() int {
	return len(p.Colors)
}

// Sample returns the color at pos. The boolean is false only for an empty palette.
func (p Palette) Sample(pos float64) (Color, bool) {
	if p.IsEmpty() {
		return Color{}, false
	}

	pos = misc.Clamp(pos, 0, 1)
	if pos >= 1 {
		return p.Colors[len(p.Colors)-1], true
	}

	index := float64(len(p.Colors)-1) * pos
	i := int(index)
	weight := index - float64(i)
	if i+1 < len(p.Colors) {
		return p.Colors[i].Lerp(p.Colors[i+1], weight), true
	}
	return p.Colors[i], true
}

// MakeLooped returns a copy of p with its first stop repeated at the end, so that
// sampling 0 and 1 give the same color. An empty palette is returned unchanged.
func (p Palette) MakeLooped() Palette {
	if p.IsEmpty() {
		return p
	}
	colors := make([]Color, len(p.Colors), len(p.Colors)+1)
	copy(colors, p.Colors)
	return Palette{Colors: append(colors, p.Colors[0])}
}
