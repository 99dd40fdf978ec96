package palette

import (
	"errors"
	"fmt"
)

// DefaultEscapeRadius is the squared magnitude bailout for radius 2.
const DefaultEscapeRadius = 4.0

// BailoutPalette colors an escape-time result: Inner for points that never
// escape and Outer, sampled cyclically, for those that do.
type BailoutPalette struct {
	Inner        Color   `json:"inner"`
	Outer        Palette `json:"outer"`
	EscapeRadius float64 `json:"escape_radius"`
}

// DefaultOuter is the deep blue, sky, white and amber ramp, looped.
func DefaultOuter() Palette {
	return NewPalette(
		NewColor(0, 7, 100),
		NewColor(32, 107, 203),
		NewColor(237, 255, 255),
		NewColor(255, 170, 0),
	).MakeLooped()
}

func DefaultBailoutPalette() BailoutPalette {
	return BailoutPalette{
		Inner:        Black,
		Outer:        DefaultOuter(),
		EscapeRadius: DefaultEscapeRadius,
	}
}

func (bp BailoutPalette) String() string {
	return fmt.Sprintf("{BailoutPalette Inner: %v Stops: %d EscapeRadius: %f}", bp.Inner, bp.Outer.Len(), bp.EscapeRadius)
}

func (bp *BailoutPalette) Verify() error {
	if !(bp.EscapeRadius > 0) {
		return errors.New("escape radius must be greater than 0")
	}
	return nil
}
