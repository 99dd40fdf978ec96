package mandelbrot

import (
	"errors"
	"fmt"

	"mandelpng/palette"
)

const DefaultMaxIterations = 128

// Settings is the serializable description of a fractal evaluator.
type Settings struct {
	Z0            Complex                `json:"z0"`
	MaxIterations int                    `json:"max_iterations"`
	Mode          Mode                   `json:"mode"`
	Palette       palette.BailoutPalette `json:"palette"`
}

func DefaultSettings() Settings {
	return Settings{
		MaxIterations: DefaultMaxIterations,
		Mode:          NormalMode(),
		Palette:       palette.DefaultBailoutPalette(),
	}
}

func (s *Settings) String() string {
	output := "{Settings "
	output += fmt.Sprintf("Z0: %v ", s.Z0.Complex128())
	output += fmt.Sprintf("MaxIterations: %d ", s.MaxIterations)
	output += fmt.Sprintf("Mode: %v ", s.Mode)
	output += fmt.Sprintf("Palette: %v}", s.Palette)
	return output
}

func (s *Settings) Verify() error {
	if s.MaxIterations < 1 {
		return errors.New("max iterations must be at least 1")
	}
	if s.Mode.Kind != Normal && s.Mode.Kind != Julia {
		return fmt.Errorf("unknown mode: %d", s.Mode.Kind)
	}
	if err := s.Palette.Verify(); err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	return nil
}
