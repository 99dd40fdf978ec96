package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"mandelpng/mandelbrot"
	"mandelpng/misc"
	"mandelpng/viewport"
)

// Scene is everything needed to produce one image.
type Scene struct {
	Fractal  mandelbrot.Settings `json:"fractal"`
	Viewport viewport.Viewport   `json:"viewport"`
}

func Default() Scene {
	return Scene{
		Fractal:  mandelbrot.DefaultSettings(),
		Viewport: viewport.Default(),
	}
}

func (s *Scene) String() string {
	output := "{Scene "
	output += fmt.Sprintf("Fractal: %s ", s.Fractal.String())
	output += fmt.Sprintf("Viewport: %s}", s.Viewport.String())
	return output
}

func (s *Scene) Verify() error {
	if err := s.Fractal.Verify(); err != nil {
		return fmt.Errorf("fractal: %w", err)
	}
	if err := s.Viewport.Verify(); err != nil {
		return fmt.Errorf("viewport: %w", err)
	}
	return nil
}

// Parse reads a JSON scene. Fields missing from the input keep their defaults.
func Parse(r io.Reader) (Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Scene{}, fmt.Errorf("reading scene: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Scene{}, fmt.Errorf("reading scene: no input")
	}

	s := Default()
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("parsing scene: %w", err)
	}
	if err := s.Verify(); err != nil {
		return Scene{}, fmt.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

// Load parses a scene from r. In strict mode any failure is returned;
// otherwise it is logged and the default scene is used instead.
func Load(r io.Reader, strict bool) (Scene, error) {
	logger := misc.NewLogger("Scene")

	s, err := Parse(r)
	if err != nil {
		if strict {
			return Scene{}, err
		}
		logger.Warningf("Using the default scene: %s", err)
		return Default(), nil
	}
	logger.Debug(s.String())
	return s, nil
}

// Marshal returns the scene as JSON, indented when pretty is set.
func (s Scene) Marshal(pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
