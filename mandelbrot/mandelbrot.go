package mandelbrot

import (
	"math"

	"mandelpng/palette"
)

// IterationsPerCycle is how many iterations one trip around the outer palette spans.
const IterationsPerCycle = 32.0

// Mandelbrot evaluates escape times and colors them. It is read only after
// NewMandelbrot so one value can be shared between goroutines.
type Mandelbrot struct {
	z0       complex128
	julia    complex128
	settings Settings
}

func NewMandelbrot(settings Settings) *Mandelbrot {
	return &Mandelbrot{
		z0:       settings.Z0.Complex128(),
		julia:    settings.Mode.C.Complex128(),
		settings: settings,
	}
}

func (m *Mandelbrot) Settings() Settings {
	return m.settings
}

func (m *Mandelbrot) MaxIterations() int {
	return m.settings.MaxIterations
}

// GetIterations returns the index of the iteration at which the orbit of c
// escapes, or MaxIterations when it never does.
//
// Normal mode starts at z0 and adds c each step. Julia mode starts at c and
// adds the fixed parameter.
func (m *Mandelbrot) GetIterations(c complex128) int {
	z, increment := m.z0, c
	if m.settings.Mode.Kind == Julia {
		z, increment = c, m.julia
	}
	return escapeTime(z, increment, m.settings.MaxIterations, m.settings.Palette.EscapeRadius)
}

// https://en.wikipedia.org/wiki/Plotting_algorithms_for_the_Mandelbrot_set#Unoptimized_na%C3%AFve_escape_time_algorithm
func escapeTime(z complex128, c complex128, maxIterations int, boundary float64) int {
	x, y := real(z), imag(z)
	cx, cy := real(c), imag(c)
	for iteration := 0; iteration < maxIterations; iteration++ {
		x, y = x*x-y*y+cx, 2*x*y+cy
		if x*x+y*y > boundary {
			return iteration
		}
	}
	return maxIterations
}

// GetColor maps an iteration count to a color. Saturated counts get the inner
// color; the rest cycle through the outer palette every IterationsPerCycle.
func (m *Mandelbrot) GetColor(iterations int) palette.Color {
	if iterations >= m.settings.MaxIterations {
		return m.settings.Palette.Inner
	}

	_, pos := math.Modf(float64(iterations) / IterationsPerCycle)
	color, ok := m.settings.Palette.Outer.Sample(pos)
	if !ok {
		return palette.White
	}
	return color
}
