package task

import (
	"errors"
	"fmt"

	"mandelpng/mandelbrot"
	"mandelpng/palette"
	"mandelpng/viewport"
)

// Task is one band of image rows, Ymin through Ymax inclusive. Rendering it
// fills Results with the band's row-major RGB bytes.
type Task struct {
	ID            uint
	Ymin          int
	Ymax          int
	Results       []byte
	WorkerAddress string
}

func NewTask(id uint, ymin int, ymax int) Task {
	return Task{
		ID:   id,
		Ymin: ymin,
		Ymax: ymax,
	}
}

func (t *Task) String() string {
	output := "{Task "
	output += fmt.Sprintf("ID: %d ", t.ID)
	output += fmt.Sprintf("Rows: %d-%d ", t.Ymin, t.Ymax)
	output += fmt.Sprintf("Result Bytes: %d}", len(t.Results))
	return output
}

func (t *Task) Rows() int {
	return t.Ymax - t.Ymin + 1
}

// Done reports whether Results holds a full band for an image of the given width.
func (t *Task) Done(width int) bool {
	return len(t.Results) == width*t.Rows()*3
}

// Render computes every pixel of the band. Each pixel averages SuperSampling^2
// samples, truncating the mean. Samples are colored at twice their iteration
// count to stretch the contrast of the outer bands.
func (t *Task) Render(v viewport.Viewport, m *mandelbrot.Mandelbrot) {
	t.Results = make([]byte, v.Width*t.Rows()*3)

	offsets := v.SubPixelOffsets()
	samples := len(offsets) * len(offsets)

	for y := t.Ymin; y <= t.Ymax; y++ {
		for x := 0; x < v.Width; x++ {
			var r, g, b int
			for _, sx := range offsets {
				for _, sy := range offsets {
					wx, wy := v.ScreenToWorld(float64(x)+sx, float64(y)+sy)
					sample := m.GetColor(2 * m.GetIterations(complex(wx, wy)))
					r += int(sample.R)
					g += int(sample.G)
					b += int(sample.B)
				}
			}

			color := palette.Color{R: uint8(r / samples), G: uint8(g / samples), B: uint8(b / samples)}
			trySetPixel(t.Results, v.Width, x, y-t.Ymin, color)
		}
	}
}

// trySetPixel writes c at (x, y) of a row-major RGB buffer and reports whether
// it did. Out of range positions are skipped; partitioning never produces one.
func trySetPixel(data []byte, width int, x int, y int, c palette.Color) bool {
	if x < 0 || y < 0 || x >= width {
		return false
	}
	i := (x + y*width) * 3
	if i+2 >= len(data) {
		return false
	}
	data[i] = c.R
	data[i+1] = c.G
	data[i+2] = c.B
	return true
}

// Errors a coordinator hands back from GetTask. They cross the rpc boundary as
// plain strings so workers compare them with Error().
var (
	ErrAllTasksHandedOut = errors.New("all tasks handed out")
	ErrNoTaskAvailable   = errors.New("no task available")
)
