package scene

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"mandelpng/mandelbrot"
	"mandelpng/misc"
	"mandelpng/task"
)

// renderBand is swapped out by tests to simulate slow or failing workers.
var renderBand = (*task.Task).Render

// BandCount resolves a requested band count. Zero or less sizes the work to
// the available parallelism.
func BandCount(requested int) int {
	if requested <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return requested
}

// Tasks splits the scene into row bands ready to be rendered.
func (s *Scene) Tasks(bands int) []task.Task {
	return task.Partition(s.Viewport.Height, BandCount(bands))
}

// Render draws the scene with one goroutine per row band and assembles the
// bands in row order. A band that panics fails the whole render.
func (s *Scene) Render(bands int) (Image, error) {
	logger := misc.NewLogger("Scene")
	if err := s.Verify(); err != nil {
		return Image{}, err
	}

	startTime := time.Now()
	m := mandelbrot.NewMandelbrot(s.Fractal)
	tasks := s.Tasks(bands)
	errs := make([]error, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i := range tasks {
		go func(i int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("rendering rows %d-%d: %v", tasks[i].Ymin, tasks[i].Ymax, r)
				}
			}()
			renderBand(&tasks[i], s.Viewport, m)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Image{}, err
		}
	}

	img, err := Assemble(s.Viewport.Width, s.Viewport.Height, tasks)
	if err != nil {
		return Image{}, err
	}
	logger.Infof("Rendered %s pixels in %d bands in %s", misc.Count(img.Width*img.Height), len(tasks), time.Since(startTime))
	return img, nil
}

// Assemble concatenates rendered bands in ascending row order, whatever
// order they arrive in. The bands must tile the image exactly.
func Assemble(width int, height int, bands []task.Task) (Image, error) {
	ordered := make([]task.Task, len(bands))
	copy(ordered, bands)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Ymin < ordered[j].Ymin
	})

	pix := make([]byte, 0, width*height*3)
	next := 0
	for _, band := range ordered {
		if band.Ymin != next {
			return Image{}, fmt.Errorf("band %d starts at row %d, expected row %d", band.ID, band.Ymin, next)
		}
		if !band.Done(width) {
			return Image{}, fmt.Errorf("band %d has %d bytes, expected %d", band.ID, len(band.Results), width*band.Rows()*3)
		}
		pix = append(pix, band.Results...)
		next = band.Ymax + 1
	}
	return NewImage(width, height, pix)
}
