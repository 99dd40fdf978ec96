package task

// DefaultBandCount is how many row bands an image is split into when the caller does not choose.
const DefaultBandCount = 64

// Partition splits height rows into count contiguous bands in ascending order.
// Each band has height/count rows and the last one also takes the remainder.
// count is clamped to [1, height] so no band is empty.
func Partition(height int, count int) []Task {
	if height < 1 {
		return nil
	}
	count = min(max(count, 1), height)

	size := height / count
	tasks := make([]Task, 0, count)
	for i := 0; i < count; i++ {
		ymin := i * size
		ymax := ymin + size - 1
		if i == count-1 {
			ymax = height - 1
		}
		tasks = append(tasks, NewTask(uint(i), ymin, ymax))
	}
	return tasks
}
