package worker

import (
	"fmt"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"

	"mandelpng/mandelbrot"
	"mandelpng/misc"
	"mandelpng/scene"
	"mandelpng/task"
)

// Worker renders row bands handed out by a coordinator.
type Worker struct {
	logger         bslogger.Logger
	mandelbrot     *mandelbrot.Mandelbrot
	scene          scene.Scene
	settings       Settings
	tasksCompleted int

	Client multirpc.TcpClient
}

// NewWorker connects to the coordinator, registers and fetches the scene to render.
func NewWorker(settings Settings) (*Worker, error) {
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	worker := &Worker{
		logger:   misc.NewLogger(fmt.Sprintf("Worker %s", settings.Name)),
		settings: settings,
		Client:   multirpc.NewTcpClient(settings.CoordinatorAddress, settings.CoordinatorAddress),
	}

	// Register with the coordinator
	if err := worker.Client.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to coordinator at %s: %w", settings.CoordinatorAddress, err)
	}
	var nothing misc.Nothing
	if err := worker.Client.Call("Coordinator.RegisterWorker", settings.Name, &nothing); err != nil {
		worker.Client.Disconnect()
		return nil, fmt.Errorf("registering with coordinator: %w", err)
	}

	// Get the scene from the coordinator
	if err := worker.Client.Call("Coordinator.GetScene", nothing, &worker.scene); err != nil {
		worker.leave()
		return nil, fmt.Errorf("fetching scene: %w", err)
	}
	if err := worker.scene.Verify(); err != nil {
		worker.leave()
		return nil, fmt.Errorf("coordinator sent an invalid scene: %w", err)
	}
	worker.mandelbrot = mandelbrot.NewMandelbrot(worker.scene.Fractal)

	return worker, nil
}

func (w *Worker) TasksCompleted() int {
	return w.tasksCompleted
}

// ProcessTasks renders bands until the coordinator reports that every band is
// done, then deregisters. When no band is free it polls again after PollInterval.
func (w *Worker) ProcessTasks() error {
	w.logger.Info("Processing tasks")

	var nothing misc.Nothing
	var startTime = time.Now()
	stopRollCall := make(chan struct{})
	defer w.leave()
	defer close(stopRollCall)
	go w.answerRollCall(stopRollCall)

	for {
		var taskTodo task.Task

		err := w.Client.Call("Coordinator.GetTask", w.settings.Name, &taskTodo)
		if err != nil {
			switch err.Error() {
			case task.ErrAllTasksHandedOut.Error():
				// This is an expected error. No more work to do
				w.logger.Infof("Done processing %d tasks in %s", w.tasksCompleted, time.Since(startTime))
				return nil
			case task.ErrNoTaskAvailable.Error():
				time.Sleep(w.settings.PollInterval)
				continue
			}
			return fmt.Errorf("unable to get a task: %w", err)
		}

		taskTodo.Render(w.scene.Viewport, w.mandelbrot)
		w.logger.Debugf("Rendered %s", taskTodo.String())

		err = w.Client.Call("Coordinator.ReturnTask", taskTodo, &nothing)
		if err != nil {
			return fmt.Errorf("unable to return task %d: %w", taskTodo.ID, err)
		}
		w.tasksCompleted++
	}
}

// answerRollCall tells the coordinator this worker is alive every
// RollCallInterval, so a long band render is not mistaken for a dead worker.
func (w *Worker) answerRollCall(stop <-chan struct{}) {
	rollCall := time.NewTicker(w.settings.RollCallInterval)
	defer rollCall.Stop()

	for {
		select {
		case <-rollCall.C:
			var present bool
			err := w.Client.Call("Coordinator.RollCall", w.settings.Name, &present)
			if err != nil {
				w.logger.Warningf("Unable to answer roll call: %s", err)
				continue
			}
			if !present {
				w.logger.Warning("Coordinator dropped this worker after a missed roll call")
			}
		case <-stop:
			return
		}
	}
}

func (w *Worker) leave() {
	var nothing misc.Nothing
	misc.CheckError(w.Client.Call("Coordinator.DeRegisterWorker", w.settings.Name, &nothing), w.logger, misc.Debug)
	misc.CheckError(w.Client.Disconnect(), w.logger, misc.Warning)
}
