package coordinator

import (
	"fmt"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BrugadaSyndrome/multirpc"

	"mandelpng/misc"
	"mandelpng/scene"
	"mandelpng/task"
)

// Coordinator splits a scene into row bands and hands them to workers over rpc.
// Wait assembles the bands once every one of them has come back.
type Coordinator struct {
	bands          []task.Task
	done           chan struct{}
	lastSeen       map[string]time.Time
	logger         bslogger.Logger
	mutex          sync.Mutex
	scene          scene.Scene
	settings       Settings
	stopOnce       sync.Once
	stopTickers    chan struct{}
	taskCount      int
	tasksDone      map[uint]task.Task
	tasksHandedOut map[string]map[uint]task.Task // keep track of all tasks workers have
	tasksTodo      []task.Task

	Server multirpc.TcpServer
}

// NewCoordinator starts serving the scene's bands at settings.ServerAddress.
func NewCoordinator(s scene.Scene, settings Settings) (*Coordinator, error) {
	coordinator, err := newCoordinator(s, settings)
	if err != nil {
		return nil, err
	}

	// Start up the rpc tcp server to allow workers to communicate with the coordinator
	coordinator.Server = multirpc.NewTcpServer(coordinator, coordinator.settings.ServerAddress, "CoordinatorServer")
	if err := coordinator.Server.Run(); err != nil {
		return nil, fmt.Errorf("starting coordinator server at %s: %w", coordinator.settings.ServerAddress, err)
	}

	go coordinator.tickers()
	return coordinator, nil
}

func newCoordinator(s scene.Scene, settings Settings) (*Coordinator, error) {
	if err := s.Verify(); err != nil {
		return nil, err
	}
	if err := settings.Verify(); err != nil {
		return nil, err
	}

	tasks := s.Tasks(settings.Bands)
	coordinator := &Coordinator{
		bands:          tasks,
		done:           make(chan struct{}),
		lastSeen:       make(map[string]time.Time),
		logger:         misc.NewLogger("Coordinator"),
		scene:          s,
		settings:       settings,
		stopTickers:    make(chan struct{}),
		taskCount:      len(tasks),
		tasksDone:      make(map[uint]task.Task),
		tasksHandedOut: make(map[string]map[uint]task.Task),
		tasksTodo:      append([]task.Task(nil), tasks...),
	}
	coordinator.logger.Infof("Generated %d tasks for a %dx%d image", len(tasks), s.Viewport.Width, s.Viewport.Height)
	return coordinator, nil
}

func (c *Coordinator) tickers() {
	rollCall := time.NewTicker(c.settings.RollCall)
	defer rollCall.Stop()
	heartBeat := time.NewTicker(c.settings.HeartBeat)
	defer heartBeat.Stop()

	for {
		select {
		case now := <-rollCall.C:
			c.logger.Debug("Roll call ticker")
			c.rollCall(now)
		case <-heartBeat.C:
			c.mutex.Lock()
			c.logger.Infof("Tasks [Todo: %s] [Handed out: %s] [Done: %s] | Workers [%d]",
				misc.Count(len(c.tasksTodo)), misc.Count(c.handedOutCount()), misc.Count(len(c.tasksDone)), len(c.tasksHandedOut))
			c.mutex.Unlock()
		case <-c.stopTickers:
			return
		}
	}
}

// rollCall drops every worker not heard from within the roll call period and
// requeues the bands it was holding.
func (c *Coordinator) rollCall(now time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for workerAddress, seen := range c.lastSeen {
		if now.Sub(seen) <= c.settings.RollCall {
			continue
		}
		c.logger.Warningf("Worker %s missed roll call, last seen %s ago", workerAddress, now.Sub(seen).Round(time.Millisecond))
		misc.CheckError(c.removeWorker(workerAddress), c.logger, misc.Warning)
	}
}

// removeWorker expects the mutex to be held.
func (c *Coordinator) removeWorker(workerAddress string) error {
	tasks, ok := c.tasksHandedOut[workerAddress]
	if !ok {
		return fmt.Errorf("worker %s is not registered", workerAddress)
	}

	// Put tasks this worker has not returned yet back into the todo pool
	for _, t := range tasks {
		t.WorkerAddress = ""
		c.tasksTodo = append(c.tasksTodo, t)
	}
	if len(tasks) > 0 {
		c.logger.Warningf("Worker %s left with %d tasks outstanding, requeued them", workerAddress, len(tasks))
	}
	delete(c.tasksHandedOut, workerAddress)
	delete(c.lastSeen, workerAddress)

	c.logger.Infof("Worker left: %s", workerAddress)
	return nil
}

// handedOutCount expects the mutex to be held.
func (c *Coordinator) handedOutCount() int {
	count := 0
	for _, tasks := range c.tasksHandedOut {
		count += len(tasks)
	}
	return count
}

// Wait blocks until every band has been returned and assembles the image.
func (c *Coordinator) Wait() (scene.Image, error) {
	<-c.done

	c.mutex.Lock()
	defer c.mutex.Unlock()
	bands := make([]task.Task, 0, len(c.tasksDone))
	for _, t := range c.tasksDone {
		bands = append(bands, t)
	}
	return scene.Assemble(c.scene.Viewport.Width, c.scene.Viewport.Height, bands)
}

// Stop shuts down the rpc server. Calling it again does nothing.
func (c *Coordinator) Stop() error {
	var err error
	c.stopOnce.Do(func() {
		close(c.stopTickers)
		if c.Server != (multirpc.TcpServer{}) {
			err = c.Server.Stop()
		}
	})
	return err
}

func (c *Coordinator) RegisterWorker(workerAddress string, reply *misc.Nothing) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.tasksHandedOut[workerAddress]; ok {
		return fmt.Errorf("worker %s is already registered", workerAddress)
	}
	// Track all tasks this worker checks out
	c.tasksHandedOut[workerAddress] = make(map[uint]task.Task)
	c.lastSeen[workerAddress] = time.Now()

	c.logger.Infof("Worker joined: %s", workerAddress)
	return nil
}

func (c *Coordinator) DeRegisterWorker(workerAddress string, reply *misc.Nothing) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.removeWorker(workerAddress)
}

// RollCall marks the worker as alive. present is false once the worker has
// been dropped for missing a roll call.
func (c *Coordinator) RollCall(workerAddress string, present *bool) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	_, *present = c.tasksHandedOut[workerAddress]
	if *present {
		c.lastSeen[workerAddress] = time.Now()
	}
	return nil
}

func (c *Coordinator) GetScene(nothing misc.Nothing, reply *scene.Scene) error {
	*reply = c.scene
	return nil
}

func (c *Coordinator) GetTask(workerAddress string, reply *task.Task) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if len(c.tasksDone) == c.taskCount {
		return task.ErrAllTasksHandedOut
	}
	handedOut, ok := c.tasksHandedOut[workerAddress]
	if !ok {
		return fmt.Errorf("worker %s is not registered", workerAddress)
	}
	c.lastSeen[workerAddress] = time.Now()
	if len(c.tasksTodo) == 0 {
		return task.ErrNoTaskAvailable
	}

	todo := c.tasksTodo[0]
	c.tasksTodo = c.tasksTodo[1:]
	todo.WorkerAddress = workerAddress
	handedOut[todo.ID] = todo
	*reply = todo
	return nil
}

func (c *Coordinator) ReturnTask(done task.Task, reply *misc.Nothing) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if done.ID >= uint(len(c.bands)) {
		return fmt.Errorf("unknown task %d", done.ID)
	}
	if band := c.bands[done.ID]; done.Ymin != band.Ymin || done.Ymax != band.Ymax {
		return fmt.Errorf("task %d returned rows %d-%d, expected %d-%d", done.ID, done.Ymin, done.Ymax, band.Ymin, band.Ymax)
	}
	if !done.Done(c.scene.Viewport.Width) {
		return fmt.Errorf("task %d returned %d bytes, expected %d", done.ID, len(done.Results), c.scene.Viewport.Width*done.Rows()*3)
	}
	if handedOut, ok := c.tasksHandedOut[done.WorkerAddress]; ok {
		delete(handedOut, done.ID)
		c.lastSeen[done.WorkerAddress] = time.Now()
	}
	if _, ok := c.tasksDone[done.ID]; ok {
		c.logger.Debugf("Ignoring duplicate result for task %d", done.ID)
		return nil
	}
	c.tasksDone[done.ID] = done

	if len(c.tasksDone) == c.taskCount {
		c.logger.Infof("All %d tasks done", c.taskCount)
		close(c.done)
	}
	return nil
}
