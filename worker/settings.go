package worker

import (
	"fmt"
	"os"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelpng/misc"
)

type Settings struct {
	logger bslogger.Logger

	CoordinatorAddress string
	Name               string
	PollInterval       time.Duration
	RollCallInterval   time.Duration
}

// DefaultName identifies a worker by host name and process id.
func DefaultName() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "worker"
	}
	return fmt.Sprintf("%s-%d", hostname, os.Getpid())
}

func (s *Settings) String() string {
	output := "\nWorker settings\n"
	output += fmt.Sprintf("Coordinator Address: %s\n", s.CoordinatorAddress)
	output += fmt.Sprintf("Name: %s\n", s.Name)
	output += fmt.Sprintf("Poll Interval: %s\n", s.PollInterval)
	output += fmt.Sprintf("Roll Call Interval: %s\n", s.RollCallInterval)
	return output
}

func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("WorkerSettings")

	if s.CoordinatorAddress == "" {
		localAddress, err := misc.GetLocalAddress()
		if err != nil {
			return err
		}
		s.CoordinatorAddress = fmt.Sprintf("%s:%s", localAddress, "51000")
	}
	if s.Name == "" {
		s.Name = DefaultName()
	}
	if s.PollInterval <= 0 {
		s.PollInterval = 100 * time.Millisecond
	}
	if s.RollCallInterval <= 0 {
		s.RollCallInterval = 10 * time.Second
	}

	s.logger.Debug(s.String())
	return nil
}
