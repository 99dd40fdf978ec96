package coordinator

import (
	"fmt"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"mandelpng/misc"
	"mandelpng/task"
)

type Settings struct {
	logger bslogger.Logger

	Bands         int
	HeartBeat     time.Duration
	RollCall      time.Duration // workers silent for longer are dropped
	ServerAddress string
}

func (s *Settings) String() string {
	output := "\nCoordinator settings\n"
	output += fmt.Sprintf("Bands: %d\n", s.Bands)
	output += fmt.Sprintf("Heart Beat: %s\n", s.HeartBeat)
	output += fmt.Sprintf("Roll Call: %s\n", s.RollCall)
	output += fmt.Sprintf("My Address: %s\n", s.ServerAddress)
	return output
}

func (s *Settings) Verify() error {
	s.logger = misc.NewLogger("CoordinatorSettings")

	if s.Bands <= 0 {
		s.Bands = task.DefaultBandCount
	}
	if s.HeartBeat <= 0 {
		s.HeartBeat = 30 * time.Second
	}
	if s.RollCall <= 0 {
		s.RollCall = time.Minute
	}
	if s.ServerAddress == "" {
		localAddress, err := misc.GetLocalAddress()
		if err != nil {
			return err
		}
		s.ServerAddress = fmt.Sprintf("%s:%s", localAddress, "51000")
	}

	s.logger.Debug(s.String())
	return nil
}
