package main

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"mandelpng/worker"
)

type workerOptions struct {
	coordinatorAddress string
	count              int
	name               string
	pollInterval       time.Duration
	rollCallInterval   time.Duration
}

func workerCmd() *cobra.Command {
	options := workerOptions{}

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Render row bands for a coordinator until the image is done",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runWorkers(options)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.coordinatorAddress, "coordinator", "c", "", "coordinator address, defaults to this host's address on port 51000")
	flags.IntVarP(&options.count, "count", "n", 1, "number of workers to start")
	flags.StringVar(&options.name, "name", "", "worker name prefix, defaults to host name and pid")
	flags.DurationVar(&options.pollInterval, "poll", 100*time.Millisecond, "wait between requests while no band is free")
	flags.DurationVar(&options.rollCallInterval, "roll-call", 10*time.Second, "how often to tell the coordinator this worker is alive")

	return cmd
}

func runWorkers(options workerOptions) error {
	if options.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", options.count)
	}

	var wg sync.WaitGroup
	errs := make([]error, options.count)

	// Start up the requested amount of workers
	for i := 0; i < options.count; i++ {
		settings := worker.Settings{
			CoordinatorAddress: options.coordinatorAddress,
			PollInterval:       options.pollInterval,
			RollCallInterval:   options.rollCallInterval,
		}
		if options.name != "" {
			settings.Name = fmt.Sprintf("%s-%d", options.name, i)
		} else if options.count > 1 {
			// Settings.Verify only adds host and pid, which every worker here shares
			settings.Name = fmt.Sprintf("%s-%d", worker.DefaultName(), i)
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w, err := worker.NewWorker(settings)
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = w.ProcessTasks()
		}(i)
	}

	// Wait for all workers to be done with their work
	wg.Wait()
	return errors.Join(errs...)
}
