package main

import (
	"time"

	"github.com/spf13/cobra"

	"mandelpng/coordinator"
	"mandelpng/misc"
	"mandelpng/task"
)

type coordinatorOptions struct {
	renderOptions

	address   string
	heartBeat time.Duration
	rollCall  time.Duration
}

func coordinatorCmd() *cobra.Command {
	options := coordinatorOptions{}

	cmd := &cobra.Command{
		Use:   "coordinator",
		Short: "Serve a scene's row bands to workers and write the assembled image",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runCoordinator(cmd, options)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.address, "address", "a", "", "address to listen on, defaults to this host's address on port 51000")
	flags.DurationVar(&options.heartBeat, "heartbeat", 30*time.Second, "how often to log progress")
	flags.DurationVar(&options.rollCall, "roll-call", time.Minute, "drop workers silent for longer and requeue their bands")
	flags.IntVarP(&options.bands, "bands", "b", task.DefaultBandCount, "row bands to hand out")
	flags.StringVarP(&options.format, "format", "f", "png", "image format: png, jpeg, bmp or tiff")
	flags.StringVarP(&options.output, "output", "o", "mandelbrot.png", "image file to write, - for stdout")
	flags.StringVarP(&options.scene, "scene", "s", "-", "scene JSON file, - for stdin")
	flags.BoolVar(&options.strict, "strict", false, "fail on a malformed scene instead of rendering the default one")

	return cmd
}

func runCoordinator(cmd *cobra.Command, options coordinatorOptions) error {
	quietIfStdout(options.output)
	logger := misc.NewLogger("Main")

	s, err := loadScene(cmd, options.scene, options.strict)
	if err != nil {
		return err
	}

	c, err := coordinator.NewCoordinator(s, coordinator.Settings{
		Bands:         options.bands,
		HeartBeat:     options.heartBeat,
		RollCall:      options.rollCall,
		ServerAddress: options.address,
	})
	if err != nil {
		return err
	}
	defer func() {
		misc.CheckError(c.Stop(), logger, misc.Warning)
	}()

	img, err := c.Wait()
	if err != nil {
		return err
	}
	if err := writeImage(cmd, img, options.output, options.format); err != nil {
		return err
	}
	logger.Infof("Saved image to %s", options.output)
	return nil
}
