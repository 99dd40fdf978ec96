package main

import (
	"github.com/spf13/cobra"

	"mandelpng/task"
)

type renderOptions struct {
	bands  int
	format string
	output string
	scene  string
	strict bool
}

func renderCmd() *cobra.Command {
	options := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene read as JSON and write the image",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true
			return runRender(cmd, options)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&options.bands, "bands", "b", task.DefaultBandCount, "row bands rendered in parallel, 0 for one per CPU")
	flags.StringVarP(&options.format, "format", "f", "png", "image format: png, jpeg, bmp or tiff")
	flags.StringVarP(&options.output, "output", "o", "-", "image file to write, - for stdout")
	flags.StringVarP(&options.scene, "scene", "s", "-", "scene JSON file, - for stdin")
	flags.BoolVar(&options.strict, "strict", false, "fail on a malformed scene instead of rendering the default one")

	return cmd
}

func runRender(cmd *cobra.Command, options renderOptions) error {
	quietIfStdout(options.output)

	s, err := loadScene(cmd, options.scene, options.strict)
	if err != nil {
		return err
	}

	img, err := s.Render(options.bands)
	if err != nil {
		return err
	}

	return writeImage(cmd, img, options.output, options.format)
}
