package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/spf13/cobra"

	"mandelpng/misc"
	"mandelpng/scene"
)

func mainCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "mandelpng",
		Short: "Render Mandelbrot and Julia sets to images",
		Args:  cobra.ExactArgs(0),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				misc.Verbosity = bslogger.All
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")

	cmd.AddCommand(renderCmd(), mkconfigCmd(), coordinatorCmd(), workerCmd())
	return cmd
}

// loadScene reads a scene from path, or from the command's input when path is "-".
func loadScene(cmd *cobra.Command, path string, strict bool) (scene.Scene, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = misc.ReadFile(path)
	}
	if err != nil {
		if strict {
			return scene.Scene{}, err
		}
		logger := misc.NewLogger("Main")
		logger.Warningf("Using the default scene: %s", err)
		return scene.Default(), nil
	}
	return scene.Load(bytes.NewReader(data), strict)
}

// writeImage encodes img to path, or to the command's output when path is "-".
func writeImage(cmd *cobra.Command, img scene.Image, path string, format string) error {
	var buf bytes.Buffer
	if err := scene.Encode(&buf, img, format); err != nil {
		return err
	}
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	_, err := misc.WriteFile(path, buf.Bytes())
	return err
}

// quietIfStdout keeps informational logging off stdout while it carries image data.
func quietIfStdout(path string) {
	if path == "-" && misc.Verbosity != bslogger.All {
		misc.Verbosity = bslogger.Minimal
	}
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
