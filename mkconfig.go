package main

import (
	"github.com/spf13/cobra"

	"mandelpng/scene"
)

func mkconfigCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "mkconfig",
		Short: "Print the default scene as JSON, a starting point for your own",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			data, err := scene.Default().Marshal(pretty)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent the output")

	return cmd
}
