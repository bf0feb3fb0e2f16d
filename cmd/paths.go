package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print where trackerctl looks for config.json and the tracker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := newAppConfig()
			if err := cfg.Resolve(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode:    %s\n", cfg.Paths.Mode)
			fmt.Fprintf(out, "root:    %s\n", cfg.Paths.RootDir)
			fmt.Fprintf(out, "config:  %s\n", cfg.Paths.ConfigPath)
			fmt.Fprintf(out, "backend: %s\n", cfg.Paths.BackendPath)
			return nil
		},
	}
}
