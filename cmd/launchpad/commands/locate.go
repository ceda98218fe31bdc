package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/launchpad/internal/app"
)

func (c *CLI) newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the path of the executable that would be launched",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildDir, _ := cmd.Flags().GetString("build-dir")
			config, _ := cmd.Flags().GetString("config")
			strategy, _ := cmd.Flags().GetString("strategy")

			path, err := c.app.Locate(cmd.Context(), app.LocateOptions{
				BuildDir: buildDir,
				Config:   config,
				Strategy: strategy,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().String("config", "", "Only search this configuration's directory (delegated strategy)")
	cmd.Flags().String("strategy", "", "Build strategy: direct or delegated")

	return cmd
}
