package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/launchpad/internal/build"
	"go.trai.ch/launchpad/internal/ui/style"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, style.Heading.Render("launchpad")+" "+build.Version)
			_, _ = fmt.Fprintln(out, style.KeyValue("commit", build.Commit))
			_, _ = fmt.Fprintln(out, style.KeyValue("date", build.Date))
		},
	}
}
