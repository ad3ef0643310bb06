package cli

import (
	"github.com/pablasso/taskcli/internal/task"
	"github.com/pablasso/taskcli/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd(a *app) *cobra.Command {
	status := &statusValue{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse tasks interactively",
		Long:  `Open a read-only task table. Press f to cycle the status filter and q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(a, status.status)
		},
	}

	cmd.Flags().VarP(status, "status", "s", "initial status filter (todo, in-progress, done)")
	_ = cmd.RegisterFlagCompletionFunc("status", completeStatus)
	return cmd
}

func runBrowse(a *app, status task.Status) error {
	return tui.Run(a.service, status)
}
