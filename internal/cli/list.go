package cli

import (
	"fmt"

	"github.com/pablasso/taskcli/internal/task"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	status := &statusValue{}

	cmd := &cobra.Command{
		Use:       "list [status]",
		Short:     "List tasks, optionally by status",
		Long:      `List tasks in the order they were added. Pass todo, in-progress or done to show only tasks with that status.`,
		ValidArgs: statusNames(),
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			if len(args) == 1 {
				if _, err := task.ParseStatus(args[0]); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := resolveStatus(args, status.status)
			if err != nil {
				return err
			}
			return runList(a, cmd, filter)
		},
	}

	cmd.Flags().VarP(status, "status", "s", "only show tasks with this status (todo, in-progress, done)")
	_ = cmd.RegisterFlagCompletionFunc("status", completeStatus)
	return cmd
}

// resolveStatus merges the positional status and the --status flag.
func resolveStatus(args []string, flagStatus task.Status) (task.Status, error) {
	if len(args) == 0 {
		return flagStatus, nil
	}
	positional, err := task.ParseStatus(args[0])
	if err != nil {
		return "", err
	}
	if flagStatus != "" && flagStatus != positional {
		return "", fmt.Errorf("conflicting statuses %q and --status %q", positional, flagStatus)
	}
	return positional, nil
}

func runList(a *app, cmd *cobra.Command, status task.Status) error {
	items, err := a.service.List(status)
	if err != nil {
		return err
	}

	p := a.printer(cmd)
	if len(items) == 0 {
		p.Failure("No tasks found.")
		return nil
	}
	p.Table(items)
	return nil
}
