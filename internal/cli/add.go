package cli

import (
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Long:  `Add a task with the given description. New tasks start as todo.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(a, cmd, args[0])
		},
	}
}

func runAdd(a *app, cmd *cobra.Command, description string) error {
	created, err := a.service.Create(description)
	if err != nil {
		return err
	}
	a.printer(cmd).Success("Task created successfully. (ID: %d)", created.ID)
	return nil
}
