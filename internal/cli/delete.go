package cli

import (
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  idArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runDelete(a, cmd, id)
		},
	}
}

func runDelete(a *app, cmd *cobra.Command, id int) error {
	if _, err := a.service.Delete(id); err != nil {
		return reportNotFound(a, cmd, err)
	}
	a.printer(cmd).Success("Task deleted successfully. (ID: %d)", id)
	return nil
}
