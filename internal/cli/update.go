package cli

import (
	"errors"

	"github.com/pablasso/taskcli/internal/tasks"
	"github.com/spf13/cobra"
)

func newUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <description>",
		Short: "Change a task's description",
		Args:  idArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runUpdate(a, cmd, id, args[1])
		},
	}
}

func runUpdate(a *app, cmd *cobra.Command, id int, description string) error {
	_, err := a.service.Update(id, description)
	if err != nil {
		return reportNotFound(a, cmd, err)
	}
	a.printer(cmd).Success("Task updated successfully. (ID: %d)", id)
	return nil
}

// reportNotFound prints not-found errors as a normal result and passes
// every other error through.
func reportNotFound(a *app, cmd *cobra.Command, err error) error {
	var nf *tasks.NotFoundError
	if errors.As(err, &nf) {
		a.printer(cmd).Failure("Task not found with given id. (ID: %d)", nf.ID)
		return nil
	}
	return err
}
