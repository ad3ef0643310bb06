package cli

import (
	"fmt"
	"strconv"

	"github.com/pablasso/taskcli/internal/task"
	"github.com/spf13/cobra"
)

// statusValue is a flag value that only accepts known statuses.
type statusValue struct {
	status task.Status
}

func (v *statusValue) String() string {
	return string(v.status)
}

func (v *statusValue) Set(s string) error {
	status, err := task.ParseStatus(s)
	if err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *statusValue) Type() string {
	return "status"
}

func statusNames() []string {
	names := make([]string, 0, len(task.Statuses()))
	for _, s := range task.Statuses() {
		names = append(names, string(s))
	}
	return names
}

func completeStatus(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return statusNames(), cobra.ShellCompDirectiveNoFileComp
}

// parseID converts a command-line task id.
func parseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: must be an integer", value)
	}
	return id, nil
}

// idArgs checks the argument count and that the first argument is an id.
func idArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return err
		}
		_, err := parseID(args[0])
		return err
	}
}
