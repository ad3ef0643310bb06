// Package msgs defines message types exchanged by the TUI model.
package msgs

import "github.com/pablasso/taskcli/internal/tasks"

// TasksLoadedMsg carries the result of listing tasks for the current filter.
type TasksLoadedMsg struct {
	Items []tasks.Item
	Err   error
}
