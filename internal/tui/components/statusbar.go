package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/pablasso/taskcli/internal/task"
	"github.com/pablasso/taskcli/internal/tasks"
	"github.com/pablasso/taskcli/internal/tui/styles"
)

// StatusBar renders a summary line below the task table.
type StatusBar struct {
	now func() time.Time
}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{now: time.Now}
}

// Render returns the status bar for items, padded to width. selected is
// the index of the highlighted item, or -1 when nothing is selected.
func (s StatusBar) Render(width int, items []tasks.Item, selected int) string {
	return styles.StatusBarStyle.Width(width).Render(strings.Join(s.Items(items, selected), " • "))
}

// Items returns the status bar segments: the task count, a count per
// status and the age of the selected task's last update.
func (s StatusBar) Items(items []tasks.Item, selected int) []string {
	counts := make(map[task.Status]int, len(task.Statuses()))
	for _, item := range items {
		counts[item.Status]++
	}

	noun := "tasks"
	if len(items) == 1 {
		noun = "task"
	}
	parts := []string{fmt.Sprintf("%d %s", len(items), noun)}
	for _, status := range task.Statuses() {
		parts = append(parts, fmt.Sprintf("%d %s", counts[status], status))
	}

	if selected >= 0 && selected < len(items) {
		age := FormatAge(items[selected].UpdatedAt.Time, s.now())
		parts = append(parts, "updated "+age)
	}
	return parts
}

// FormatAge returns a human-readable relative time string.
func FormatAge(t, now time.Time) string {
	duration := now.Sub(t)

	if duration < time.Minute {
		return "just now"
	}

	minutes := int(duration.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := int(duration.Hours())
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd ago", days)
}
