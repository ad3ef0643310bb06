package task

import (
	"fmt"
	"strings"
	"time"
)

// Status represents the progress state of a task.
type Status string

// Task status constants
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses returns every known status in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input into a Status.
// Matching is exact after trimming surrounding whitespace.
func ParseStatus(value string) (Status, error) {
	s := Status(strings.TrimSpace(value))
	if !s.Valid() {
		names := make([]string, 0, len(Statuses()))
		for _, known := range Statuses() {
			names = append(names, string(known))
		}
		return "", fmt.Errorf("invalid status %q: must be one of %s", value, strings.Join(names, ", "))
	}
	return s, nil
}

// Task represents a single tracked item.
type Task struct {
	ID          int       `json:"id" validate:"gt=0"`
	Description string    `json:"description"`
	Status      Status    `json:"status" validate:"oneof=todo in-progress done"`
	CreatedAt   Timestamp `json:"created_at" validate:"required"`
	UpdatedAt   Timestamp `json:"updated_at" validate:"required"`
}

// New returns a todo task with both timestamps set to now.
func New(id int, description string, now time.Time) Task {
	ts := NewTimestamp(now)
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

// Touch refreshes UpdatedAt. Timestamps are compared as written to disk,
// so the result never sorts before CreatedAt or the previous UpdatedAt even
// when the local clock is set back.
func (t *Task) Touch(now time.Time) {
	ts := NewTimestamp(now)
	if ts.WallBefore(t.CreatedAt) {
		ts = t.CreatedAt
	}
	if ts.WallBefore(t.UpdatedAt) {
		ts = t.UpdatedAt
	}
	t.UpdatedAt = ts
}
