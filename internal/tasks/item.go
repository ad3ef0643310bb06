package tasks

import "github.com/pablasso/taskcli/internal/task"

// Emphasis is a display hint derived from a task's status. It is never persisted.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisAttention
	EmphasisCaution
	EmphasisSuccess
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisAttention:
		return "attention"
	case EmphasisCaution:
		return "caution"
	case EmphasisSuccess:
		return "success"
	default:
		return "none"
	}
}

// EmphasisFor maps todo to attention, in-progress to caution and done to success.
func EmphasisFor(s task.Status) Emphasis {
	switch s {
	case task.StatusTodo:
		return EmphasisAttention
	case task.StatusInProgress:
		return EmphasisCaution
	case task.StatusDone:
		return EmphasisSuccess
	default:
		return EmphasisNone
	}
}

// Item is a listed task together with its display emphasis.
type Item struct {
	task.Task
	Emphasis Emphasis
}
