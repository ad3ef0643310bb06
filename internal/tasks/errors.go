package tasks

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("task not found")

// NotFoundError reports an operation on an id that is not in the collection.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found with given id. (ID: %d)", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
