package task

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateTimestamps, Task{})
	return v
}

// validateTimestamps enforces updated_at >= created_at.
func validateTimestamps(sl validator.StructLevel) {
	t := sl.Current().Interface().(Task)
	if t.UpdatedAt.WallBefore(t.CreatedAt) {
		sl.ReportError(t.UpdatedAt, "UpdatedAt", "updated_at", "gtecreated", "")
	}
}

// Validate checks a single task's field constraints.
func (t Task) Validate() error {
	if err := validate.Struct(t); err != nil {
		return formatValidationError(t.ID, err)
	}
	return nil
}

// Validate checks every task and that ids are unique.
func (c Collection) Validate() error {
	seen := make(map[int]bool, len(c))
	for _, t := range c {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

func formatValidationError(id int, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed rule '%s' (value: '%v')", e.Field(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("task %d: %s", id, strings.Join(messages, "; "))
}
