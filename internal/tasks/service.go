// Package tasks implements the add, list, update and delete operations.
//
// Every operation loads the full collection from a Repository, works on it
// in memory and, when it changes something, saves the full collection back.
// Nothing is saved when an operation fails.
package tasks

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/pablasso/taskcli/internal/logging"
	"github.com/pablasso/taskcli/internal/task"
)

// Repository loads and saves the whole task collection.
type Repository interface {
	Load() (task.Collection, error)
	Save(task.Collection) error
}

// Service runs task operations against a Repository.
type Service struct {
	repo   Repository
	now    func() time.Time
	logger *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a Service backed by repo.
func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		now:    time.Now,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create appends a new todo task and returns it.
// Descriptions are stored as given, including empty ones.
func (s *Service) Create(description string) (task.Task, error) {
	c, err := s.repo.Load()
	if err != nil {
		return task.Task{}, err
	}

	t := task.New(c.NextID(), description, s.now())
	c = append(c, t)

	if err := s.repo.Save(c); err != nil {
		return task.Task{}, err
	}
	s.logger.Debug("created task", "id", t.ID)
	return t, nil
}

// List returns the tasks with the given status in insertion order.
// An empty status returns every task.
func (s *Service) List(status task.Status) ([]Item, error) {
	c, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	filtered := c.Filter(status)
	items := make([]Item, 0, len(filtered))
	for _, t := range filtered {
		items = append(items, Item{Task: t, Emphasis: EmphasisFor(t.Status)})
	}
	return items, nil
}

// Update replaces the description of task id and refreshes its updated_at.
func (s *Service) Update(id int, description string) (task.Task, error) {
	c, err := s.repo.Load()
	if err != nil {
		return task.Task{}, err
	}

	i := c.Index(id)
	if i < 0 {
		return task.Task{}, &NotFoundError{ID: id}
	}

	c[i].Description = description
	c[i].Touch(s.now())

	if err := s.repo.Save(c); err != nil {
		return task.Task{}, err
	}
	s.logger.Debug("updated task", "id", id)
	return c[i], nil
}

// Delete removes task id and returns the removed task.
func (s *Service) Delete(id int) (task.Task, error) {
	c, err := s.repo.Load()
	if err != nil {
		return task.Task{}, err
	}

	i := c.Index(id)
	if i < 0 {
		return task.Task{}, &NotFoundError{ID: id}
	}

	removed := c[i]
	if err := s.repo.Save(c.Remove(i)); err != nil {
		return task.Task{}, err
	}
	s.logger.Debug("deleted task", "id", id)
	return removed, nil
}
