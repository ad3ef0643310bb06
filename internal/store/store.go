// Package store persists the task collection as a single JSON file.
//
// The whole collection is read on Load and rewritten on Save. Writes go to
// a temporary file that is renamed over the target, so an interrupted save
// never leaves a truncated file behind. There is no locking: two processes
// saving at the same time race, and the last rename wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/pablasso/taskcli/internal/logging"
	"github.com/pablasso/taskcli/internal/task"
	"github.com/spf13/afero"
)

// DefaultFile is the file name used when no path is configured.
const DefaultFile = "tasks.json"

// IOError reports a filesystem failure while loading or saving.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Store reads and writes the task collection on a filesystem.
type Store struct {
	fs     afero.Fs
	path   string
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store for path on fs. An empty path means DefaultFile.
func New(fs afero.Fs, path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultFile
	}
	s := &Store{
		fs:     fs,
		path:   path,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewOs creates a Store backed by the operating system filesystem.
func NewOs(path string, opts ...Option) *Store {
	return New(afero.NewOsFs(), path, opts...)
}

// Path returns the location of the tasks file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted collection.
// A missing file is created empty. Content that does not decode into a
// valid collection is treated as empty and only logged.
func (s *Store) Load() (task.Collection, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, &IOError{Op: "stat", Path: s.path, Err: err}
	}
	if !exists {
		s.logger.Debug("tasks file missing, creating it", "path", s.path)
		if err := s.Save(task.Collection{}); err != nil {
			return nil, err
		}
		return task.Collection{}, nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: s.path, Err: err}
	}

	tasks, clamped, err := decode(data)
	if err != nil {
		s.logger.Warn("ignoring unreadable tasks file", "path", s.path, "err", err)
		return task.Collection{}, nil
	}
	if clamped > 0 {
		s.logger.Info("raised updated_at to created_at", "path", s.path, "tasks", clamped)
	}

	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// Save atomically replaces the tasks file with c.
func (s *Store) Save(c task.Collection) error {
	if c == nil {
		c = task.Collection{}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return &IOError{Op: "create directory for", Path: s.path, Err: err}
		}
	}

	tmpPath := fmt.Sprintf("%s.tmp.%d", s.path, os.Getpid())
	if err := afero.WriteFile(s.fs, tmpPath, data, 0644); err != nil {
		s.fs.Remove(tmpPath)
		return &IOError{Op: "write", Path: tmpPath, Err: err}
	}

	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		s.fs.Remove(tmpPath)
		return &IOError{Op: "replace", Path: s.path, Err: err}
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(c))
	return nil
}

// errNotArray is returned for JSON that decodes to something other than a list.
var errNotArray = errors.New("tasks file is not a JSON array")

// decode parses a tasks file. Out-of-order timestamps are repaired rather
// than rejected; clamped counts how many were.
func decode(data []byte) (tasks task.Collection, clamped int, err error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, err
	}
	if len(raw) == 0 || raw[0] != '[' {
		return nil, 0, errNotArray
	}

	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, 0, err
	}
	clamped = tasks.ClampUpdated()
	if err := tasks.Validate(); err != nil {
		return nil, 0, err
	}
	if tasks == nil {
		tasks = task.Collection{}
	}
	return tasks, clamped, nil
}
