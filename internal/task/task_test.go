package task

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pablasso/taskcli/internal/testutil"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Status
		wantErr bool
	}{
		{name: "todo", input: "todo", want: StatusTodo},
		{name: "in-progress", input: "in-progress", want: StatusInProgress},
		{name: "done", input: "done", want: StatusDone},
		{name: "surrounding whitespace", input: " done ", want: StatusDone},
		{name: "wrong case", input: "Done", wantErr: true},
		{name: "underscore variant", input: "in_progress", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseStatus_ErrorListsChoices(t *testing.T) {
	_, err := ParseStatus("later")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, s := range Statuses() {
		if !strings.Contains(err.Error(), string(s)) {
			t.Errorf("error %q does not mention %q", err, s)
		}
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 999_000_000, time.Local)
	task := New(3, "Buy milk", now)

	if task.ID != 3 {
		t.Errorf("ID = %d, want 3", task.ID)
	}
	if task.Status != StatusTodo {
		t.Errorf("Status = %q, want %q", task.Status, StatusTodo)
	}
	if !task.CreatedAt.Equal(task.UpdatedAt.Time) {
		t.Errorf("CreatedAt %v != UpdatedAt %v", task.CreatedAt, task.UpdatedAt)
	}
	if task.CreatedAt.Nanosecond() != 0 {
		t.Errorf("expected second precision, got %v", task.CreatedAt.Time)
	}
}

func TestTouch(t *testing.T) {
	created := time.Date(2024, 3, 9, 14, 0, 0, 0, time.Local)

	t.Run("moves updated_at forward", func(t *testing.T) {
		task := New(1, "a", created)
		later := created.Add(90 * time.Second)
		task.Touch(later)
		if !task.UpdatedAt.Equal(later) {
			t.Errorf("UpdatedAt = %v, want %v", task.UpdatedAt, later)
		}
		if !task.CreatedAt.Equal(created) {
			t.Errorf("CreatedAt changed to %v", task.CreatedAt)
		}
	})

	t.Run("never goes before created_at", func(t *testing.T) {
		task := New(1, "a", created)
		task.Touch(created.Add(-time.Hour))
		if task.UpdatedAt.Before(task.CreatedAt.Time) {
			t.Errorf("UpdatedAt %v is before CreatedAt %v", task.UpdatedAt, task.CreatedAt)
		}
	})

	t.Run("never goes before previous updated_at", func(t *testing.T) {
		task := New(1, "a", created)
		task.Touch(created.Add(time.Hour))
		previous := task.UpdatedAt

		task.Touch(created.Add(30 * time.Minute))
		if task.UpdatedAt.String() != previous.String() {
			t.Errorf("UpdatedAt = %s, want %s", task.UpdatedAt, previous)
		}
	})
}

func TestTouch_AcrossFallBack(t *testing.T) {
	testutil.SetLocal(t, "America/New_York")

	// 2024-11-03 06:00 UTC is when New York falls back from 02:00 EDT to 01:00 EST.
	created := time.Date(2024, 11, 3, 5, 50, 0, 0, time.UTC)
	task := New(1, "a", created)
	task.Touch(created.Add(20 * time.Minute))

	if got := task.CreatedAt.String(); got != "2024-11-03 01:50:00" {
		t.Fatalf("CreatedAt = %s, want 2024-11-03 01:50:00", got)
	}
	if task.UpdatedAt.WallBefore(task.CreatedAt) {
		t.Errorf("UpdatedAt %s reads earlier than CreatedAt %s", task.UpdatedAt, task.CreatedAt)
	}
	if err := task.Validate(); err != nil {
		t.Errorf("touched task fails validation: %v", err)
	}
}

func TestTimestamp_JSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local))

	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-01-02 03:04:05"` {
		t.Errorf("Marshal = %s, want %q", data, "2024-01-02 03:04:05")
	}

	var decoded Timestamp
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !decoded.Equal(ts.Time) {
		t.Errorf("decoded %v, want %v", decoded, ts)
	}
}

func TestTimestamp_UnmarshalRejectsBadInput(t *testing.T) {
	inputs := []string{`12345`, `"2024-01-02T03:04:05Z"`, `"yesterday"`}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(in), &ts); err == nil {
				t.Errorf("expected error for %s", in)
			}
		})
	}
}

func TestTask_JSONFieldNames(t *testing.T) {
	task := New(7, "Write report", time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local))

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"id":7,"description":"Write report","status":"todo","created_at":"2024-05-06 07:08:09","updated_at":"2024-05-06 07:08:09"}`
	if string(data) != want {
		t.Errorf("Marshal =\n%s\nwant\n%s", data, want)
	}
}
