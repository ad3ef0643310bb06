package task

import (
	"testing"
	"time"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.Local)

func sampleCollection() Collection {
	c := Collection{
		New(1, "first", fixedNow),
		New(4, "second", fixedNow),
		New(2, "third", fixedNow),
	}
	c[1].Status = StatusDone
	c[2].Status = StatusInProgress
	return c
}

func TestCollection_NextID(t *testing.T) {
	tests := []struct {
		name string
		c    Collection
		want int
	}{
		{name: "empty starts at one", c: nil, want: 1},
		{name: "single task", c: Collection{New(1, "a", fixedNow)}, want: 2},
		{name: "uses max not length", c: sampleCollection(), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.NextID(); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCollection_Index(t *testing.T) {
	c := sampleCollection()
	if got := c.Index(4); got != 1 {
		t.Errorf("Index(4) = %d, want 1", got)
	}
	if got := c.Index(3); got != -1 {
		t.Errorf("Index(3) = %d, want -1", got)
	}
}

func TestCollection_Filter(t *testing.T) {
	c := sampleCollection()

	all := c.Filter("")
	if len(all) != 3 {
		t.Fatalf("Filter(\"\") returned %d tasks, want 3", len(all))
	}

	done := c.Filter(StatusDone)
	if len(done) != 1 || done[0].ID != 4 {
		t.Errorf("Filter(done) = %+v, want only id 4", done)
	}

	todo := c.Filter(StatusTodo)
	if len(todo) != 1 || todo[0].ID != 1 {
		t.Errorf("Filter(todo) = %+v, want only id 1", todo)
	}
}

func TestCollection_Remove(t *testing.T) {
	c := sampleCollection()
	out := c.Remove(1)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Errorf("order not preserved: got ids %d, %d", out[0].ID, out[1].ID)
	}
	if len(c) != 3 || c[1].ID != 4 {
		t.Error("Remove modified the receiver")
	}
}

func TestCollection_Validate(t *testing.T) {
	t.Run("valid collection", func(t *testing.T) {
		if err := sampleCollection().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		c := Collection{New(1, "", fixedNow)}
		if err := c.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(c Collection) Collection
	}{
		{name: "zero id", mutate: func(c Collection) Collection { c[0].ID = 0; return c }},
		{name: "negative id", mutate: func(c Collection) Collection { c[0].ID = -3; return c }},
		{name: "duplicate id", mutate: func(c Collection) Collection { c[2].ID = 1; return c }},
		{name: "unknown status", mutate: func(c Collection) Collection { c[0].Status = "blocked"; return c }},
		{name: "missing created_at", mutate: func(c Collection) Collection { c[0].CreatedAt = Timestamp{}; return c }},
		{name: "updated before created", mutate: func(c Collection) Collection {
			c[0].UpdatedAt = NewTimestamp(fixedNow.Add(-time.Minute))
			return c
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.mutate(sampleCollection())
			if err := c.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestCollection_ClampUpdated(t *testing.T) {
	c := sampleCollection()
	c[1].UpdatedAt = NewTimestamp(fixedNow.Add(-time.Hour))

	if n := c.ClampUpdated(); n != 1 {
		t.Errorf("ClampUpdated() = %d, want 1", n)
	}
	if c[1].UpdatedAt.String() != c[1].CreatedAt.String() {
		t.Errorf("UpdatedAt = %s, want %s", c[1].UpdatedAt, c[1].CreatedAt)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("clamped collection fails validation: %v", err)
	}
	if n := c.ClampUpdated(); n != 0 {
		t.Errorf("second ClampUpdated() = %d, want 0", n)
	}
}
