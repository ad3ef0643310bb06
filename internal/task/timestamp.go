package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the on-disk format for task timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a second-precision local time encoded as TimestampLayout.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds in local time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Local().Truncate(time.Second)}
}

// ParseTimestamp parses a TimestampLayout string in local time.
func ParseTimestamp(value string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, value, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return Timestamp{Time: t}, nil
}

// WallBefore reports whether t's local wall-clock reading is earlier than
// u's. Unlike Before it agrees with the on-disk text across DST changes.
func (t Timestamp) WallBefore(u Timestamp) bool {
	return t.String() < u.String()
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
