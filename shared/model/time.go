package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Time is a stored timestamp. An empty, null or unparseable value decodes as the zero time, so a
// single odd timestamp does not make the whole stored document unreadable.
type Time struct {
	time.Time
}

// At wraps t.
func At(t time.Time) Time {
	return Time{Time: t}
}

// Ptr wraps t and returns its address, for optional timestamps.
func Ptr(t time.Time) *Time {
	wrapped := At(t)

	return &wrapped
}

func (t *Time) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil //nolint:nilerr
	}

	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time = parsed
	}

	return nil
}
