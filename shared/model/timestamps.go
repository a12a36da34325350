package model

import "time"

// Timestamps is embedded by every stored record.
type Timestamps struct {
	CreatedAt Time `json:"createdAt"`
	UpdatedAt Time `json:"updatedAt"`
}

// Stamp sets both timestamps to now, as done on creation.
func (t *Timestamps) Stamp(now time.Time) {
	t.CreatedAt = At(now)
	t.UpdatedAt = At(now)
}

// Touch refreshes UpdatedAt.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = At(now)
}

