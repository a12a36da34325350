package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lavender/shared/model"
)

func TestTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
	}{
		{name: "rfc3339", input: `"2025-03-04T05:06:07.123Z"`},
		{name: "empty string", input: `""`, wantZero: true},
		{name: "null", input: `null`, wantZero: true},
		{name: "not a date", input: `"yesterday"`, wantZero: true},
		{name: "number", input: `12`, wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Time

			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.wantZero, got.IsZero())
		})
	}
}

func TestTime_RoundTrip(t *testing.T) {
	at := model.At(time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC))

	data, err := json.Marshal(struct {
		At       model.Time  `json:"at"`
		Optional *model.Time `json:"optional,omitempty"`
	}{At: at})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"2025-03-04T05:06:07Z"}`, string(data))

	var back struct {
		At model.Time `json:"at"`
	}

	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, at.Equal(back.At.Time))
}

func TestTimestamps_StampAndTouch(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var ts model.Timestamps

	ts.Stamp(created)
	assert.Equal(t, ts.CreatedAt, ts.UpdatedAt)

	ts.Touch(created.Add(time.Hour))
	assert.True(t, ts.UpdatedAt.After(ts.CreatedAt.Time))
}
