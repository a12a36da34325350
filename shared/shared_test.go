package shared_test

import (
	"lavender/shared"
	"reflect"
	"strings"
	"testing"
)

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *int
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "number",
			input:    "3",
			expected: intPtr(3),
		},
		{
			name:     "padded number",
			input:    " 4 ",
			expected: intPtr(4),
		},
		{
			name:     "not a number",
			input:    "three",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToInt(tt.input)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	first := shared.NewID("room")
	second := shared.NewID("room")

	if !strings.HasPrefix(first, "room_") {
		t.Errorf("expected room_ prefix, got %s", first)
	}

	if first == second {
		t.Error("expected distinct identifiers")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: []string{},
		},
		{
			name:     "trims and drops empty entries",
			input:    " Wi-Fi , ,Balcony,, Mini Bar ",
			expected: []string{"Wi-Fi", "Balcony", "Mini Bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.SplitAndTrim(tt.input)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestTrimAll(t *testing.T) {
	result := shared.TrimAll([]string{" Spa ", "", "  "})

	if !reflect.DeepEqual(result, []string{"Spa"}) {
		t.Errorf("expected [Spa], got %v", result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	result := shared.BuildCacheKey("suggestion", "1", 2, "2024-09-10")

	if result != "suggestion:1:2:2024-09-10" {
		t.Errorf("unexpected key %s", result)
	}
}

func intPtr(i int) *int {
	return &i
}
