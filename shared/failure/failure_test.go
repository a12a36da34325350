package failure_test

import (
	"errors"
	"fmt"
	"lavender/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestValidation(t *testing.T) {
	fields := map[string][]string{"price": {"price must be greater than or equal to 0"}}

	result := failure.Validation("price must be greater than or equal to 0", fields)

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if len(f.Fields["price"]) != 1 {
		t.Errorf("expected one message for price, got %v", f.Fields["price"])
	}
}

func TestSummarize(t *testing.T) {
	fields := map[string][]string{"name": {"name is required"}}

	t.Run("validation failure keeps fields", func(t *testing.T) {
		result := failure.Summarize(failure.Validation("name is required", fields), "Invalid room data. Please check all fields.")

		if result.Error() != "Invalid room data. Please check all fields." {
			t.Errorf("unexpected message %q", result.Error())
		}

		if got := failure.GetFields(result); len(got["name"]) != 1 {
			t.Errorf("expected name field to survive, got %v", got)
		}
	})

	t.Run("other errors untouched", func(t *testing.T) {
		notFound := failure.NotFound("Room with ID x not found")

		if result := failure.Summarize(notFound, "ignored"); result != notFound {
			t.Errorf("expected the same error back, got %v", result)
		}
	})
}

func TestInternalError(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil error")
	}

	result := failure.InternalError(errors.New("disk full"))
	if failure.GetCode(result) != http.StatusInternalServerError {
		t.Errorf("expected code %d, got %d", http.StatusInternalServerError, failure.GetCode(result))
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("permission denied")

	result := failure.StorageError(cause)

	if result.Error() != "Failed to save data." {
		t.Errorf("expected generic message, got %q", result.Error())
	}

	if !errors.Is(result, cause) {
		t.Error("expected cause to be reachable through errors.Is")
	}

	if failure.GetCode(result) != http.StatusInternalServerError {
		t.Errorf("expected code %d, got %d", http.StatusInternalServerError, failure.GetCode(result))
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("Room with ID nonexistent-id not found")

	f, ok := result.(*failure.Failure)
	if !ok {
		t.Fatalf("expected result to be *failure.Failure, got %T", result)
	}

	if f.Code != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, f.Code)
	}

	if !failure.IsNotFound(fmt.Errorf("wrapped: %w", result)) {
		t.Error("expected wrapped not found to be detected")
	}
}

func TestConflict(t *testing.T) {
	result := failure.Conflict("room with ID room_1 already exists")

	if failure.GetCode(result) != http.StatusConflict {
		t.Errorf("expected code to be %d, got %d", http.StatusConflict, failure.GetCode(result))
	}
}

func TestForbidden(t *testing.T) {
	result := failure.Forbidden("Access denied")

	if failure.GetCode(result) != http.StatusForbidden {
		t.Errorf("expected code to be %d, got %d", http.StatusForbidden, failure.GetCode(result))
	}
}

func TestBadGatewayFromString(t *testing.T) {
	cause := errors.New("connection refused")

	result := failure.BadGatewayFromString("Could not reach the upstream.", cause)

	if result.Error() != "Could not reach the upstream." {
		t.Errorf("unexpected message %q", result.Error())
	}

	if !errors.Is(result, cause) {
		t.Error("expected cause to be reachable through errors.Is")
	}

	if failure.GetCode(result) != http.StatusBadGateway {
		t.Errorf("expected code %d, got %d", http.StatusBadGateway, failure.GetCode(result))
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("outer: %w", failure.NotFound("test")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestGetMessage(t *testing.T) {
	wrapped := fmt.Errorf("failed to delete room: %w", failure.NotFound("Room with ID x not found"))

	if got := failure.GetMessage(wrapped); got != "Room with ID x not found" {
		t.Errorf("expected failure message, got %q", got)
	}

	if got := failure.GetMessage(failure.StorageError(errors.New("disk full"))); got != "Failed to save data." {
		t.Errorf("expected generic storage message, got %q", got)
	}

	if got := failure.GetMessage(errors.New("plain")); got != "plain" {
		t.Errorf("expected plain error text, got %q", got)
	}
}
