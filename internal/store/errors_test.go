package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrSessionNotFound",
			err:      ErrSessionNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrSessionNotFound",
			err:      fmt.Errorf("failed to load session: %w", ErrSessionNotFound),
			expected: true,
		},
		{
			name:     "ErrSessionExists",
			err:      ErrSessionExists,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.expected {
				t.Errorf("IsNotFoundError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestSessionRecordValidate(t *testing.T) {
	var nilRecord *SessionRecord
	if !errors.Is(nilRecord.Validate(), ErrInvalidEntity) {
		t.Error("nil record should be invalid")
	}
	if !errors.Is((&SessionRecord{}).Validate(), ErrInvalidEntity) {
		t.Error("record without ID should be invalid")
	}
	if err := (&SessionRecord{ID: uuid.New()}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
