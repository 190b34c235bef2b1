package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/vocab-drill/internal/redact"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "card 1001 not in deck",
			expected: "card 1001 not in deck",
		},
		{
			name:     "dataset file path",
			input:    "open /etc/vocab/data.json: no such file or directory",
			expected: "open [REDACTED_PATH]: [REDACTED_FILE_ERROR] or directory",
		},
		{
			name:     "Windows path",
			input:    "Access denied to C:\\Users\\me\\vocab.json",
			expected: "Access denied to [REDACTED_PATH]",
		},
		{
			name:     "session id",
			input:    "session 3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6b not found",
			expected: "session [REDACTED_SESSION_ID] not found",
		},
		{
			name:     "line number",
			input:    "decode dataset: invalid character at line 12",
			expected: "decode dataset: invalid character [REDACTED_LINE_NUMBER]",
		},
		{
			name:     "host and port",
			input:    "dial tcp 127.0.0.1:8080: connection refused",
			expected: "dial tcp [REDACTED_HOST]: connection refused",
		},
		{
			name:     "stack trace",
			input:    "panic: boom\n\ngoroutine 1 [running]:\nmain.main()\n\t/app/main.go:12 +0x1d",
			expected: "[STACK_TRACE_REDACTED]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := fmt.Errorf("load dataset: %w", errors.New("open /srv/data/vocab.json: permission denied"))
	assert.Equal(t, "load dataset: open [REDACTED_PATH]: permission denied", redact.Error(err))
}
