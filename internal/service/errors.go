package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/vocab-drill/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrSessionNotFound indicates the session does not exist or has expired.
	// API layer should map this to HTTP 404 Not Found.
	ErrSessionNotFound = errors.New("session not found")
)

// SessionServiceError wraps errors from the session service with context.
type SessionServiceError struct {
	// Operation is the operation that failed (e.g., "switch_mode", "respond")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for SessionServiceError.
func (e *SessionServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("session service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("session service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SessionServiceError) Unwrap() error {
	return e.Err
}

// NewSessionServiceError creates a new SessionServiceError.
// Store-level "not found" errors are translated to ErrSessionNotFound and
// returned directly without wrapping.
func NewSessionServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrSessionNotFound) || errors.Is(err, store.ErrSessionNotFound) {
		return ErrSessionNotFound
	}

	return &SessionServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
