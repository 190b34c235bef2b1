package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-drill/internal/domain/session"
)

// SessionRecord is a stored drill session: the current state snapshot plus
// bookkeeping used for expiry.
type SessionRecord struct {
	ID        uuid.UUID
	State     session.State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the record before it is stored.
func (r *SessionRecord) Validate() error {
	if r == nil || r.ID == uuid.Nil {
		return ErrInvalidEntity
	}
	return nil
}

// ModifyFunc derives the next state of a session from its current state.
// Returning an error aborts the modification and leaves the record as is.
type ModifyFunc func(current session.State) (session.State, error)

// SessionStore defines the interface for drill session persistence.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Create stores a new session.
	// Returns ErrSessionExists if the ID is already taken and ErrInvalidEntity
	// for a record without an ID.
	Create(ctx context.Context, rec *SessionRecord) error

	// Get retrieves a session by ID.
	// Returns ErrSessionNotFound if the session does not exist.
	Get(ctx context.Context, id uuid.UUID) (*SessionRecord, error)

	// Modify applies fn to the session's current state and stores the result
	// as one atomic step, so concurrent requests for the same session never
	// interleave between load and save.
	// Returns ErrSessionNotFound if the session does not exist, or the error
	// returned by fn (wrapped) together with the unchanged record.
	Modify(ctx context.Context, id uuid.UUID, fn ModifyFunc) (*SessionRecord, error)

	// DeleteIdleSince removes every session not updated since cutoff and
	// returns how many were removed.
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)

	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int, error)
}
