package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-drill/internal/store"
)

// SessionStore implements the store.SessionStore interface with a
// mutex-guarded map.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]store.SessionRecord
	now      func() time.Time
	logger   *slog.Logger
}

// Ensure SessionStore implements store.SessionStore interface
var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates an empty in-memory session store.
// If logger is nil, a default logger will be used.
func NewSessionStore(logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionStore{
		sessions: make(map[uuid.UUID]store.SessionRecord),
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger.With(slog.String("component", "session_store")),
	}
}

// WithClock replaces the store's time source. Intended for tests.
func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	return s
}

// Create implements store.SessionStore.Create
func (s *SessionStore) Create(ctx context.Context, rec *store.SessionRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[rec.ID]; exists {
		return store.ErrSessionExists
	}

	now := s.now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	s.sessions[rec.ID] = *rec

	s.logger.DebugContext(ctx, "session created", slog.String("session_id", rec.ID.String()))
	return nil
}

// Get implements store.SessionStore.Get
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.sessions[id]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	return &rec, nil
}

// Modify implements store.SessionStore.Modify
// The whole read-transform-write runs under the write lock.
func (s *SessionStore) Modify(
	ctx context.Context,
	id uuid.UUID,
	fn store.ModifyFunc,
) (*store.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok {
		return nil, store.ErrSessionNotFound
	}

	next, err := fn(rec.State)
	if err != nil {
		return &rec, fmt.Errorf("modify session: %w", err)
	}

	rec.State = next
	rec.UpdatedAt = s.now()
	s.sessions[id] = rec

	return &rec, nil
}

// DeleteIdleSince implements store.SessionStore.DeleteIdleSince
func (s *SessionStore) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, rec := range s.sessions {
		if rec.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.logger.DebugContext(ctx, "idle sessions removed",
			slog.Int("removed", removed),
			slog.Int("remaining", len(s.sessions)))
	}
	return removed, nil
}

// Count implements store.SessionStore.Count
func (s *SessionStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions), nil
}
