package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/session"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/store"
)

// SessionService runs drill sessions on behalf of many concurrent clients.
type SessionService interface {
	// Start creates a new session in revision mode over a shuffled deck.
	Start(ctx context.Context) (*store.SessionRecord, error)

	// Get retrieves a session by ID.
	Get(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error)

	// Touch marks a session as active without changing its state, so a
	// learner who only views the page is not swept as idle.
	Touch(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error)

	// SwitchMode moves a session to another mode and rebuilds its deck.
	// Disabled transitions return an error wrapping session.ErrTransitionDisabled.
	SwitchMode(ctx context.Context, id uuid.UUID, mode domain.Mode) (*store.SessionRecord, error)

	// Reveal shows the meaning of the session's current card.
	Reveal(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error)

	// Respond records the learner's self-assessment of the current card.
	Respond(ctx context.Context, id uuid.UUID, response domain.Response) (*store.SessionRecord, error)

	// SweepIdle removes sessions that have not been updated within ttl.
	SweepIdle(ctx context.Context, ttl time.Duration) (int, error)

	// ActiveSessions returns the number of live sessions.
	ActiveSessions(ctx context.Context) (int, error)
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	sessions     store.SessionStore
	controller   *session.Controller
	eventEmitter events.EventEmitter
	logger       *slog.Logger
	now          func() time.Time
}

// NewSessionService creates a new SessionService.
// It returns an error if any of the required dependencies are nil.
func NewSessionService(
	sessions store.SessionStore,
	controller *session.Controller,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (SessionService, error) {
	if sessions == nil {
		return nil, &SessionServiceError{Operation: "create_service", Message: "sessions cannot be nil"}
	}
	if controller == nil {
		return nil, &SessionServiceError{Operation: "create_service", Message: "controller cannot be nil"}
	}
	if eventEmitter == nil {
		return nil, &SessionServiceError{Operation: "create_service", Message: "eventEmitter cannot be nil"}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &sessionServiceImpl{
		sessions:     sessions,
		controller:   controller,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "session_service"),
		now:          func() time.Time { return time.Now().UTC() },
	}, nil
}

// log prefers the request-scoped logger carried in ctx, tagged with this component.
func (s *sessionServiceImpl) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContextOrDefault(ctx, nil); l != nil {
		return l.With("component", "session_service")
	}
	return s.logger
}

// Start creates a session and stores it.
func (s *sessionServiceImpl) Start(ctx context.Context) (*store.SessionRecord, error) {
	rec := &store.SessionRecord{
		ID:    uuid.New(),
		State: s.controller.Start(),
	}

	if err := s.sessions.Create(ctx, rec); err != nil {
		s.log(ctx).Error("failed to store new session", "error", err, "session_id", rec.ID)
		return nil, NewSessionServiceError("start_session", "failed to store session", err)
	}

	s.log(ctx).Info("session started",
		"session_id", rec.ID,
		"deck_size", len(rec.State.Deck))

	s.emit(ctx, events.TypeSessionStarted, rec.ID, struct {
		DeckSize int `json:"deck_size"`
	}{DeckSize: len(rec.State.Deck)})

	return rec, nil
}

// Get retrieves a session by ID.
func (s *sessionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error) {
	rec, err := s.sessions.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.log(ctx).Error("failed to retrieve session", "error", err, "session_id", id)
		}
		return nil, NewSessionServiceError("get_session", "failed to retrieve session", err)
	}
	return rec, nil
}

// Touch refreshes the session's last-activity time through an identity
// modification.
func (s *sessionServiceImpl) Touch(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error) {
	rec, err := s.sessions.Modify(ctx, id, func(current session.State) (session.State, error) {
		return current, nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.log(ctx).Error("failed to touch session", "error", err, "session_id", id)
		}
		return nil, NewSessionServiceError("touch_session", "failed to refresh session", err)
	}
	return rec, nil
}

// SwitchMode applies a mode change as one atomic store modification.
func (s *sessionServiceImpl) SwitchMode(
	ctx context.Context,
	id uuid.UUID,
	mode domain.Mode,
) (*store.SessionRecord, error) {
	rec, err := s.sessions.Modify(ctx, id, func(current session.State) (session.State, error) {
		return s.controller.SwitchMode(current, mode)
	})
	if err != nil {
		s.log(ctx).Debug("mode switch rejected",
			"error", err,
			"session_id", id,
			"mode", mode)
		return nil, NewSessionServiceError("switch_mode", fmt.Sprintf("failed to switch to %s", mode), err)
	}

	s.log(ctx).Info("session mode switched",
		"session_id", id,
		"mode", rec.State.Mode,
		"deck_size", len(rec.State.Deck))

	s.emit(ctx, events.TypeModeSwitched, id, struct {
		Mode     domain.Mode `json:"mode"`
		DeckSize int         `json:"deck_size"`
	}{Mode: rec.State.Mode, DeckSize: len(rec.State.Deck)})

	return rec, nil
}

// Reveal shows the current card's meaning.
func (s *sessionServiceImpl) Reveal(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error) {
	var (
		card    domain.Card
		changed bool
	)
	rec, err := s.sessions.Modify(ctx, id, func(current session.State) (session.State, error) {
		card, _ = current.Current()
		next := s.controller.Reveal(current)
		changed = next.Revealed != current.Revealed
		return next, nil
	})
	if err != nil {
		return nil, NewSessionServiceError("reveal", "failed to reveal card", err)
	}

	if changed {
		s.emit(ctx, events.TypeCardRevealed, id, cardPayload{CardID: card.ID, MistakeCount: rec.State.MistakeCount()})
	}
	return rec, nil
}

// cardPayload is the event payload for card-level transitions.
type cardPayload struct {
	CardID       int `json:"card_id"`
	MistakeCount int `json:"mistake_count"`
}

// Respond applies a know / don't-know answer to the current card.
func (s *sessionServiceImpl) Respond(
	ctx context.Context,
	id uuid.UUID,
	response domain.Response,
) (*store.SessionRecord, error) {
	var (
		card       domain.Card
		hadCard    bool
		wasCleared bool
	)
	rec, err := s.sessions.Modify(ctx, id, func(current session.State) (session.State, error) {
		card, hadCard = current.Current()
		wasCleared = current.AllCleared()
		return s.controller.Respond(current, response)
	})
	if err != nil {
		s.log(ctx).Debug("response rejected",
			"error", err,
			"session_id", id,
			"response", response)
		return nil, NewSessionServiceError("respond", "failed to record response", err)
	}

	if !hadCard {
		s.log(ctx).Debug("response on empty deck ignored", "session_id", id)
		return rec, nil
	}

	eventType := events.TypeCardKnown
	if response == domain.ResponseUnknown {
		eventType = events.TypeCardUnknown
	}
	s.log(ctx).Debug("response recorded",
		"session_id", id,
		"card_id", card.ID,
		"response", response,
		"mistake_count", rec.State.MistakeCount())
	s.emit(ctx, eventType, id, cardPayload{CardID: card.ID, MistakeCount: rec.State.MistakeCount()})

	if !wasCleared && rec.State.AllCleared() {
		s.log(ctx).Info("all mistakes cleared", "session_id", id)
		s.emit(ctx, events.TypeMistakesCleared, id, nil)
	}

	return rec, nil
}

// SweepIdle removes sessions idle for longer than ttl.
func (s *sessionServiceImpl) SweepIdle(ctx context.Context, ttl time.Duration) (int, error) {
	removed, err := s.sessions.DeleteIdleSince(ctx, s.now().Add(-ttl))
	if err != nil {
		s.logger.Error("failed to sweep idle sessions", "error", err)
		return 0, NewSessionServiceError("sweep_idle", "failed to delete idle sessions", err)
	}
	if removed > 0 {
		s.logger.Info("idle sessions removed", "count", removed, "ttl", ttl)
	}
	return removed, nil
}

// ActiveSessions returns the number of stored sessions.
func (s *sessionServiceImpl) ActiveSessions(ctx context.Context) (int, error) {
	n, err := s.sessions.Count(ctx)
	if err != nil {
		return 0, NewSessionServiceError("count_sessions", "failed to count sessions", err)
	}
	return n, nil
}

// emit publishes a session event. The transition is already committed, so a
// failing handler is logged and does not fail the request.
func (s *sessionServiceImpl) emit(ctx context.Context, eventType string, id uuid.UUID, payload interface{}) {
	event, err := events.NewSessionEvent(eventType, id, payload)
	if err != nil {
		s.log(ctx).Error("failed to create session event",
			"error", err,
			"event_type", eventType,
			"session_id", id)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to emit session event",
			"error", err,
			"event_type", eventType,
			"event_id", event.ID,
			"session_id", id)
	}
}
