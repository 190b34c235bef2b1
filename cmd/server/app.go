package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/vocab-drill/internal/config"
	"github.com/phrazzld/vocab-drill/internal/dataset"
	"github.com/phrazzld/vocab-drill/internal/domain/session"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/platform/memory"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/store"
	"github.com/phrazzld/vocab-drill/internal/task"
)

// SessionAuditHandler is an event handler that writes one audit log line per
// session transition
type SessionAuditHandler struct {
	logger *slog.Logger
}

// HandleEvent logs the event at a level matching its significance
func (h *SessionAuditHandler) HandleEvent(ctx context.Context, event *events.SessionEvent) error {
	level := slog.LevelDebug
	switch event.Type {
	case events.TypeSessionStarted, events.TypeModeSwitched, events.TypeMistakesCleared:
		level = slog.LevelInfo
	}

	h.logger.Log(ctx, level, "session event",
		"event_id", event.ID,
		"event_type", event.Type,
		"session_id", event.SessionID,
		"payload", string(event.Payload))
	return nil
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	sessionStore store.SessionStore

	// Drill logic and services
	controller     *session.Controller
	sessionService service.SessionService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
	eventTally   *events.Tally

	// Background maintenance
	sweeper *task.Sweeper
}

// newApplication creates a new application instance with all dependencies initialized.
// The sweeper is created but not started; Run starts it alongside the server.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	ds, err := dataset.Load(cfg.Deck.DatasetPath, cfg.Deck.GroupLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	app.controller, err = session.NewController(
		ds,
		session.NewParams(cfg.Deck.GroupLimit),
		session.NewSource(cfg.Deck.Seed),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session controller: %w", err)
	}
	logger.Info("Dataset loaded",
		"groups", len(ds),
		"cards", ds.Size(),
		"revision_deck_size", app.controller.RevisionSize())

	app.sessionStore = memory.NewSessionStore(logger)

	// Initialize event emitter and its handlers
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventTally = events.NewTally()
	app.eventEmitter.RegisterHandler(app.eventTally)
	app.eventEmitter.RegisterHandler(&SessionAuditHandler{
		logger: logger.With("component", "session_audit"),
	})

	app.sessionService, err = service.NewSessionService(
		app.sessionStore,
		app.controller,
		app.eventEmitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	app.sweeper = task.NewSweeper(app.sessionService, task.SweeperConfig{
		TTL:      cfg.Session.TTL,
		Interval: cfg.Session.SweepInterval,
	}, logger)

	return app, nil
}

// Run starts background maintenance and serves HTTP until ctx is canceled
// or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	app.sweeper.Start()
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.sweeper != nil {
		app.sweeper.Stop()
	}

	app.logger.Info("Application shutdown completed")
}
