package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/service"
)

// EventCounter exposes running event counts by type.
type EventCounter interface {
	Snapshot() map[string]int64
}

// StatsHandler serves process-wide drill counters
type StatsHandler struct {
	sessions service.SessionService
	counter  EventCounter
	logger   *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(sessions service.SessionService, counter EventCounter, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		sessions: sessions,
		counter:  counter,
		logger:   logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /api/stats requests
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	active, err := h.sessions.ActiveSessions(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	events := map[string]int64{}
	if h.counter != nil {
		events = h.counter.Snapshot()
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("serving stats",
		slog.Int("active_sessions", active))
	shared.RespondWithJSON(w, r, http.StatusOK, StatsResponse{
		ActiveSessions: active,
		Events:         events,
	})
}
