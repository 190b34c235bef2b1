package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/service"
)

// SessionHandler handles the JSON drill session API
type SessionHandler struct {
	sessions service.SessionService
	logger   *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessions service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "session_handler")),
	}
}

// CreateSession handles POST /api/sessions requests
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rec, err := h.sessions.Start(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug("session created", slog.String("session_id", rec.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(rec))
}

// GetSession handles GET /api/sessions/{id} requests
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathSessionID(w, r, log)
	if !ok {
		return
	}

	rec, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(rec))
}

// SwitchMode handles PUT /api/sessions/{id}/mode requests.
// A disabled transition answers 409 Conflict and leaves the session as is.
func (h *SessionHandler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathSessionID(w, r, log)
	if !ok {
		return
	}

	var req SwitchModeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	rec, err := h.sessions.SwitchMode(r.Context(), id, mode)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug("mode switched",
		slog.String("session_id", id.String()),
		slog.String("mode", req.Mode))
	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(rec))
}

// Reveal handles POST /api/sessions/{id}/reveal requests
func (h *SessionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathSessionID(w, r, log)
	if !ok {
		return
	}

	rec, err := h.sessions.Reveal(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(rec))
}

// Answer handles POST /api/sessions/{id}/answer requests
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathSessionID(w, r, log)
	if !ok {
		return
	}

	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := h.sessions.Respond(r.Context(), id, domain.Response(req.Response))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(rec))
}
