package api

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-drill/internal/api/middleware"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/domain/session"
	"github.com/phrazzld/vocab-drill/internal/markup"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/redact"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/store"
)

//go:embed templates/page.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// pageCard is the current card with its inline markup sanitized for HTML.
type pageCard struct {
	Word     template.HTML
	Meaning  template.HTML
	Sentence template.HTML
}

// pageView is the data the drill page renders.
type pageView struct {
	MistakeCount      int
	CanReviseRandomly bool
	CanReviseMistakes bool
	AllCleared        bool
	Revealed          bool
	Position          int
	Total             int
	Card              *pageCard
}

// newPageView converts a session state into the page's view model.
func newPageView(s session.State) pageView {
	position, total := s.Position()
	view := pageView{
		MistakeCount:      s.MistakeCount(),
		CanReviseRandomly: s.CanSwitchTo(domain.ModeRevision),
		CanReviseMistakes: s.CanSwitchTo(domain.ModeMistakes),
		AllCleared:        s.AllCleared(),
		Revealed:          s.Revealed,
		Position:          position,
		Total:             total,
	}

	if card, ok := s.Current(); ok {
		view.Card = &pageCard{Word: markup.HTML(card.Word)}
		if s.Revealed {
			view.Card.Meaning = markup.HTML(card.Meaning)
			view.Card.Sentence = markup.HTML(card.Sentence)
		}
	}
	return view
}

// PageHandler serves the browser drill page. Every route expects the
// session middleware to have bound a session to the request.
type PageHandler struct {
	sessions service.SessionService
	logger   *slog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(sessions service.SessionService, logger *slog.Logger) *PageHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PageHandler")
	}

	return &PageHandler{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "page_handler")),
	}
}

// Show handles GET / requests
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	rec, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTemplate.Execute(w, newPageView(rec.State)); err != nil {
		log.Error("failed to render page", "error", redact.Error(err))
	}
}

// SwitchMode handles POST /session/mode form submissions
func (h *PageHandler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(id uuid.UUID) (*store.SessionRecord, error) {
		mode, err := domain.ParseMode(r.PostFormValue("mode"))
		if err != nil {
			return nil, err
		}
		return h.sessions.SwitchMode(r.Context(), id, mode)
	})
}

// Reveal handles POST /session/reveal form submissions
func (h *PageHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(id uuid.UUID) (*store.SessionRecord, error) {
		return h.sessions.Reveal(r.Context(), id)
	})
}

// Known handles POST /session/known form submissions
func (h *PageHandler) Known(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(id uuid.UUID) (*store.SessionRecord, error) {
		return h.sessions.Respond(r.Context(), id, domain.ResponseKnown)
	})
}

// Unknown handles POST /session/unknown form submissions
func (h *PageHandler) Unknown(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, func(id uuid.UUID) (*store.SessionRecord, error) {
		return h.sessions.Respond(r.Context(), id, domain.ResponseUnknown)
	})
}

// apply runs a session action and redirects back to the page (POST/redirect/GET).
// A disabled control is not an error for the browser: the page is simply
// shown again.
func (h *PageHandler) apply(
	w http.ResponseWriter,
	r *http.Request,
	action func(id uuid.UUID) (*store.SessionRecord, error),
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if _, err := action(id); err != nil {
		if !errors.Is(err, session.ErrTransitionDisabled) {
			h.fail(w, r, err)
			return
		}
		log.Debug("disabled control submitted", slog.String("path", r.URL.Path))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *PageHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.GetSessionID(r)
	if !ok {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("no session bound to page request")
		http.Error(w, GetSafeErrorMessage(nil), http.StatusInternalServerError)
		return uuid.Nil, false
	}
	return id, true
}

// fail writes a plain-text error page with a safe message.
func (h *PageHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContextOrDefault(r.Context(), h.logger).Log(r.Context(), level, "page action failed",
		slog.String("error", redact.Error(err)),
		slog.Int("status_code", status))
	http.Error(w, GetSafeErrorMessage(err), status)
}
