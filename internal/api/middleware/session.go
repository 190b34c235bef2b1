package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/vocab-drill/internal/api/shared"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/redact"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/store"
)

// SessionResolver is the part of the session service the cookie middleware needs.
type SessionResolver interface {
	Touch(ctx context.Context, id uuid.UUID) (*store.SessionRecord, error)
	Start(ctx context.Context) (*store.SessionRecord, error)
}

// SessionMiddleware binds browser requests to a drill session through a cookie.
type SessionMiddleware struct {
	sessions   SessionResolver
	cookieName string
	ttl        time.Duration
}

// NewSessionMiddleware creates a new SessionMiddleware with the given dependencies.
func NewSessionMiddleware(sessions SessionResolver, cookieName string, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cookieName,
		ttl:        ttl,
	}
}

// Resolve reads the session cookie and adds the session ID to the request
// context. Every resolved request marks the session active and renews the
// cookie's lifetime.
//
// A missing, malformed or expired cookie starts a fresh session and sets a
// new cookie. A form action arriving without a live session refers to a
// card the new session never showed, so it is not applied: the browser is
// redirected to the page instead.
func (m *SessionMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if id, ok := m.existingSession(r); ok {
			m.setCookie(w, id)
			ctx := shared.SetSessionID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		rec, err := m.sessions.Start(r.Context())
		if err != nil {
			log.Error("failed to start session", "error", redact.Error(err))
			http.Error(w, "Failed to start a drill session", http.StatusInternalServerError)
			return
		}
		m.setCookie(w, rec.ID)

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			log.Debug("action without a live session dropped",
				"method", r.Method,
				"path", r.URL.Path)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		ctx := shared.SetSessionID(r.Context(), rec.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) setCookie(w http.ResponseWriter, id uuid.UUID) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id.String(),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// existingSession returns the live session named by the request cookie,
// refreshing its last-activity time.
func (m *SessionMiddleware) existingSession(r *http.Request) (uuid.UUID, bool) {
	log := logger.FromContext(r.Context())

	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		log.Debug("malformed session cookie")
		return uuid.Nil, false
	}

	if _, err := m.sessions.Touch(r.Context(), id); err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) {
			log.Warn("failed to look up session", "error", redact.Error(err))
		} else {
			log.Debug("session cookie refers to expired session")
		}
		return uuid.Nil, false
	}

	return id, true
}

// GetSessionID extracts the session ID from the request context.
// Returns the session ID and a boolean indicating if it was found.
func GetSessionID(r *http.Request) (uuid.UUID, bool) {
	return shared.GetSessionID(r.Context())
}
