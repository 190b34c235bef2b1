package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/api/middleware"
	"github.com/phrazzld/vocab-drill/internal/domain"
	"github.com/phrazzld/vocab-drill/internal/events"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
	"github.com/phrazzld/vocab-drill/internal/platform/memory"
	"github.com/phrazzld/vocab-drill/internal/service"
	"github.com/phrazzld/vocab-drill/internal/testutils"
)

const testCookieName = "vocab_session"

// testDataset holds two groups of two cards; word 2 carries inline markup.
func testDataset() domain.Dataset {
	return testutils.NewTestDataset(
		[]domain.Entry{
			testutils.NewTestEntry(1, "abate"),
			testutils.NewTestEntry(2, "bolster", testutils.WithMeaning("to <b>support</b><script>alert(1)</script>")),
		},
		[]domain.Entry{testutils.NewTestEntry(3, "cajole"), testutils.NewTestEntry(4, "dearth")},
	)
}

type testServer struct {
	router   http.Handler
	sessions service.SessionService
	tally    *events.Tally
}

// newTestServer wires the real service stack over an in-memory store and
// mounts the routes the way the server binary does.
func newTestServer(t *testing.T) testServer {
	t.Helper()

	log := logger.Discard()
	controller := testutils.MustNewController(t, testDataset(), 11)

	emitter := events.NewInMemoryEventEmitter(log)
	tally := events.NewTally()
	emitter.RegisterHandler(tally)

	sessions, err := service.NewSessionService(memory.NewSessionStore(log), controller, emitter, log)
	require.NoError(t, err)

	sessionHandler := NewSessionHandler(sessions, log)
	pageHandler := NewPageHandler(sessions, log)
	statsHandler := NewStatsHandler(sessions, tally, log)
	cookies := middleware.NewSessionMiddleware(sessions, testCookieName, time.Hour)

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(log))
	r.Group(func(r chi.Router) {
		r.Use(cookies.Resolve)
		r.Get("/", pageHandler.Show)
		r.Post("/session/mode", pageHandler.SwitchMode)
		r.Post("/session/reveal", pageHandler.Reveal)
		r.Post("/session/known", pageHandler.Known)
		r.Post("/session/unknown", pageHandler.Unknown)
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", statsHandler.GetStats)
		r.Post("/sessions", sessionHandler.CreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Put("/mode", sessionHandler.SwitchMode)
			r.Post("/reveal", sessionHandler.Reveal)
			r.Post("/answer", sessionHandler.Answer)
		})
	})

	return testServer{router: r, sessions: sessions, tally: tally}
}

func (s testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}
