package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/vocab-drill/internal/api"
	apiMiddleware "github.com/phrazzld/vocab-drill/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	sessionHandler := api.NewSessionHandler(app.sessionService, app.logger)
	pageHandler := api.NewPageHandler(app.sessionService, app.logger)
	statsHandler := api.NewStatsHandler(app.sessionService, app.eventTally, app.logger)
	sessionCookies := apiMiddleware.NewSessionMiddleware(
		app.sessionService,
		app.config.Session.CookieName,
		app.config.Session.TTL,
	)

	// Browser page, bound to a session through a cookie
	r.Group(func(r chi.Router) {
		r.Use(sessionCookies.Resolve)
		r.Get("/", pageHandler.Show)
		r.Post("/session/mode", pageHandler.SwitchMode)
		r.Post("/session/reveal", pageHandler.Reveal)
		r.Post("/session/known", pageHandler.Known)
		r.Post("/session/unknown", pageHandler.Unknown)
	})

	// JSON API, sessions addressed by ID
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

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
