package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// runner, if non-nil, backs the chat endpoint.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *Service, runner ChatRunner, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc, runner)

	r := chi.NewRouter()
	r.Get("/healthz", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(authEnabled, token))

		// Notes, addressed by display name.
		r.Get("/notes", h.ListNotes)
		r.Post("/notes", h.CreateNote)
		r.Get("/notes/{name}", h.GetNote)
		r.Get("/notes/{name}/expand", h.ExpandNote)

		// Search.
		r.Get("/search", h.Search)

		// Graph.
		r.Get("/graph", h.Graph)

		// Assistant.
		r.Post("/chat", h.Chat)

		// SSE endpoint (protected by same auth middleware).
		if sseHandler != nil {
			r.Get("/events", sseHandler.ServeHTTP)
		}
	})

	return r
}
