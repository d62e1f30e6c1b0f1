package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goodudetheboy/Floowy-backend/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	svc    *services.Orchestrator // Dependency on the Core Service
	router chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Orchestrator) *Handler {
	h := &Handler{
		svc:    svc,
		router: chi.NewRouter(),
	}

	// Register Routes
	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// It acts as a proxy, passing the request to our internal router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	h.router.Use(requestID, accessLog, recoverer)

	h.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	h.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health Check
	h.router.Get("/health", h.HealthCheck)

	h.router.Route("/api", func(r chi.Router) {
		r.Use(limitBody)
		r.Post("/recommend", h.Recommend)
		r.Post("/generate-song", h.GenerateSong)
		r.Post("/playlist-genres", h.PlaylistGenres)
		r.Post("/analyze-songs", h.AnalyzeSongs)
	})
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Floowy is live"})
}
