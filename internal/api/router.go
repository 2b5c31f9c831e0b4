package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/state", s.handleState)
	r.Get(s.wsCfg.Path, s.handleWebSocket)

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}

// handleState returns the last broadcast device state. Until the first
// broadcast there is nothing truthful to serve, so clients get a 503
// rather than a made-up document.
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	state, ok := s.hub.LastState()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "state not yet available",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(state) //nolint:errcheck // Client disconnect mid-write is not actionable
}
