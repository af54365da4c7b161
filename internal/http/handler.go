package http

import (
	"encoding/json"
	"net/http"

	"github.com/davidbz/promptrelay/internal/observability"
)

// statusRunning is reported while the process is up; it says nothing about the gateway connection.
const statusRunning = "running"

// Handler serves the liveness endpoints.
type Handler struct{}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler() *Handler {
	return &Handler{}
}

// HandleHealth handles health check requests on / and /health.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Path != "/" && r.URL.Path != "/health" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"status": statusRunning,
	}); err != nil {
		// Already written status, can't change it, just log.
		observability.FromContext(r.Context()).Warn("failed to encode health response", observability.Error(err))
	}
}
