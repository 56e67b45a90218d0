package handlers

import (
	"net/http"
	"sort"

	"github.com/jsamuelsen11/go-autonomy/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness checks. Readiness covers
// every guarded device and lane worker in the registry.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 503 with the sorted names of
// failing components when any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	failing := make([]string, 0)
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			failing = append(failing, name)
			continue
		}
		checks[name] = statusOK
	}
	sort.Strings(failing)

	status, code := statusReady, http.StatusOK
	if len(failing) > 0 {
		status, code = statusNotReady, http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":  status,
		"checks":  checks,
		"failing": failing,
	})
}
