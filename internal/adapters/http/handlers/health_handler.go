package handlers

import (
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/forumcore/internal/adapters/http/dto"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

// Probe states.
const (
	StatusOK       = "ok"
	StatusReady    = "ready"
	StatusDegraded = "degraded"
	StatusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	optional []string
}

// NewHealthHandler creates a HealthHandler. A failing checker whose name
// starts with one of the optional prefixes (e.g. "webhook:") only degrades
// readiness; any other failure makes forumd not ready.
func NewHealthHandler(registry ports.HealthRegistry, optional ...string) *HealthHandler {
	return &HealthHandler{registry: registry, optional: optional}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: StatusOK})
}

// Readiness handles GET /health/ready: 503 when a required check fails,
// 200 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := h.evaluate(h.registry.CheckAll(r.Context()))

	code := http.StatusOK
	if resp.Status == StatusNotReady {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}

func (h *HealthHandler) evaluate(results map[string]error) dto.HealthResponse {
	resp := dto.HealthResponse{
		Status: StatusReady,
		Checks: make(map[string]string, len(results)),
	}

	required := false
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = StatusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Failing = append(resp.Failing, name)
		if !h.isOptional(name) {
			required = true
		}
	}
	slices.Sort(resp.Failing)

	switch {
	case required:
		resp.Status = StatusNotReady
	case len(resp.Failing) > 0:
		resp.Status = StatusDegraded
	}
	return resp
}

func (h *HealthHandler) isOptional(name string) bool {
	return slices.ContainsFunc(h.optional, func(prefix string) bool {
		return strings.HasPrefix(name, prefix)
	})
}
