// Package http is the operational HTTP surface of forumd: health probes and
// the failure code catalog.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/forumcore/internal/adapters/http/dto"
	"github.com/jsamuelsen11/forumcore/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/forumcore/internal/domain"
)

// NewRouter registers every route behind middlewares, outermost first.
// Unknown paths get a problem+json 404.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares...)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("route %s: %w", req.URL.Path, domain.ErrNotFound))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1/i18n", func(r chi.Router) {
		r.Get("/", catalogHandler.Languages)
		r.Get("/{lang}", catalogHandler.Catalog)
		r.Get("/{lang}/{code}", catalogHandler.Message)
	})

	return r
}
