package webhook

import (
	"log/slog"

	"github.com/jsamuelsen11/forumcore/internal/platform/config"
	"github.com/jsamuelsen11/forumcore/internal/platform/httpclient"
	"github.com/jsamuelsen11/forumcore/internal/platform/telemetry"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

// FromConfig builds a Notifier with one resilient HTTP client per configured
// endpoint. The clients are returned as health checkers so readiness reports
// a receiver whose circuit breaker is open.
func FromConfig(cfg *config.NotifyConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Notifier, []ports.HealthChecker) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	endpoints := make([]Endpoint, 0, len(cfg.Endpoints))
	checkers := make([]ports.HealthChecker, 0, len(cfg.Endpoints))

	for _, ep := range cfg.Endpoints {
		clientCfg := cfg.Client
		clientCfg.BaseURL = ep.URL

		client := httpclient.New(&clientCfg, "webhook:"+ep.Name, metrics, logger)
		endpoints = append(endpoints, Endpoint{Deliverer: client, Events: ep.Events})
		checkers = append(checkers, client)
	}

	return New(endpoints, cfg.Workers, cfg.QueueSize, logger), checkers
}
