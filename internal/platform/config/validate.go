package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"golang.org/x/text/language"
)

// Validate reports every invalid setting at once, joined into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Storage.validate(&p)
	c.Notify.validate(&p)
	c.I18n.validate(&p)
	c.Telemetry.validate(&p)
	return errors.Join(p...)
}

// problems accumulates validation failures.
type problems []error

// unless records a failure when ok is false.
func (p *problems) unless(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// oneOf records a failure when got is not among allowed.
func (p *problems) oneOf(key, got string, allowed ...string) {
	p.unless(slices.Contains(allowed, got), "%s must be one of %v, got %q", key, allowed, got)
}

func (s *ServerConfig) validate(p *problems) {
	p.unless(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.unless(s.ReadTimeout > 0, "server.read_timeout must be positive, got %s", s.ReadTimeout)
	p.unless(s.WriteTimeout > 0, "server.write_timeout must be positive, got %s", s.WriteTimeout)
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
}

func (s *StorageConfig) validate(p *problems) {
	p.oneOf("storage.driver", s.Driver, DriverSQLite, DriverMemory)
	p.unless(s.Driver != DriverSQLite || s.DSN != "", "storage.dsn must not be empty for the sqlite driver")
}

// validate checks the webhook settings only when forwarding is on.
func (n *NotifyConfig) validate(p *problems) {
	if !n.Enabled {
		return
	}

	p.unless(n.Workers >= 1, "notify.workers must be >= 1, got %d", n.Workers)
	p.unless(n.QueueSize >= 1, "notify.queue_size must be >= 1, got %d", n.QueueSize)
	p.unless(len(n.Endpoints) > 0, "notify.endpoints must not be empty when notify is enabled")

	seen := make(map[string]bool, len(n.Endpoints))
	for i, ep := range n.Endpoints {
		p.unless(ep.Name != "", "notify.endpoints[%d].name must not be empty", i)
		p.unless(ep.Name == "" || !seen[ep.Name], "notify.endpoints[%d].name %q is duplicated", i, ep.Name)
		seen[ep.Name] = true

		u, err := url.Parse(ep.URL)
		p.unless(err == nil && u.Scheme != "" && u.Host != "",
			"notify.endpoints[%d].url must be an absolute URL, got %q", i, ep.URL)
	}

	n.Client.validate(p)
}

func (cl *ClientConfig) validate(p *problems) {
	const key = "notify.client"

	p.unless(cl.Timeout > 0, "%s.timeout must be positive", key)
	p.unless(cl.Retry.MaxAttempts >= 1,
		"%s.retry.max_attempts must be >= 1, got %d", key, cl.Retry.MaxAttempts)
	p.unless(cl.Retry.Multiplier > 0,
		"%s.retry.multiplier must be positive, got %g", key, cl.Retry.Multiplier)
	p.unless(cl.CircuitBreaker.MaxFailures >= 1,
		"%s.circuit_breaker.max_failures must be >= 1, got %d", key, cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.unless(rl.RequestsPerSecond >= 0,
		"%s.rate_limit.requests_per_second must not be negative, got %g", key, rl.RequestsPerSecond)
	p.unless(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"%s.rate_limit.burst_size must be >= 1 when limiting, got %d", key, rl.BurstSize)
}

func (i *I18nConfig) validate(p *problems) {
	_, err := language.Parse(i.DefaultLanguage)
	p.unless(err == nil, "i18n.default_language %q is not a valid language tag: %v", i.DefaultLanguage, err)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	p.unless(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
}
