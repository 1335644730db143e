package config

const (
	defaultServerPort = 8080

	defaultNotifyWorkers   = 4
	defaultNotifyQueueSize = 256

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitBurst = 10
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":       DriverSQLite,
		"storage.dsn":          "file:forum.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		"storage.auto_migrate": true,

		"notify.enabled":                                false,
		"notify.workers":                                defaultNotifyWorkers,
		"notify.queue_size":                             defaultNotifyQueueSize,
		"notify.client.timeout":                         "10s",
		"notify.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"notify.client.retry.initial_interval":          "100ms",
		"notify.client.retry.max_interval":              "10s",
		"notify.client.retry.multiplier":                defaultRetryMultiplier,
		"notify.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"notify.client.circuit_breaker.timeout":         "30s",
		"notify.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"notify.client.rate_limit.requests_per_second":  0,
		"notify.client.rate_limit.burst_size":           defaultRateLimitBurst,

		"i18n.default_language": "en",
		"i18n.catalog":          "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "forumd",
	}
}
