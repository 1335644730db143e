// Package config provides configuration loading and validation for the forum
// daemon. Configuration is loaded from YAML files with environment variable
// overrides using a layered system: defaults -> base.yaml -> {profile}.yaml
// -> env vars.
package config

import "time"

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Storage   StorageConfig   `koanf:"storage"`
	Notify    NotifyConfig    `koanf:"notify"`
	I18n      I18nConfig      `koanf:"i18n"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds the operations HTTP listener settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// ShutdownTimeout bounds the drain of in-flight requests on exit.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StorageConfig selects the entity storage backend.
type StorageConfig struct {
	Driver      string `koanf:"driver"`
	DSN         string `koanf:"dsn"`
	AutoMigrate bool   `koanf:"auto_migrate"`
}

// NotifyConfig holds the webhook forwarding of completed actions. Events
// beyond QueueSize pending deliveries are dropped.
type NotifyConfig struct {
	Enabled   bool             `koanf:"enabled"`
	Workers   int              `koanf:"workers"`
	QueueSize int              `koanf:"queue_size"`
	Endpoints []EndpointConfig `koanf:"endpoints"`
	Client    ClientConfig     `koanf:"client"`
}

// EndpointConfig is one webhook receiver. An empty Events list receives
// every completed action; otherwise entries match hook keys by prefix
// (e.g. "post." or "post.thumbing-up.after").
type EndpointConfig struct {
	Name   string   `koanf:"name"`
	URL    string   `koanf:"url"`
	Events []string `koanf:"events"`
}

// ClientConfig holds outbound HTTP client settings shared by every webhook
// endpoint. BaseURL is filled per endpoint.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig caps outbound requests per endpoint. A zero rate disables
// limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// I18nConfig holds the failure code catalog settings.
type I18nConfig struct {
	DefaultLanguage string `koanf:"default_language"`
	// Catalog is a YAML file overriding the built-in messages. Optional.
	Catalog string `koanf:"catalog"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
