package ports

import "context"

// HealthChecker reports whether a dependency of forumd is usable. The entity
// store and each webhook client implement it.
type HealthChecker interface {
	// Name identifies the dependency in readiness output, e.g. "sqlite" or
	// "webhook:audit".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must return
	// once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them for the
// readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
