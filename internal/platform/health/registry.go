// Package health runs the readiness checks of forumd: the entity store and
// every webhook receiver. Checks run concurrently, each under its own
// deadline, so one slow receiver cannot stall the probe.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/forumcore/internal/app/fanout"
	"github.com/jsamuelsen11/forumcore/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when no WithCheckTimeout option
// is given.
const DefaultCheckTimeout = 2 * time.Second

// maxConcurrentChecks caps the checks in flight during one probe.
const maxConcurrentChecks = 8

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the deadline of each check. Non-positive values keep
// the default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// Registry holds the checkers registered at startup.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check and returns the results keyed by checker name;
// nil means healthy. A check that panics or outlives its deadline reports an
// error. When two checkers share a name the later registration wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, maxConcurrentChecks, checkers,
		func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
			ctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			return struct{}{}, c.HealthCheck(ctx)
		},
	)

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}
