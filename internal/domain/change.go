package domain

import "context"

// Change is one write that can be compensated. The in-memory store journals
// every Change applied inside a unit of work and reverts them newest first
// when the unit fails.
type Change interface {
	Apply(ctx context.Context) error

	// Revert compensates a successful Apply. It is never called otherwise.
	Revert(ctx context.Context) error

	// Describe names the write in logs, e.g. "archive thread 12".
	Describe() string
}
