package ports

import "github.com/jsamuelsen11/forumcore/internal/app/action"

// Transactor is the storage backend's unit-of-work provider. It runs action
// closures atomically and reports the backend's health on readiness probes.
type Transactor interface {
	action.UnitOfWork
	HealthChecker
}
