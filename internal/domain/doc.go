// Package domain holds what every forum package shares: sentinel errors,
// field-level ValidationError, and the compensable Change used by in-memory
// units of work. Entity contracts live in domain/forum.
package domain
