package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinels matched with errors.Is. The HTTP layer maps them to statuses.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError maps field names to what is wrong with them. It matches
// ErrValidation under errors.Is.
//
// Entity mutators return it when storage refuses a write for data reasons,
// and the action pipeline copies Fields into the failed Result. Any other
// mutator error is an unexpected fault.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError reports a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, field := range keys {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
