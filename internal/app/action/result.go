package action

import (
	"fmt"
	"maps"
)

// Well-known keys of a failure's error map.
const (
	// KeyAPI holds a single business failure code such as "member.banned".
	KeyAPI = "api"
	// KeyException holds the error of an unexpected fault.
	KeyException = "exception"
)

// Result is the outcome of one action invocation. It is a value: nothing
// inside it changes after construction.
//
// A successful Result never carries errors. A failed Result carries either a
// single KeyAPI code, the storage collaborator's field errors, or a
// KeyException fault. Cancelled actions and capability mismatches fail with
// an empty map; Cause tells them apart.
type Result struct {
	succeeded bool
	errors    map[string]any
	cause     error
}

// Success returns a successful Result.
func Success() Result {
	return Result{succeeded: true}
}

// Failure returns a failed Result holding a copy of errs.
func Failure(errs map[string]any) Result {
	return Result{errors: maps.Clone(errs)}
}

func failure(cause error, errs map[string]any) Result {
	r := Failure(errs)
	r.cause = cause
	return r
}

// Succeeded reports whether the action committed.
func (r Result) Succeeded() bool { return r.succeeded }

// Errors returns a copy of the failure's error map. It is never nil.
func (r Result) Errors() map[string]any {
	out := make(map[string]any, len(r.errors))
	maps.Copy(out, r.errors)
	return out
}

// Code returns the KeyAPI failure code, or "" when there is none.
func (r Result) Code() string {
	code, _ := r.errors[KeyAPI].(string)
	return code
}

// Exception returns the KeyException fault, or nil when there is none.
func (r Result) Exception() error {
	err, _ := r.errors[KeyException].(error)
	return err
}

// Cause returns the error that ended the action: ErrCancelled, a
// *TypeMismatchError, a business error or a fault. It is nil on success.
func (r Result) Cause() error { return r.cause }

func (r Result) String() string {
	if r.succeeded {
		return "success"
	}
	return fmt.Sprintf("failure %v", r.errors)
}
