package action

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// ErrCancelled is the cause of a Result whose before-hook gate was closed.
var ErrCancelled = errors.New("action: cancelled by hook observer")

// BusinessError is a precondition or data failure. Its fields become the
// failed Result's error map as they are.
type BusinessError struct {
	Fields map[string]any
}

// Reject returns a BusinessError carrying a single KeyAPI code.
func Reject(code string) *BusinessError {
	return &BusinessError{Fields: map[string]any{KeyAPI: code}}
}

func (e *BusinessError) Error() string {
	if code, ok := e.Fields[KeyAPI].(string); ok && len(e.Fields) == 1 {
		return "action rejected: " + code
	}
	keys := slices.Sorted(maps.Keys(e.Fields))
	return "action rejected: " + strings.Join(keys, ", ")
}

// Guard is one precondition. It returns nil to let the action proceed.
type Guard func(ctx context.Context) error

// Check runs guards in order and returns the first failure. Later guards
// are not evaluated.
func Check(ctx context.Context, guards ...Guard) error {
	for _, g := range guards {
		if err := g(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Deny returns a guard rejecting with code when cond holds.
func Deny(cond bool, code string) Guard {
	return func(context.Context) error {
		if cond {
			return Reject(code)
		}
		return nil
	}
}

// TypeMismatchError reports an argument that does not provide the
// capability an action needs, including a nil argument.
type TypeMismatchError struct {
	Param string
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s must implement %s, got %s", e.Param, e.Want, e.Got)
}

// Require asserts that v provides capability T.
func Require[T any](param string, v any) (T, error) {
	if t, ok := v.(T); ok && !isNil(v) {
		return t, nil
	}
	var zero T
	return zero, &TypeMismatchError{
		Param: param,
		Want:  reflect.TypeFor[T]().String(),
		Got:   fmt.Sprintf("%T", v),
	}
}

// Capability returns a check for an Op's Requires list.
func Capability[T any](param string, v any) func() error {
	return func() error {
		_, err := Require[T](param, v)
		return err
	}
}

// Present reports whether v holds a usable value. Typed nil pointers and
// nil interfaces are absent.
func Present(v any) bool { return !isNil(v) }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
