package action

import "fmt"

// Fault is an unexpected failure with a fixed message, optionally wrapping
// the storage error that caused it.
type Fault struct {
	Msg   string
	Cause error
}

// NewFault returns a Fault with the given message and cause.
func NewFault(msg string, cause error) *Fault {
	return &Fault{Msg: msg, Cause: cause}
}

func (f *Fault) Error() string { return f.Msg }

func (f *Fault) Unwrap() error { return f.Cause }

// PanicError is the fault recorded when an action closure panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
