// Package errors provides structured error handling for the Vizia framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindStaleEntity indicates a dereference of a destroyed entity handle.
	KindStaleEntity
	// KindProxyClosed indicates a send on the event proxy after loop teardown.
	KindProxyClosed
	// KindStyle indicates a malformed style value resolved to a fallback.
	KindStyle
	// KindPersist indicates a window-state persistence failure.
	KindPersist
	// KindInit indicates a missing or failed prerequisite collaborator.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStaleEntity:
		return "stale-entity"
	case KindProxyClosed:
		return "proxy-closed"
	case KindStyle:
		return "style"
	case KindPersist:
		return "persist"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the Vizia framework.
type Error struct {
	// Op is the operation that failed (e.g., "style.Resolver.Process").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Entity is the stringified entity handle, if one is involved.
	Entity string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s [%s] entity=%s: %v", e.Op, e.Kind, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal reports whether the error must abort before the loop starts.
// Only init failures are fatal; everything else is scoped to an entity
// or subtree and resolved with a fallback.
func (e *Error) Fatal() bool {
	return e.Kind == KindInit
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.runIteration").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the Vizia framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
