// Package serrors provides semantic errors: sentinel kinds that classify a
// failure (not found, bad request, rate limited, ...) plus a wrapper that
// carries a kind, an optional cause and an optional human-readable message.
// HTTP handlers map kinds to status codes without inspecting error strings.
package serrors

import (
	"errors"
	"fmt"
)

// Kind marks a semantic error category created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind. Kinds are comparable sentinels
// and match through errors.Is/As when wrapped in an Error.
func NewKind(name string) Kind { return kind{s: name} }

// Default kinds cover the failure categories the application distinguishes.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller is not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an internal error.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable indicates a dependency is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited indicates the caller exhausted its quota.
	ErrRateLimited = NewKind("RATE_LIMITED")
	// ErrNotConfigured indicates a required credential or setting is absent,
	// as opposed to a transient upstream failure.
	ErrNotConfigured = NewKind("NOT_CONFIGURED")
)

// Error is a semantic error. errors.Is/As match against both the kind
// sentinel and the wrapped cause.
//
// Error() formats as "<msg>: <cause>" when both are set, falling back to
// whichever is present, then to the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds a semantic error from a kind and a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds a semantic error from a kind, a concrete cause and a formatted
// message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds a semantic error carrying just the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap exposes the wrapped cause to errors.Unwrap/Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel and the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches target against the kind sentinel and the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the attached message, which may be empty.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }
