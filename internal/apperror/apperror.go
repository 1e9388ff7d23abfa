package apperror

import (
	"errors"
	"fmt"
)

// Kind is a stable machine-readable classification of a failure. Controllers
// map kinds to HTTP statuses; services only deal in kinds.
type Kind string

const (
	KindNotFound            Kind = "not_found"
	KindInvalidState        Kind = "invalid_state"
	KindIncomplete          Kind = "incomplete"
	KindConflict            Kind = "conflict"
	KindForbidden           Kind = "forbidden"
	KindUnauthorized        Kind = "unauthorized"
	KindValidation          Kind = "validation"
	KindUpstreamTimeout     Kind = "upstream_timeout"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindInternal            Kind = "internal"
)

// Error carries a kind plus a human-readable message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(what string) *Error {
	return New(KindNotFound, what+" not found")
}

func InvalidState(message string) *Error {
	return New(KindInvalidState, message)
}

func Conflict(message string) *Error {
	return New(KindConflict, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, message)
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

func Internal(err error) *Error {
	return Wrap(KindInternal, "unexpected internal error", err)
}

// IncompleteError reports that a test does not have enough answers to be
// completed. It carries the required and actual counts for the caller.
type IncompleteError struct {
	Required int
	Actual   int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("incomplete: test requires %d answers, only %d submitted", e.Required, e.Actual)
}

func Incomplete(required, actual int) *IncompleteError {
	return &IncompleteError{Required: required, Actual: actual}
}

// KindOf extracts the Kind of err, walking the wrap chain. Unknown errors are
// classified as internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	var ie *IncompleteError
	if errors.As(err, &ie) {
		return KindIncomplete
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
