package domain

import "errors"

// ErrorKind classifies a domain failure. The HTTP layer maps each kind to a
// response status in exactly one place.
type ErrorKind string

const (
	ErrKindValidation      ErrorKind = "validation"
	ErrKindNotFound        ErrorKind = "not_found"
	ErrKindConflict        ErrorKind = "conflict"
	ErrKindUnauthenticated ErrorKind = "unauthenticated"
	ErrKindForbidden       ErrorKind = "forbidden"
	ErrKindInternal        ErrorKind = "internal"
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidationError(msg string) *Error {
	return &Error{Kind: ErrKindValidation, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: ErrKindNotFound, Message: msg}
}

func NewConflictError(msg string) *Error {
	return &Error{Kind: ErrKindConflict, Message: msg}
}

func NewUnauthenticatedError(msg string) *Error {
	return &Error{Kind: ErrKindUnauthenticated, Message: msg}
}

func NewForbiddenError(msg string) *Error {
	return &Error{Kind: ErrKindForbidden, Message: msg}
}

func NewInternalError(msg string, err error) *Error {
	return &Error{Kind: ErrKindInternal, Message: msg, Err: err}
}

// KindOf extracts the kind from err, or ErrKindInternal for untyped errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrKindInternal
}

// MessageOf returns the user-visible reason string for err. Untyped errors
// get a generic message so internal detail never leaks to clients.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Kind != ErrKindInternal {
		return de.Message
	}
	return "something failed"
}
