package service

import (
	"errors"
)

// Error kinds. Every error returned by a service matches exactly one of
// them with [errors.Is]; the HTTP layer maps kinds to status codes.
var (
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("authentication error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrStorage    = errors.New("storage error")
	ErrInternal   = errors.New("internal error")
)

var (
	ErrEmptyCredentials        = newError(ErrValidation, "email and password are required")
	ErrPasswordTooLong         = newError(ErrValidation, "password is too long")
	ErrInvalidCredentials      = newError(ErrAuth, "invalid credentials")
	ErrIncorrectPassword       = newError(ErrAuth, "incorrect password")
	ErrTokenIsExpiredOrInvalid = newError(ErrAuth, "token is expired or invalid")
	ErrOrderNotFound           = newError(ErrNotFound, "order not found")
	ErrForeignUser             = newError(ErrForbidden, "access to another user's data is forbidden")
	ErrInternalServer          = newError(ErrInternal, "internal server error")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Error is a service failure with a message that is safe to show to API
// clients. The underlying cause, if any, is kept for logging and errors.As.
type Error struct {
	kind    error
	message string
	cause   error
}

func newError(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

// StorageError reports a data store failure, passing the store's own message
// through to the client.
func StorageError(err error) *Error {
	return &Error{kind: ErrStorage, message: err.Error(), cause: err}
}

// withCause returns a copy of e that wraps cause.
func withCause(e *Error, cause error) *Error {
	return &Error{kind: e.kind, message: e.message, cause: cause}
}

func (e *Error) Error() string {
	return e.message
}

// Kind returns the error kind, e.g. ErrNotFound.
func (e *Error) Kind() error {
	return e.kind
}

// Is reports a match for the error's kind and for any *Error with the same
// kind and message, so errors.Is(err, ErrOrderNotFound) holds for copies
// created by withCause.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.kind == t.kind && e.message == t.message
	}
	return target == e.kind
}

func (e *Error) Unwrap() error {
	return e.cause
}
