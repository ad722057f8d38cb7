// Package utils holds small helpers shared by the transport and service
// layers: request-scoped context values, JSON responses, JWT handling,
// password hashing, the outbound HTTP client and trace ids.
package utils

import (
	"context"
)

// contextKey keeps request-scoped keys of this package apart from string keys
// set elsewhere.
type contextKey string

func (c contextKey) String() string {
	return "utils context key " + string(c)
}

var (
	// UserIDCtxKey holds the int64 id of the authenticated user.
	UserIDCtxKey = contextKey("userID")

	// UserEmailCtxKey holds the email claim of the authenticated user.
	UserEmailCtxKey = contextKey("userEmail")
)

// WithUser returns a copy of ctx carrying the authenticated user's identity.
func WithUser(ctx context.Context, userID int64, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, UserEmailCtxKey, email)
}

// GetUserIDFromContext reports the user id stored by WithUser.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	return valueFromContext[int64](ctx, UserIDCtxKey)
}

// GetUserEmailFromContext reports the email stored by WithUser.
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	return valueFromContext[string](ctx, UserEmailCtxKey)
}

func valueFromContext[T any](ctx context.Context, key contextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}
