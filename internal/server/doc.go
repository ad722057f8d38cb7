// Package server runs the HTTP transport of the application.
//
// It owns the listener lifecycle: startup, cancellation through a context
// and graceful shutdown bounded by the configured timeout.
package server
