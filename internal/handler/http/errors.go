// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned for request bodies that are not valid JSON
	// for the expected schema.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when an {id} path parameter is not an integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidGzip is returned when a gzip-encoded request body cannot be read.
	ErrInvalidGzip = errors.New("invalid gzip data")
)

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
