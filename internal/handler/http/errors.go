// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced at the transport boundary. Callers can match
// against them with [errors.Is].
var (
	// ErrNoCredential is returned by the auth middleware when the request
	// carries no "Authorization" header.
	ErrNoCredential = errors.New("no credential supplied")

	// ErrMalformedCredential is returned when the "Authorization" header is
	// not exactly "<scheme> <token>" or the scheme is not Bearer.
	ErrMalformedCredential = errors.New("malformed credential")

	// ErrInvalidCredential is returned when the bearer token fails signature,
	// algorithm, issuer or expiry checks.
	ErrInvalidCredential = errors.New("invalid or expired credential")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// errNoPrincipal means a protected handler ran without the auth
	// middleware in front of it.
	errNoPrincipal = errors.New("no principal in request context")
)
