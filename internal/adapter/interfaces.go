// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the marmita-api REST API.
//
// [APIClient] hides the transport from callers: it serialises requests,
// keeps the bearer token returned by login, and maps HTTP status codes to
// the sentinel errors in errors.go so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/marmita-api/models"
)

// APIClient talks to a running marmita-api server.
type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Register creates an account via POST /register.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges credentials for a token via POST /login. On success
	// the token is stored with SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Profile fetches GET /profile using the stored token.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// Version fetches GET /version.
	Version(ctx context.Context) (models.VersionResponse, error)
}
