// Package utils provides general-purpose helpers shared by the server, the
// API client and the command line tools: password hashing, access token
// signing and verification, request context keys, JSON response writing,
// HTTP client construction and trace ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/marmita-api/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the authenticated identity is stored
// in the request context. Use WithPrincipal and GetPrincipalFromContext
// instead of accessing it directly.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, p)
}

// GetPrincipalFromContext retrieves the authenticated identity from the context.
//
// ok is false when no principal was attached, which for handlers mounted
// behind the auth middleware indicates a wiring error.
//
//	principal, ok := utils.GetPrincipalFromContext(r.Context())
//	if !ok {
//	    // handle missing principal
//	}
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return p, ok
}
