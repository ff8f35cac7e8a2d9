package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/internal/utils"
	"github.com/MKhiriev/marmita-api/models"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It passes the "Authorization" header through authenticate and, on success,
// stores the resulting [models.Principal] in the request context (see
// [utils.WithPrincipal]) before calling next. On failure it writes a JSON 401
// and next is never invoked. The account store is not consulted.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := h.authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Int64("user_id", principal.UserID).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), principal)))
	})
}

// authenticate runs the header through four checks, stopping at the first
// failure:
//
//  1. presence: header is non-empty, else [ErrNoCredential]
//  2. shape: exactly two whitespace-separated parts, else [ErrMalformedCredential]
//  3. scheme: first part is "Bearer" in any letter case, else [ErrMalformedCredential]
//  4. token: signature, algorithm, issuer and expiry verify, else [ErrInvalidCredential]
func (h *Handler) authenticate(ctx context.Context, header string) (models.Principal, error) {
	if header == "" {
		return models.Principal{}, ErrNoCredential
	}

	parts := strings.Fields(header)
	if len(parts) != 2 {
		return models.Principal{}, ErrMalformedCredential
	}

	if !strings.EqualFold(parts[0], bearerScheme) {
		return models.Principal{}, ErrMalformedCredential
	}

	token, err := h.services.TokenService.ParseToken(ctx, parts[1])
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	return token.Claims.Principal(), nil
}
