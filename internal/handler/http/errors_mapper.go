package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/internal/service"
	"github.com/MKhiriev/marmita-api/internal/store"
	"github.com/MKhiriev/marmita-api/internal/utils"
)

// errorResponse describes how a sentinel error is rendered to clients.
// When detailed is set the full error text is returned, otherwise message.
type errorResponse struct {
	target   error
	status   int
	message  string
	detailed bool
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{target: ErrInvalidJSON, status: http.StatusBadRequest, message: ErrInvalidJSON.Error()},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, detailed: true},
	{target: store.ErrEmailAlreadyInUse, status: http.StatusBadRequest, message: "email already in use"},
	{target: store.ErrNoUserWasFound, status: http.StatusNotFound, message: "user not found"},
	{target: service.ErrWrongPassword, status: http.StatusUnauthorized, message: "invalid password"},

	{target: ErrNoCredential, status: http.StatusUnauthorized, message: ErrNoCredential.Error()},
	{target: ErrMalformedCredential, status: http.StatusUnauthorized, message: ErrMalformedCredential.Error()},
	{target: ErrInvalidCredential, status: http.StatusUnauthorized, message: ErrInvalidCredential.Error()},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: ErrInvalidCredential.Error()},
}

const internalErrorMessage = "internal server error"

// statusFromError maps err to an HTTP status and the message shown to the
// client. Unknown errors are 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			if resp.detailed {
				return resp.status, err.Error()
			}
			return resp.status, resp.message
		}
	}

	return http.StatusInternalServerError, internalErrorMessage
}

// writeError logs err and writes the matching JSON error reply.
// Server-side failures are logged at error level with their full chain;
// client errors at debug level.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSONError(w, message, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
