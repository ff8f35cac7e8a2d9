package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

var (
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsAllowedHeaders = []string{"Accept", "Authorization", "Content-Type", traceIDHeader}
)

const corsMaxAge = 300

// withCORS allows the configured origins ("*" for any) and answers OPTIONS
// preflight requests with 204 before routing. An empty list allows any origin.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:       h.corsAllowedOrigins,
		AllowedMethods:       corsAllowedMethods,
		AllowedHeaders:       corsAllowedHeaders,
		ExposedHeaders:       []string{traceIDHeader},
		MaxAge:               corsMaxAge,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
