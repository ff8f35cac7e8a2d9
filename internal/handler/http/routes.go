package http

import (
	"net/http"

	"github.com/MKhiriev/marmita-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	GET  /          liveness banner
//	GET  /version   build metadata
//	POST /register  create an account
//	POST /login     exchange credentials for a token
//	GET  /profile   bearer token required
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(h.withCORS())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/version", h.getServerVersion)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/profile", h.profile)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSONError(w, "route not found", http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
