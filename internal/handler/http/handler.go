package http

import (
	"time"

	"github.com/MKhiriev/marmita-api/internal/config"
	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/internal/service"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services

	corsAllowedOrigins []string
	requestTimeout     time.Duration

	logger *logger.Logger
}

// NewHandler creates a Handler. cfg supplies the CORS origins and the
// per-request timeout.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		requestTimeout:     cfg.RequestTimeout,
		logger:             logger,
	}
}
