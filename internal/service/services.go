package service

import (
	"fmt"

	"github.com/MKhiriev/marmita-api/internal/config"
	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/internal/store"
	"github.com/MKhiriev/marmita-api/models"
)

// Services groups the services exposed to the HTTP handlers.
type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices builds every service from the storages and configuration.
// AuthService is wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	tokenService, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
