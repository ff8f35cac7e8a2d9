package service

import (
	"context"

	"github.com/MKhiriev/marmita-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates accounts.
type AuthService interface {
	// RegisterUser hashes the password and stores a new account.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login checks the credentials and returns the matching account.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// GetUser returns the current record of the account with the given ID.
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// TokenService issues and verifies access tokens.
type TokenService interface {
	// CreateToken signs a token carrying the user's ID and role.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a compact token string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports build and version metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
