package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/marmita-api/internal/config"
	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/internal/utils"
	"github.com/MKhiriev/marmita-api/models"
)

// tokenService issues and verifies HS256 access tokens. All fields are set at
// construction and never change.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// now is the clock; tests replace it to simulate expiry.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from cfg. It fails with
// ErrTokenSignKeyNotSpecified when no signing key is configured.
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	svc, err := newTokenService(cfg, time.Now, logger)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) (*tokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrTokenSignKeyNotSpecified
	}

	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
		logger:        logger,
	}, nil
}

// CreateToken issues a signed token for user.
//
// The token carries {userId, role, iss, sub, iat, exp} and expires after
// tokenDuration. Returns ErrInvalidTokenSubject if the user has no ID or role.
func (s *tokenService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if user.ID == 0 || user.Role == "" {
		return models.Token{}, ErrInvalidTokenSubject
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, user.Role, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string. Any validation failure
// (expired, wrong issuer, bad signature, malformed) is reported as
// ErrTokenIsExpiredOrInvalid with the cause attached.
func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
