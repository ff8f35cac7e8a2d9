package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/marmita-api/internal/validators"
	"github.com/MKhiriev/marmita-api/models"
)

// AuthServiceWrapper decorates an AuthService with additional behavior such
// as request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AuthValidationService checks request bodies before handing them to the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

// NewAuthValidationService returns a wrapper that validates requests with
// the struct-tag request validator.
func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

// Wrap implements AuthServiceWrapper.
func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	return &AuthValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if userID <= 0 {
		return models.User{}, fmt.Errorf("%w: user id must be positive", ErrInvalidDataProvided)
	}

	return v.inner.GetUser(ctx, userID)
}
