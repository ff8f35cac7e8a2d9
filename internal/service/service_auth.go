package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/marmita-api/internal/config"
	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/internal/store"
	"github.com/MKhiriev/marmita-api/internal/utils"
	"github.com/MKhiriev/marmita-api/models"
)

// authService is the concrete implementation of AuthService.
// It hashes passwords with bcrypt and delegates persistence to a
// UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher produces and checks bcrypt digests.
	hasher *utils.PasswordHasher

	// hideUnknownUser reports unknown emails as ErrWrongPassword so that login
	// does not reveal which addresses are registered.
	hideUnknownUser bool

	// dummyDigest is compared against on unknown emails when hideUnknownUser
	// is set, keeping the response time close to that of a wrong password.
	dummyDigest string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)

	a := &authService{
		userRepository:  userRepository,
		hasher:          hasher,
		hideUnknownUser: cfg.HideUnknownUser,
		logger:          logger,
	}

	if cfg.HideUnknownUser {
		digest, err := hasher.Hash(utils.NewTraceID())
		if err != nil {
			return nil, fmt.Errorf("error preparing auth service: %w", err)
		}
		a.dummyDigest = digest
	}

	return a, nil
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the password cannot be hashed (too long).
//   - store.ErrEmailAlreadyInUse if the email is taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: digest,
		Role:         models.DefaultRole,
		CompanyID:    req.CompanyID,
	})
	if err != nil {
		if !errors.Is(err, store.ErrEmailAlreadyInUse) {
			log.Err(err).Msg("user creation ended with error")
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - store.ErrNoUserWasFound if no account has the email (ErrWrongPassword
//     instead when unknown users are hidden).
//   - ErrWrongPassword if the password does not match the stored digest.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) && a.hideUnknownUser {
			a.hasher.Verify(req.Password, a.dummyDigest)
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(req.Password, foundUser.PasswordHash) {
		log.Info().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetUser loads the account with the given ID.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
