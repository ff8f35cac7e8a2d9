package store

import (
	"context"

	"github.com/MKhiriev/marmita-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the account store. Email uniqueness is enforced by the
// database, so concurrent registrations of the same address resolve to
// exactly one success and [ErrEmailAlreadyInUse] for the rest.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the
	// server-assigned ID, role and creation time.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given ID or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}
