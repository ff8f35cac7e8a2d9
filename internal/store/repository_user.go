package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL implementation of [UserRepository]. It works
// against PostgreSQL and SQLite; the dialect differences are kept in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the stored row, including
// the server-assigned ID, default role and creation time.
//
// Error handling:
//   - UNIQUE violation on email → [ErrEmailAlreadyInUse].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, err
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already in use")
			return models.User{}, ErrEmailAlreadyInUse
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created, err := r.findOne(ctx, sq.Eq{"id": id})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Int64("id", id).Msg("error reading created user")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByEmail retrieves the account registered under email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := r.findOne(ctx, sq.Eq{"email": email})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*userRepository.FindUserByEmail").Str("email", email).Msg("user lookup failed")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID retrieves the account with the given ID.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	user, err := r.findOne(ctx, sq.Eq{"id": id})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*userRepository.FindUserByID").Int64("id", id).Msg("user lookup failed")
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) findOne(ctx context.Context, where sq.Eq) (models.User, error) {
	query, args, err := r.db.selectUserQuery(where)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// scanUser reads one row laid out as userColumns.
func scanUser(row *sql.Row) (models.User, error) {
	var (
		user      models.User
		companyID sql.NullInt64
	)

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &companyID, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if companyID.Valid {
		id := companyID.Int64
		user.CompanyID = &id
	}
	if user.Role == "" {
		user.Role = models.DefaultRole
	}

	return user, nil
}
