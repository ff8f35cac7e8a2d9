package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyInUse is returned when an attempt to register a new user
	// fails because an account with the same email already exists.
	ErrEmailAlreadyInUse = errors.New("email already in use")

	// ErrNoUserWasFound is returned when a lookup by email or ID matches no
	// account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnsupportedDSN is returned when the configured DSN matches none of
	// the supported database drivers.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
