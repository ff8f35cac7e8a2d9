package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request fails validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned by Login when the password does not match
	// the stored digest.
	ErrWrongPassword = errors.New("invalid password")

	// ErrTokenIsExpiredOrInvalid is returned by ParseToken for any token that
	// fails signature, algorithm, issuer or expiry checks.
	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired credential")

	// ErrTokenCreationFailed is returned when signing a token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvalidTokenSubject is returned when a token is requested for a user
	// without an ID or role.
	ErrInvalidTokenSubject = errors.New("token subject must have an id and a role")

	// ErrTokenSignKeyNotSpecified is returned by NewTokenService when no
	// signing secret is configured.
	ErrTokenSignKeyNotSpecified = errors.New("token sign key is not specified")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// application version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
