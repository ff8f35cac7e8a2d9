package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrNoTokenSignKey indicates that no token signing key was configured
	// through APP_TOKEN_SIGN_KEY, JWT_SECRET, -token-sign-key, or the JSON file.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrInvalidBcryptCost indicates a bcrypt cost outside the 4..31 range.
	ErrInvalidBcryptCost = errors.New("invalid bcrypt cost")

	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative request timeout or a malformed PORT).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
