// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// marmita-api server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key,
	// token parameters, and the password hashing cost.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the account store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout, and CORS settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Compat holds the bare variable names used by earlier deployments of
	// the API. They are consulted only when the structured variables are
	// unset.
	Compat Compat

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance and password hashing.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify access tokens.
	// The server refuses to start without it.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is embedded as the "iss" claim of every token and checked
	// on verification.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a newly issued token.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor used when hashing passwords.
	BcryptCost int `env:"BCRYPT_COST"`

	// HideUnknownUser makes login answer 401 for unknown emails instead of 404.
	HideUnknownUser bool `env:"HIDE_UNKNOWN_USER"`

	// Version is the application version reported by GET /version.
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds relational database connection settings.
type DB struct {
	// DSN selects the driver by its form: "postgres://" or "postgresql://"
	// URLs and key=value strings go to PostgreSQL, "file:" URIs and paths
	// ending with ".db" go to SQLite.
	DSN string `env:"DATABASE_URI"`
}

// InMemory reports whether the DSN points at an in-memory SQLite database,
// whose contents are lost when the process exits.
func (db DB) InMemory() bool {
	dsn := strings.ToLower(db.DSN)
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Server holds HTTP server settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed by the CORS middleware.
	// "*" allows any origin.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Compat holds legacy, unprefixed environment variables.
type Compat struct {
	// JWTSecret is an alias for App.TokenSignKey.
	JWTSecret string `env:"JWT_SECRET"`

	// Port is an alias for the port part of Server.HTTPAddress.
	Port string `env:"PORT"`

	// DatabaseURL is an alias for Storage.DB.DSN.
	DatabaseURL string `env:"DATABASE_URL"`
}

// GetStructuredConfig assembles the server configuration from environment
// variables, command-line flags, and an optional JSON file, then validates
// it and fills in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
