// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Defaults applied by validate to fields left unset by every source.
const (
	DefaultHTTPAddress    = ":3000"
	DefaultTokenIssuer    = "marmita-api"
	DefaultTokenDuration  = 8 * time.Hour
	DefaultBcryptCost     = 10
	DefaultDSN            = "file::memory:?cache=shared"
	DefaultRequestTimeout = 30 * time.Second
	DefaultVersion        = "N/A"
	DefaultLogLevel       = "info"

	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants and fills in defaults for unset fields.
//
// A missing token signing key is fatal: tokens cannot be issued or verified
// without it, so the server must not start.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = cfg.Compat.JWTSecret
	}
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: %d", ErrInvalidBcryptCost, cfg.App.BcryptCost)
	}

	if cfg.Server.HTTPAddress == "" && cfg.Compat.Port != "" {
		port, err := strconv.Atoi(cfg.Compat.Port)
		if err != nil || port < 1 {
			return fmt.Errorf("%w: PORT=%q", ErrInvalidServerConfigs, cfg.Compat.Port)
		}
		cfg.Server.HTTPAddress = net.JoinHostPort("", cfg.Compat.Port)
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = cfg.Compat.DatabaseURL
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}

	return nil
}
