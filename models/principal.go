// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Principal is the authenticated identity attached to a request after its
// bearer token has been verified. It is derived from token claims or from an
// account record and is never persisted on its own.
type Principal struct {
	// UserID is the identifier of the account the token was issued for.
	UserID int64 `json:"userId"`

	// Role is the account role at issuance time.
	Role string `json:"role"`
}
