package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard iss/sub/iat/exp claims and
// carries the account identity in the private "userId" and "role" claims.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the identifier of the account the token was issued for.
	UserID int64 `json:"userId"`

	// Role is the account role at issuance time.
	Role string `json:"role"`
}

// Principal returns the identity encoded in the claims.
func (c *Claims) Principal() Principal {
	return Principal{UserID: c.UserID, Role: c.Role}
}

// Token wraps an access token with its decoded claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// response bodies.
type Token struct {
	// Claims is the payload that was signed or verified.
	Claims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
