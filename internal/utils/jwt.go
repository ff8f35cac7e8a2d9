package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/marmita-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the JWT helpers. Callers can match them with [errors.Is].
var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
	// parameter is empty or zero.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrInvalidJWTClaims is returned by ValidateAndParseJWTToken when a token
	// with a valid signature carries an unusable identity.
	ErrInvalidJWTClaims = errors.New("invalid JWT claims")
)

// signingMethod is the only algorithm accepted by this package.
var signingMethod = jwt.SigningMethodHS256

// GenerateJWTToken creates an HMAC-SHA256 signed access token.
//
// The payload carries:
//   - iss: issuer
//   - sub: the user ID as a decimal string
//   - iat: now
//   - exp: now + tokenDuration
//   - userId, role: the identity of the account
//
// userID, role, issuer, tokenDuration and signKey are all required.
func GenerateJWTToken(issuer string, userID int64, role string, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || userID == 0 || role == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		UserID: userID,
		Role:   role,
	}

	tokenString, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - the algorithm is HS256 and the signature verifies with tokenSignKey
//   - the iss claim equals tokenIssuer
//   - the exp claim is present and now is not past it
//   - userId is non-zero, role is non-empty, and sub (if present) agrees
//     with userId
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	claims := &models.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == 0 || claims.Role == "" {
		return models.Token{}, ErrInvalidJWTClaims
	}
	if claims.Subject != "" && claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return models.Token{}, fmt.Errorf("%w: subject does not match userId", ErrInvalidJWTClaims)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}
