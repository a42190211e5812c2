// Package jwt implements issuing and parsing of the bearer tokens the
// API hands out at login and registration.
//
// Tokens are stateless: they carry only the user id plus the standard
// issued-at and expiry claims, signed with a process-wide secret. The
// role is deliberately NOT embedded — the auth middleware re-fetches
// the live user on every request, so role changes take effect without
// re-login. Revocation is not supported.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Maker issues and verifies signed identity tokens.
type Maker interface {
	// GenerateToken issues a token for the given user id.
	GenerateToken(userID string) (string, error)
	// ParseToken verifies signature and expiry and returns the claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// Claims are the custom claims embedded in every issued token.
type Claims struct {
	UserID               string `json:"uid"` // User identifier
	jwt.RegisteredClaims        // Standard claims (IssuedAt, ExpiresAt)
}

// MakerImpl implements Maker with an HMAC-SHA256 signature.
type MakerImpl struct {
	secretKey string        // Signing secret
	tokenTTL  time.Duration // Token lifetime
	now       func() time.Time
}

// NewJWTMaker creates a MakerImpl from the signing secret and TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
		now:       time.Now,
	}
}

// WithClock replaces the maker's clock. Used in tests to simulate
// expiry without sleeping.
func (j *MakerImpl) WithClock(now func() time.Time) *MakerImpl {
	j.now = now
	return j
}

// GenerateToken issues a signed token carrying the user id, valid for
// the configured TTL.
func (j *MakerImpl) GenerateToken(userID string) (string, error) {
	issuedAt := j.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken verifies the token's signature and expiry and returns its
// claims. Fails on malformed, tampered or expired tokens.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	}, jwt.WithTimeFunc(j.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
