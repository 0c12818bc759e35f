// Package auth issues and verifies the bearer tokens used by the API.
// Tokens are HS256-signed JWTs carrying the user id and role.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sumsingh11/travelmate/internal/domain"
)

// TokenTTL is the fixed lifetime of an issued token.
const TokenTTL = 48 * time.Hour

// Claims is the decoded payload of a verified token.
type Claims struct {
	UserID uuid.UUID
	Role   domain.Role
}

// tokenClaims is the wire form of Claims.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

// NewIssuer constructs an Issuer for the given secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for the given user, valid for TokenTTL.
func (i *Issuer) Issue(userID uuid.UUID, role domain.Role) (string, error) {
	now := i.now()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Issuer.Issue: %w", err)
	}
	return token, nil
}

// Verify parses and validates a token string, returning its claims.
// Expired, malformed, or wrongly signed tokens all map to
// domain.ErrUnauthorized — callers need no finer distinction.
func (i *Issuer) Verify(tokenString string) (Claims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil {
		return Claims{}, fmt.Errorf("auth.Issuer.Verify: %w: %w", domain.ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Claims{}, fmt.Errorf("auth.Issuer.Verify: bad subject: %w", domain.ErrUnauthorized)
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return Claims{}, fmt.Errorf("auth.Issuer.Verify: bad role: %w", domain.ErrUnauthorized)
	}

	return Claims{UserID: userID, Role: role}, nil
}
