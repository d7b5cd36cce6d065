// Package auth implements the credential and token primitives: bcrypt
// password hashing and HS256 bearer tokens carrying subject, jti,
// issued-at and expiry claims.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenRevoked   = errors.New("token has been revoked")
)

// RevocationChecker answers whether a jti has been revoked. It is only
// consulted for tokens that already passed the signature and expiry
// checks, keeping the common case at a single storage round trip.
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

// Identity is the verified result of a bearer token: the subject it
// was issued to and the token's own id.
type Identity struct {
	UserID  int64
	TokenID string
}

// TokenManager issues and verifies signed bearer tokens
type TokenManager struct {
	secret  []byte
	ttl     time.Duration
	revoked RevocationChecker
}

func NewTokenManager(secret []byte, ttl time.Duration, revoked RevocationChecker) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl, revoked: revoked}
}

// Issue signs a new token for the user with a fresh jti and a fixed
// TTL from now. The jti comes from a CSPRNG, never a counter.
func (m *TokenManager) Issue(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	})
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks structure, signature and expiry (cheap, no I/O), then
// consults the revocation ledger by jti. On success it returns the
// identity bound into the token.
func (m *TokenManager) Verify(ctx context.Context, tokenString string) (*Identity, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || claims.ID == "" {
		return nil, ErrTokenMalformed
	}

	revoked, err := m.revoked.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("revocation lookup failed: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return &Identity{UserID: userID, TokenID: claims.ID}, nil
}
