package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)

	// TTL returns the lifetime applied to every issued token.
	TTL() time.Duration
}

// generator implements the Generator interface.
type generator struct {
	secret []byte
	ttl    time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and token lifetime.
func NewGenerator(secret string, ttl time.Duration) *generator {
	return &generator{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken creates a signed JWT token with standard claims.
// Each token carries a unique jti claim so that a single token can be
// revoked on logout without touching the user's other tokens.
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"exp":   now.Add(g.ttl).Unix(),
		"iat":   now.Unix(),
		"jti":   uuid.NewString(),
		"email": email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// TTL returns the token lifetime.
func (g *generator) TTL() time.Duration {
	return g.ttl
}
