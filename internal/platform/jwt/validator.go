package jwtmw

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validation errors returned by ValidateToken.
var (
	// ErrTokenInvalid is returned for malformed tokens, bad signatures and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned when the token's exp claim has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the decoded, verified content of an access token.
type Claims struct {
	UserID    uint
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// Validator verifies access tokens and decodes their claims.
type Validator interface {
	// ValidateToken verifies the signature and expiry of the token string
	// and returns its claims on success.
	ValidateToken(tokenStr string) (*Claims, error)
}

// validator implements the Validator interface for HS256-signed tokens.
type validator struct {
	secret []byte
}

// NewValidator creates a validator that verifies tokens signed with secret.
func NewValidator(secret string) *validator {
	return &validator{secret: []byte(secret)}
}

// ValidateToken parses and verifies a signed token.
func (v *validator) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	claims := &Claims{}

	// JWT numbers are decoded as float64
	sub, ok := mapClaims["sub"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}
	claims.UserID = uint(sub)

	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}

	jti, ok := mapClaims["jti"].(string)
	if !ok || jti == "" {
		return nil, ErrTokenInvalid
	}
	claims.TokenID = jti

	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrTokenInvalid
	}
	claims.ExpiresAt = exp.Time

	return claims, nil
}
