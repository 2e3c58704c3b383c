package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the validated claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService validates the bearer tokens issued by the upstream identity
// provider. This service never issues end-user tokens itself; GenerateToken
// exists for development tooling and tests.
type TokenService interface {
	// ValidateToken checks the validity of a token string and extracts its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateToken creates a signed access token for a given user.
	GenerateToken(userID uuid.UUID) (string, error)
}
