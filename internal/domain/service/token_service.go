package service

import (
	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/entity"
)

// Claims defines the custom claims for the bearer tokens. The subject is the
// user's email; Role carries the single role claim in prefixed canonical form
// (e.g. "ROLE_USER").
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-limited token embedding the user's
	// email as subject and their role in prefixed form.
	Generate(email string, role entity.Role) (string, error)

	// Validate checks signature and expiry of a token string and returns its
	// claims. The role claim is returned as-is; mapping it back to a known
	// role is the caller's authorization decision.
	Validate(tokenString string) (*Claims, error)
}
