package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

// Claims defines the custom claims carried by access tokens.
// The subject is the user ID.
type Claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the token subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// Identity converts the claims into the caller identity used by handlers.
func (c *Claims) Identity() entity.Identity {
	return entity.Identity{
		UserID: c.Subject,
		Email:  c.Email,
		Roles:  entity.RolesFromStrings(c.Roles),
	}
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs a token whose claims carry the user's email, ID and roles.
	GenerateAccessToken(user *entity.User) (string, error)

	// ValidateToken checks signature, algorithm and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime of access tokens.
	TokenTTL() time.Duration
}
