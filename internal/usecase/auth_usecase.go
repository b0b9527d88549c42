// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase defines registration, login and token checks.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates the account and returns a signed access token for it.
	Register(ctx context.Context, input *RegisterInput) (*entity.AuthSession, error)

	// Login verifies the credentials of an active account and returns a signed access token.
	Login(ctx context.Context, input *LoginInput) (*entity.AuthSession, error)

	// ValidateToken verifies an access token. It does not touch the database.
	ValidateToken(ctx context.Context, token string) (*entity.Identity, error)

	// GetProfile loads the current state of the authenticated user.
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
}
