// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the unique email constraint is violated.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll lists users, newest first.
	FindAll(ctx context.Context, limit int) ([]*entity.User, error)

	// Create persists a new user and fills in its ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update applies a partial update and returns the updated user.
	Update(ctx context.Context, id string, update entity.UserUpdate) (*entity.User, error)

	// AddDeviceToken registers a push token once and returns the updated user.
	AddDeviceToken(ctx context.Context, id, token string) (*entity.User, error)

	// RemoveDeviceToken unregisters a push token and returns the updated user.
	RemoveDeviceToken(ctx context.Context, id, token string) (*entity.User, error)

	// Delete removes the user. Events and notifications are left in place.
	Delete(ctx context.Context, id string) error
}
