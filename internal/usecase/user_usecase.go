package usecase

import (
	"context"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

// UpdateProfileInput is a partial profile update. Nil fields are left untouched.
type UpdateProfileInput struct {
	FirstName            *string
	LastName             *string
	PhoneNumber          *string
	Password             *string
	FallDetectionEnabled *bool
	NotificationsEnabled *bool
	EmergencyContacts    []string
}

// UserUsecase defines account management beyond authentication.
type UserUsecase interface {
	ListUsers(ctx context.Context, limit int) ([]*entity.User, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// UpdateProfile applies the patch. The password is rehashed only when a new one is supplied.
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)

	AddDeviceToken(ctx context.Context, userID, token string) (*entity.User, error)
	RemoveDeviceToken(ctx context.Context, userID, token string) (*entity.User, error)

	// DeleteUser removes the account. Its events and notifications are kept.
	DeleteUser(ctx context.Context, userID string) error
}
