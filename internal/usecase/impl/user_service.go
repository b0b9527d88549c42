package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/service"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) ListUsers(ctx context.Context, limit int) ([]*entity.User, error) {
	if limit <= 0 || limit > usecase.ListLimit {
		limit = usecase.ListLimit
	}

	users, err := srv.userRepo.FindAll(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *userService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateUserError(err)
	}

	return user, nil
}

func (srv *userService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	update := entity.UserUpdate{
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		PhoneNumber:          input.PhoneNumber,
		FallDetectionEnabled: input.FallDetectionEnabled,
		NotificationsEnabled: input.NotificationsEnabled,
		EmergencyContacts:    input.EmergencyContacts,
	}

	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during profile update", slog.String("userID", userID), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		update.PasswordHash = &hashedPassword
	}

	user, err := srv.userRepo.Update(ctx, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to update profile", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, err.Error())
	}

	srv.log(ctx).Info("Profile updated", slog.String("userID", userID), slog.Bool("passwordChanged", input.Password != nil))

	return user, nil
}

func (srv *userService) AddDeviceToken(ctx context.Context, userID, token string) (*entity.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device token must not be empty")
	}

	user, err := srv.userRepo.AddDeviceToken(ctx, userID, token)
	if err != nil {
		return nil, translateUserError(err)
	}

	return user, nil
}

func (srv *userService) RemoveDeviceToken(ctx context.Context, userID, token string) (*entity.User, error) {
	user, err := srv.userRepo.RemoveDeviceToken(ctx, userID, token)
	if err != nil {
		return nil, translateUserError(err)
	}

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return translateUserError(err)
	}

	srv.log(ctx).Info("User deleted", slog.String("userID", userID))

	return nil
}
