// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/service"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the user registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.AuthSession, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration rejected, email already in use", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up email during registration")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := entity.NewUser(email, hashedPassword, input.FirstName, input.LastName, input.PhoneNumber)
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			// Lost the race against a concurrent registration; the unique index decided.
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}

		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID))

	return srv.issueSession(user)
}

// Login authenticates an active user with email and password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AuthSession, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login attempt for inactive user", slog.String("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user is inactive")
	}

	return srv.issueSession(user)
}

// ValidateToken verifies the token signature and expiry, then checks that the subject
// still exists and is active.
func (srv *authService) ValidateToken(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	identity := claims.Identity()

	user, err := srv.userRepo.FindByID(ctx, identity.UserID)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Warn("Token subject no longer exists", slog.String("userID", identity.UserID))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "user not found")
	case err != nil:
		return nil, errors.Wrap(err, "failed to load token subject")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Token subject is inactive", slog.String("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "user is inactive")
	}

	return &identity, nil
}

// GetProfile loads the authenticated user.
func (srv *authService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateUserError(err)
	}

	return user, nil
}

func (srv *authService) issueSession(user *entity.User) (*entity.AuthSession, error) {
	token, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &entity.AuthSession{AccessToken: token, User: user}, nil
}

// translateUserError maps repository errors onto the application error taxonomy.
func translateUserError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrUserAlreadyExists):
		return domainerrors.ErrUserAlreadyExists
	default:
		return errors.Wrap(err, "user repository failure")
	}
}
