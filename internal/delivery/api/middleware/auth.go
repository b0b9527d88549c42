package middleware

import (
	"strings"

	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and stores the caller identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return domainerrors.ErrInvalidToken.WithDetails("token must be sent as a bearer token")
		}
		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])

		identity, err := m.authUC.ValidateToken(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, *identity)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !identity.Roles.Contains(requiredRole) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + requiredRole.String())
			}

			return next(c)
		}
	}
}
