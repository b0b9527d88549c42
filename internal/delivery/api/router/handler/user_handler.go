package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/response"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves account management for the caller and the admin user listing.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// UpdateProfileRequest is a partial profile update. Omitted fields are left untouched.
type UpdateProfileRequest struct {
	FirstName            *string  `json:"firstName" validate:"omitempty,min=1"`
	LastName             *string  `json:"lastName" validate:"omitempty,min=1"`
	PhoneNumber          *string  `json:"phoneNumber"`
	Password             *string  `json:"password" validate:"omitempty,min=6"`
	FallDetectionEnabled *bool    `json:"fallDetectionEnabled"`
	NotificationsEnabled *bool    `json:"notificationsEnabled"`
	EmergencyContacts    []string `json:"emergencyContacts" validate:"omitempty,dive,mongodb"`
}

// DeviceTokenRequest carries a push token to register.
type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// ListUsers returns the most recently created accounts.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context(), usecase.ListLimit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetMe returns the caller's account.
func (h *UserHandler) GetMe(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateMe applies a partial update to the caller's profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), identity.UserID, &usecase.UpdateProfileInput{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		PhoneNumber:          req.PhoneNumber,
		Password:             req.Password,
		FallDetectionEnabled: req.FallDetectionEnabled,
		NotificationsEnabled: req.NotificationsEnabled,
		EmergencyContacts:    req.EmergencyContacts,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteMe removes the caller's account.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), identity.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// AddDeviceToken registers a push token for the caller.
func (h *UserHandler) AddDeviceToken(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req DeviceTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.AddDeviceToken(c.Request().Context(), identity.UserID, req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// RemoveDeviceToken unregisters a push token of the caller.
func (h *UserHandler) RemoveDeviceToken(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	token, err := url.PathUnescape(c.Param("token"))
	if err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails("token is not correctly escaped")
	}

	user, err := h.userUC.RemoveDeviceToken(c.Request().Context(), identity.UserID, token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}
