package handler

import (
	"log/slog"
	"net/http"

	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/response"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// FallNotificationRequest represents a direct request to raise a fall notification.
type FallNotificationRequest struct {
	UserID string         `json:"userId" validate:"required"`
	Type   string         `json:"type" validate:"required,oneof=FALL_DETECTED FALL_CONFIRMED FALL_FALSE_ALARM SYSTEM_ALERT EMERGENCY_CONTACT"`
	Data   map[string]any `json:"data" validate:"required"`
}

// UnreadCountResponse wraps the unread badge count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// CreateFallNotification raises a notification without a stored fall event.
func (h *NotificationHandler) CreateFallNotification(c echo.Context) error {
	var req FallNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	notification, err := h.notificationUC.CreateFallNotification(c.Request().Context(), &usecase.CreateFallNotificationInput{
		UserID: req.UserID,
		Type:   entity.NotificationType(req.Type),
		Data:   req.Data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// ListNotifications returns the caller's most recent notifications.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.FindAll(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// GetUnreadCount returns how many of the caller's notifications are unread.
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.GetUnreadCount(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UnreadCountResponse{Count: count})
}

// GetNotification returns a single notification.
func (h *NotificationHandler) GetNotification(c echo.Context) error {
	notification, err := h.notificationUC.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// AcknowledgeNotification marks a notification as handled.
func (h *NotificationHandler) AcknowledgeNotification(c echo.Context) error {
	notification, err := h.notificationUC.Acknowledge(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// MarkAsRead marks a notification as read.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notification, err := h.notificationUC.MarkAsRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification)
}
