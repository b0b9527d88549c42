package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/response"
	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FallEventHandlerParams holds dependencies for FallEventHandler, injected by Fx.
type FallEventHandlerParams struct {
	fx.In

	FallEventUC usecase.FallEventUsecase
	Logger      *slog.Logger
}

// FallEventHandler serves fall event ingestion, review and statistics.
type FallEventHandler struct {
	fallEventUC usecase.FallEventUsecase
	logger      *slog.Logger
}

// NewFallEventHandler is the constructor for FallEventHandler.
func NewFallEventHandler(params FallEventHandlerParams) *FallEventHandler {
	return &FallEventHandler{
		fallEventUC: params.FallEventUC,
		logger:      params.Logger,
	}
}

// CreateFallEventRequest represents a fall reported by a sensing client.
type CreateFallEventRequest struct {
	UserID     string             `json:"userId" validate:"required"`
	Confidence *float64           `json:"confidence" validate:"required,gte=0,lte=1"`
	Angle      *float64           `json:"angle" validate:"required"`
	Velocity   *float64           `json:"velocity" validate:"required"`
	Landmarks  map[string]any     `json:"landmarks"`
	Location   *LocationRequest   `json:"location"`
	DeviceInfo *entity.DeviceInfo `json:"deviceInfo"`
}

// LocationRequest is an optional WGS84 coordinate.
type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// AcknowledgeFallEventRequest represents the reviewer's verdict.
type AcknowledgeFallEventRequest struct {
	IsFalseAlarm     *bool  `json:"isFalseAlarm" validate:"required"`
	FalseAlarmReason string `json:"falseAlarmReason"`
}

// CreateFallEvent ingests a fall. The body's userId is trusted; a mismatch with the caller is only logged.
func (h *FallEventHandler) CreateFallEvent(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	var req CreateFallEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if req.UserID != identity.UserID {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Fall event reported for another user",
			slog.String("caller_id", identity.UserID),
			slog.String("user_id", req.UserID),
		)
	}

	input := &usecase.CreateFallEventInput{
		UserID:     req.UserID,
		Confidence: *req.Confidence,
		Angle:      *req.Angle,
		Velocity:   *req.Velocity,
		Landmarks:  req.Landmarks,
		DeviceInfo: req.DeviceInfo,
	}
	if req.Location != nil {
		input.Location = &entity.GeoLocation{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		}
	}

	event, err := h.fallEventUC.CreateFallEvent(ctx, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event)
}

// ListFallEvents returns the caller's most recent events.
func (h *FallEventHandler) ListFallEvents(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	events, err := h.fallEventUC.FindAll(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events)
}

// GetFallEvent returns a single event.
func (h *FallEventHandler) GetFallEvent(c echo.Context) error {
	event, err := h.fallEventUC.FindOne(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event)
}

// AcknowledgeFallEvent records the verdict on an event.
func (h *FallEventHandler) AcknowledgeFallEvent(c echo.Context) error {
	var req AcknowledgeFallEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.fallEventUC.Acknowledge(c.Request().Context(), c.Param("id"), &usecase.AcknowledgeFallEventInput{
		IsFalseAlarm:     *req.IsFalseAlarm,
		FalseAlarmReason: req.FalseAlarmReason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event)
}

// GetStats summarizes the caller's events over the last ?days=N days.
func (h *FallEventHandler) GetStats(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return err
	}

	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("days must be an integer")
		}
	}

	stats, err := h.fallEventUC.GetRecentStats(c.Request().Context(), identity.UserID, days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}
