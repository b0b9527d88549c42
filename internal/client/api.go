package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// CreateFallEventRequest is the body of POST /fall-detection/events.
type CreateFallEventRequest struct {
	UserID     string              `json:"userId"`
	Confidence float64             `json:"confidence"`
	Angle      float64             `json:"angle"`
	Velocity   float64             `json:"velocity"`
	Landmarks  map[string]any      `json:"landmarks,omitempty"`
	Location   *entity.GeoLocation `json:"location,omitempty"`
	DeviceInfo *entity.DeviceInfo  `json:"deviceInfo,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type acknowledgeRequest struct {
	IsFalseAlarm     bool   `json:"isFalseAlarm"`
	FalseAlarmReason string `json:"falseAlarmReason,omitempty"`
}

type unreadCount struct {
	Count int64 `json:"count"`
}

// Register creates an account and stores the returned token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*entity.AuthSession, error) {
	session, err := call[*entity.AuthSession](ctx, c, http.MethodPost, "/auth/register", func(r *resty.Request) {
		r.SetBody(req)
	})
	if err != nil {
		return nil, err
	}

	return session, c.saveSession(session)
}

// Login authenticates and stores the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*entity.AuthSession, error) {
	session, err := call[*entity.AuthSession](ctx, c, http.MethodPost, "/auth/login", func(r *resty.Request) {
		r.SetBody(loginRequest{Email: email, Password: password})
	})
	if err != nil {
		return nil, err
	}

	return session, c.saveSession(session)
}

// Logout forgets the stored token. The API keeps no session state.
func (c *Client) Logout() error {
	return c.tokens.Clear()
}

func (c *Client) saveSession(session *entity.AuthSession) error {
	if session == nil || session.AccessToken == "" {
		return errors.New("response carries no access token")
	}

	return errors.Wrap(c.tokens.Save(session.AccessToken), "save token")
}

func (c *Client) Profile(ctx context.Context) (*entity.User, error) {
	return call[*entity.User](ctx, c, http.MethodGet, "/auth/profile", nil)
}

func (c *Client) ListFallEvents(ctx context.Context) ([]*entity.FallEvent, error) {
	return call[[]*entity.FallEvent](ctx, c, http.MethodGet, "/fall-detection/events", nil)
}

func (c *Client) GetFallEvent(ctx context.Context, id string) (*entity.FallEvent, error) {
	return call[*entity.FallEvent](ctx, c, http.MethodGet, "/fall-detection/events/{id}", func(r *resty.Request) {
		r.SetPathParam("id", id)
	})
}

func (c *Client) AcknowledgeFallEvent(ctx context.Context, id string, isFalseAlarm bool, reason string) (*entity.FallEvent, error) {
	return call[*entity.FallEvent](ctx, c, http.MethodPost, "/fall-detection/events/{id}/acknowledge", func(r *resty.Request) {
		r.SetPathParam("id", id).SetBody(acknowledgeRequest{IsFalseAlarm: isFalseAlarm, FalseAlarmReason: reason})
	})
}

// Stats summarizes the caller's events. Zero days lets the API pick its default window.
func (c *Client) Stats(ctx context.Context, days int) (*entity.FallStats, error) {
	return call[*entity.FallStats](ctx, c, http.MethodGet, "/fall-detection/stats", func(r *resty.Request) {
		if days > 0 {
			r.SetQueryParam("days", strconv.Itoa(days))
		}
	})
}

func (c *Client) CreateFallEvent(ctx context.Context, req CreateFallEventRequest) (*entity.FallEvent, error) {
	return call[*entity.FallEvent](ctx, c, http.MethodPost, "/fall-detection/events", func(r *resty.Request) {
		r.SetBody(req)
	})
}

func (c *Client) ListNotifications(ctx context.Context) ([]*entity.Notification, error) {
	return call[[]*entity.Notification](ctx, c, http.MethodGet, "/notifications", nil)
}

func (c *Client) UnreadCount(ctx context.Context) (int64, error) {
	res, err := call[unreadCount](ctx, c, http.MethodGet, "/notifications/unread-count", nil)

	return res.Count, err
}

func (c *Client) AcknowledgeNotification(ctx context.Context, id string) (*entity.Notification, error) {
	return call[*entity.Notification](ctx, c, http.MethodPost, "/notifications/{id}/acknowledge", func(r *resty.Request) {
		r.SetPathParam("id", id)
	})
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) (*entity.Notification, error) {
	return call[*entity.Notification](ctx, c, http.MethodPost, "/notifications/{id}/read", func(r *resty.Request) {
		r.SetPathParam("id", id)
	})
}
