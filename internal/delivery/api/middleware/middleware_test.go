package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/ratelimit"
	mockUC "github.com/aimericdrk/ai-fall-guard/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(uc *mockUC.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().ValidateToken(mock.Anything, "expired").
					Return(nil, errors.Wrap(domainerrors.ErrInvalidToken, "token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "token of a deleted user",
			header: "Bearer orphan",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().ValidateToken(mock.Anything, "orphan").
					Return(nil, errors.Wrap(domainerrors.ErrInvalidToken, "user not found"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().ValidateToken(mock.Anything, "good").
					Return(&entity.Identity{UserID: "u1", Roles: entity.Roles{entity.RoleUser}}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUC.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(authUC)
			}
			m := NewAuthMiddleware(authUC)

			e := newTestEcho()
			e.GET("/private", func(c echo.Context) error {
				identity, ok := deliverycontext.GetIdentity(c)
				require.True(t, ok)

				return c.String(http.StatusOK, identity.UserID)
			}, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				body := decodeError(t, rec)
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.Nil(t, body.Error.Details)
			} else {
				assert.Equal(t, "u1", rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		identity   *entity.Identity
		wantStatus int
	}{
		{name: "no identity", wantStatus: http.StatusUnauthorized},
		{name: "regular user", identity: &entity.Identity{UserID: "u1", Roles: entity.Roles{entity.RoleUser}}, wantStatus: http.StatusForbidden},
		{name: "admin", identity: &entity.Identity{UserID: "u2", Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockUC.NewMockAuthUsecase(t))

			e := newTestEcho()
			e.GET("/admin", okHandler, func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					if tt.identity != nil {
						deliverycontext.SetIdentity(c, *tt.identity)
					}

					return next(c)
				}
			}, m.RequireRole(entity.RoleAdmin))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	s.keys = append(s.keys, key)

	return s.decision, s.err
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	tests := []struct {
		name           string
		limiter        *stubLimiter
		wantStatus     int
		wantRetryAfter string
		wantRemaining  string
	}{
		{
			name:          "allowed",
			limiter:       &stubLimiter{decision: ratelimit.Decision{Allowed: true, Limit: 5, Remaining: 4}},
			wantStatus:    http.StatusOK,
			wantRemaining: "4",
		},
		{
			name:           "denied",
			limiter:        &stubLimiter{decision: ratelimit.Decision{Allowed: false, Limit: 5, Remaining: 0, RetryAfter: 1500 * time.Millisecond}},
			wantStatus:     http.StatusTooManyRequests,
			wantRetryAfter: "2",
			wantRemaining:  "0",
		},
		{
			name:           "denied with sub-second wait",
			limiter:        &stubLimiter{decision: ratelimit.Decision{Allowed: false, Limit: 5, RetryAfter: 10 * time.Millisecond}},
			wantStatus:     http.StatusTooManyRequests,
			wantRetryAfter: "1",
			wantRemaining:  "0",
		},
		{
			name:       "limiter failure fails open",
			limiter:    &stubLimiter{err: errors.New("redis down")},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRateLimitMiddleware(tt.limiter, newDiscardLogger())

			e := newTestEcho()
			e.POST("/auth/login", okHandler, m.Limit("auth:login"))

			req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
			req.RemoteAddr = "203.0.113.7:4321"
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, []string{"auth:login:203.0.113.7"}, tt.limiter.keys)
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get(HeaderRetryAfter))
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(HeaderRateLimitRemaining))
			if tt.wantStatus == http.StatusTooManyRequests {
				assert.Equal(t, "RATE_LIMITED", decodeError(t, rec).Error.Code)
			}
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "wrapped app error keeps details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email is required"), "validate"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "email is required",
		},
		{
			name:       "server error hides details",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "insert fall event"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/fail", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "connection reset")
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}
