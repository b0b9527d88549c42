package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/middleware"
	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/validator"
	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testUserID = "665f1c2b9d3e4a0012345678"

var testIdentity = entity.Identity{
	UserID: testUserID,
	Email:  "ada@example.com",
	Roles:  entity.Roles{entity.RoleUser},
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the production error handling and validation without the network middleware.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

func asCaller(identity entity.Identity) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetIdentity(c, identity)

			return next(c)
		}
	}
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}
