package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	mockUC "github.com/aimericdrk/ai-fall-guard/internal/mocks/usecase"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthHandler(t *testing.T) (*echo.Echo, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/profile", h.GetProfile, asCaller(testIdentity))
	e.GET("/anonymous/profile", h.GetProfile)

	return e, authUC
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
		Email:     "ada@example.com",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}).Return(&entity.AuthSession{
		AccessToken: "signed.jwt.token",
		User:        &entity.User{ID: testUserID, Email: "ada@example.com", PasswordHash: "$2a$10$hash"},
	}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/register",
		`{"email":"ada@example.com","password":"secret1","firstName":"Ada","lastName":"Lovelace"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)

	var session map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "signed.jwt.token", session["access_token"])
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e, _ := setupAuthHandler(t)

	rec := doRequest(e, http.MethodPost, "/auth/register",
		`{"email":"ada@example.com","password":"123","firstName":"Ada","lastName":"Lovelace"}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	e, _ := setupAuthHandler(t)

	rec := doRequest(e, http.MethodPost, "/auth/register", `{"email":`)

	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered"))

	rec := doRequest(e, http.MethodPost, "/auth/register",
		`{"email":"ada@example.com","password":"secret1","firstName":"Ada","lastName":"Lovelace"}`)

	requireErrorCode(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "wrong1"}).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"))

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong1"}`)

	requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(&entity.AuthSession{AccessToken: "tok", User: &entity.User{ID: testUserID}}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_GetProfile(t *testing.T) {
	e, authUC := setupAuthHandler(t)

	authUC.EXPECT().GetProfile(mock.Anything, testUserID).
		Return(&entity.User{ID: testUserID, Email: "ada@example.com"}, nil)

	rec := doRequest(e, http.MethodGet, "/auth/profile", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var user entity.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestAuthHandler_GetProfile_NoIdentity(t *testing.T) {
	e, _ := setupAuthHandler(t)

	rec := doRequest(e, http.MethodGet, "/anonymous/profile", "")

	requireErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
}
