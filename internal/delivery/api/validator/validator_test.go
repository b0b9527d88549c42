package validator

import (
	"testing"

	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=6"`
	Confidence *float64 `json:"confidence" validate:"required,gte=0,lte=1"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()
	confidence := 0.5

	require.NoError(t, v.Validate(&sample{Email: "a@b.co", Password: "secret", Confidence: &confidence}))

	tooHigh := 1.5
	err := v.Validate(&sample{Email: "nope", Password: "123", Confidence: &tooHigh})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
	assert.Contains(t, appErr.Details(), "password must be at least 6")
	assert.Contains(t, appErr.Details(), "confidence must be less than or equal to 1")
}

func TestCustomValidator_MissingPointerField(t *testing.T) {
	err := New().Validate(&sample{Email: "a@b.co", Password: "secret"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "confidence is required", appErr.Details())
}
