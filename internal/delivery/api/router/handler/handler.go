// Package handler contains the HTTP handlers for the fall detection API.
package handler

import (
	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// caller returns the identity stored by the auth middleware.
func caller(c echo.Context) (entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrUnauthorized.WithDetails("no authenticated user on request")
	}

	return identity, nil
}

// bindAndValidate decodes the request body into req and runs the struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(bindDetails(err))
	}

	return c.Validate(req)
}

func bindDetails(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if msg, ok := he.Message.(string); ok {
			return msg
		}
	}

	return err.Error()
}
