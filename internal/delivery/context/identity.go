package context

import (
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for storing the authenticated caller in echo.Context.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the authenticated caller set by the auth middleware.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(entity.Identity)
	if !ok || identity.UserID == "" {
		return entity.Identity{}, false
	}

	return identity, true
}
