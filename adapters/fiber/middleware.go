package fiber

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/binderhq/binder/core"
)

const localsAccountID = "accountID"

// requireAuth guards the protected route group. It extracts the bearer
// token, verifies it, and stores the account id in the request locals;
// on any failure it answers 401 and the downstream handler never runs.
func (a *Adapter) requireAuth(c fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return unauthorized(c, core.ErrMissingAuthHeader)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return unauthorized(c, core.ErrInvalidAuthHeader)
	}

	accountID, err := a.tokens.Verify(parts[1])
	if err != nil {
		return unauthorized(c, err)
	}

	c.Locals(localsAccountID, accountID)
	return c.Next()
}

// accountID returns the verified identity stored by requireAuth.
func accountID(c fiber.Ctx) int64 {
	id, _ := c.Locals(localsAccountID).(int64)
	return id
}

func unauthorized(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": err.Error(),
	})
}
