package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/binderhq/binder/services"
)

func (a *Adapter) signup(c fiber.Ctx) error {
	var input services.SignUpInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.SignUp(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (a *Adapter) signin(c fiber.Ctx) error {
	var input services.SignInInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := a.auth.SignIn(c.Context(), input)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(result)
}
