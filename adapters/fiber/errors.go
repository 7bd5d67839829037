package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/binderhq/binder/core"
)

// handleError maps a service error to an HTTP response. Every failure
// body has the same `{"error": message}` shape.
func handleError(c fiber.Ctx, err error) error {
	return c.Status(mapErrorToStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrMissingAuthHeader),
		errors.Is(err, core.ErrInvalidAuthHeader),
		errors.Is(err, core.ErrTokenMalformed),
		errors.Is(err, core.ErrTokenSignature),
		errors.Is(err, core.ErrTokenExpired):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrAccountExists):
		return http.StatusConflict

	case errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrPasswordTooShort),
		errors.Is(err, core.ErrNameRequired),
		errors.Is(err, core.ErrDeckRequired),
		errors.Is(err, core.ErrDeckNotEmpty):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrDeckNotFound),
		errors.Is(err, core.ErrCardNotFound),
		errors.Is(err, core.ErrAccountNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
