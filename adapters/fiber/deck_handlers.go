package fiber

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/binderhq/binder/services"
)

// parseID reads the :id route parameter as a row id.
func parseID(c fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func badID(c fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid id",
	})
}

func (a *Adapter) listDecks(c fiber.Ctx) error {
	decks, err := a.decks.List(c.Context(), accountID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(decks)
}

func (a *Adapter) getDeck(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	deck, err := a.decks.Get(c.Context(), accountID(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(deck)
}

func (a *Adapter) createDeck(c fiber.Ctx) error {
	var input services.DeckInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	deck, err := a.decks.Create(c.Context(), accountID(c), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(deck)
}

func (a *Adapter) updateDeck(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	var input services.DeckInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	deck, err := a.decks.Update(c.Context(), accountID(c), id, input)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(deck)
}

func (a *Adapter) deleteDeck(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	deck, err := a.decks.Delete(c.Context(), accountID(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(deck)
}
