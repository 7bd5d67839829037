package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/binderhq/binder/services"
)

func (a *Adapter) listCards(c fiber.Ctx) error {
	cards, err := a.cards.List(c.Context(), accountID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cards)
}

// listCardsByDeck answers GET /api/cards/:id where :id is a deck id.
func (a *Adapter) listCardsByDeck(c fiber.Ctx) error {
	deckID, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	cards, err := a.cards.ListByDeck(c.Context(), accountID(c), deckID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cards)
}

func (a *Adapter) getCard(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	card, err := a.cards.Get(c.Context(), accountID(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(card)
}

func (a *Adapter) createCard(c fiber.Ctx) error {
	var input services.CardInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	card, err := a.cards.Create(c.Context(), accountID(c), input)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// deleteCardsByDeck answers DELETE /api/cards/:id where :id is a deck
// id; it empties the deck so the deck itself can be deleted.
func (a *Adapter) deleteCardsByDeck(c fiber.Ctx) error {
	deckID, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	cards, err := a.cards.DeleteByDeck(c.Context(), accountID(c), deckID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(cards)
}

func (a *Adapter) deleteCard(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	card, err := a.cards.Delete(c.Context(), accountID(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(card)
}
