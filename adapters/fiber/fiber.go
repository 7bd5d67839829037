package fiber

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/binderhq/binder/core"
	"github.com/binderhq/binder/services"
)

// AuthProvider provides the authentication operations the HTTP surface
// needs. Satisfied by *services.AuthService.
type AuthProvider interface {
	SignUp(ctx context.Context, input services.SignUpInput) (*services.AuthResult, error)
	SignIn(ctx context.Context, input services.SignInInput) (*services.AuthResult, error)
}

// DeckProvider provides owner-scoped deck operations. Satisfied by
// *services.DeckService.
type DeckProvider interface {
	List(ctx context.Context, ownerID int64) ([]*core.Deck, error)
	Get(ctx context.Context, ownerID, id int64) (*core.Deck, error)
	Create(ctx context.Context, ownerID int64, input services.DeckInput) (*core.Deck, error)
	Update(ctx context.Context, ownerID, id int64, input services.DeckInput) (*core.Deck, error)
	Delete(ctx context.Context, ownerID, id int64) (*core.Deck, error)
}

// CardProvider provides owner-scoped card operations. Satisfied by
// *services.CardService.
type CardProvider interface {
	List(ctx context.Context, ownerID int64) ([]*core.Card, error)
	ListByDeck(ctx context.Context, ownerID, deckID int64) ([]*core.Card, error)
	Get(ctx context.Context, ownerID, id int64) (*core.Card, error)
	Create(ctx context.Context, ownerID int64, input services.CardInput) (*core.Card, error)
	DeleteByDeck(ctx context.Context, ownerID, deckID int64) ([]*core.Card, error)
	Delete(ctx context.Context, ownerID, id int64) (*core.Card, error)
}

type Adapter struct {
	app    *fiber.App
	auth   AuthProvider
	decks  DeckProvider
	cards  CardProvider
	tokens core.TokenHandler
}

func New(app *fiber.App, auth AuthProvider, decks DeckProvider, cards CardProvider, tokens core.TokenHandler) *Adapter {
	return &Adapter{
		app:    app,
		auth:   auth,
		decks:  decks,
		cards:  cards,
		tokens: tokens,
	}
}

// RegisterRoutes wires the public auth routes and the protected /api
// group. Every /api handler runs behind requireAuth; none executes
// without a verified account id in the request locals.
func (a *Adapter) RegisterRoutes() {
	auth := a.app.Group("/auth")
	auth.Post("/signup", a.signup)
	auth.Post("/signin", a.signin)

	api := a.app.Group("/api", a.requireAuth)

	api.Get("/decks", a.listDecks)
	api.Post("/decks", a.createDeck)
	api.Get("/decks/:id", a.getDeck)
	api.Put("/decks/:id", a.updateDeck)
	api.Delete("/decks/:id", a.deleteDeck)

	// The /cards/card/:id shape addresses a single card; /cards/:id
	// addresses a whole deck's cards. Register the more specific path
	// first.
	api.Get("/cards", a.listCards)
	api.Post("/cards", a.createCard)
	api.Get("/cards/card/:id", a.getCard)
	api.Delete("/cards/card/:id", a.deleteCard)
	api.Get("/cards/:id", a.listCardsByDeck)
	api.Delete("/cards/:id", a.deleteCardsByDeck)
}
