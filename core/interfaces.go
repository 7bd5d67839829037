package core

import "context"

// Ports define interfaces for external dependencies

// ============================================
// STORAGE PORTS (Database operations)
// ============================================

// AccountStorage defines account-related database operations
type AccountStorage interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccountByID(ctx context.Context, id int64) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
}

// DeckStorage defines deck-related database operations.
// Every method that touches an existing row takes the owner's account id
// and matches on id AND owner, never id alone.
type DeckStorage interface {
	CreateDeck(ctx context.Context, d *Deck) error
	ListDecks(ctx context.Context, ownerID int64) ([]*Deck, error)
	GetDeck(ctx context.Context, ownerID, id int64) (*Deck, error)
	UpdateDeck(ctx context.Context, d *Deck) error
	DeleteDeck(ctx context.Context, ownerID, id int64) (*Deck, error)
}

// CardStorage defines card-related database operations, owner-scoped the
// same way as DeckStorage.
type CardStorage interface {
	CreateCard(ctx context.Context, c *Card) error
	ListCards(ctx context.Context, ownerID int64) ([]*Card, error)
	ListCardsByDeck(ctx context.Context, ownerID, deckID int64) ([]*Card, error)
	GetCard(ctx context.Context, ownerID, id int64) (*Card, error)
	CountCardsByDeck(ctx context.Context, ownerID, deckID int64) (int, error)
	DeleteCardsByDeck(ctx context.Context, ownerID, deckID int64) ([]*Card, error)
	DeleteCard(ctx context.Context, ownerID, id int64) (*Card, error)
}

type Storage interface {
	AccountStorage
	DeckStorage
	CardStorage
}

// ============================================
// CRYPTO PORTS
// ============================================

// PasswordHandler hashes and verifies account secrets
type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}

// TokenHandler issues and verifies bearer tokens. Verify returns the
// account id embedded at issue time; it performs no I/O.
type TokenHandler interface {
	Issue(accountID int64) (string, error)
	Verify(token string) (int64, error)
}
