package services

import (
	"context"
	"fmt"

	"github.com/binderhq/binder/core"
)

// CardInput contains the caller-supplied card fields. The owner always
// comes from the verified token; the deck must belong to that owner.
type CardInput struct {
	Name     string   `json:"name"`
	Colors   []string `json:"colors"`
	Type     string   `json:"type"`
	ImageURL string   `json:"imageUrl"`
	DeckID   int64    `json:"deckId"`
}

type CardService struct {
	db core.Storage
}

func NewCardService(db core.Storage) *CardService {
	return &CardService{db: db}
}

// List returns every card owned by the account, across all decks.
func (s *CardService) List(ctx context.Context, ownerID int64) ([]*core.Card, error) {
	cards, err := s.db.ListCards(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// ListByDeck returns the cards in one of the account's decks.
func (s *CardService) ListByDeck(ctx context.Context, ownerID, deckID int64) ([]*core.Card, error) {
	cards, err := s.db.ListCardsByDeck(ctx, ownerID, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards by deck: %w", err)
	}
	return cards, nil
}

// Get returns one card by id, scoped to the owner.
func (s *CardService) Get(ctx context.Context, ownerID, id int64) (*core.Card, error) {
	card, err := s.db.GetCard(ctx, ownerID, id)
	if err != nil {
		if err == core.ErrCardNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// Create inserts a new card into one of the account's decks. The deck
// lookup is owner-scoped, so pointing at another account's deck reports
// deck-not-found.
func (s *CardService) Create(ctx context.Context, ownerID int64, input CardInput) (*core.Card, error) {
	if input.Name == "" {
		return nil, core.ErrNameRequired
	}
	if input.DeckID == 0 {
		return nil, core.ErrDeckRequired
	}

	if _, err := s.db.GetDeck(ctx, ownerID, input.DeckID); err != nil {
		if err == core.ErrDeckNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to check deck: %w", err)
	}

	card := &core.Card{
		Name:     input.Name,
		Colors:   input.Colors,
		Type:     input.Type,
		ImageURL: input.ImageURL,
		DeckID:   input.DeckID,
		OwnerID:  ownerID,
	}
	if err := s.db.CreateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return card, nil
}

// DeleteByDeck removes every card in one of the account's decks and
// returns the deleted rows. An empty deck yields an empty slice, not an
// error.
func (s *CardService) DeleteByDeck(ctx context.Context, ownerID, deckID int64) ([]*core.Card, error) {
	cards, err := s.db.DeleteCardsByDeck(ctx, ownerID, deckID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete cards: %w", err)
	}
	return cards, nil
}

// Delete removes one card by id, scoped to the owner, and returns the
// deleted row. Deleting an already-deleted card reports not found, never
// a store failure.
func (s *CardService) Delete(ctx context.Context, ownerID, id int64) (*core.Card, error) {
	card, err := s.db.DeleteCard(ctx, ownerID, id)
	if err != nil {
		if err == core.ErrCardNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete card: %w", err)
	}
	return card, nil
}
