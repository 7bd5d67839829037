package services

import (
	"context"
	"fmt"

	"github.com/binderhq/binder/core"
)

// DeckInput contains the caller-supplied deck fields. The owner is never
// part of the input; it always comes from the verified token.
type DeckInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Constructed bool   `json:"constructed"`
}

type DeckService struct {
	db core.Storage
}

func NewDeckService(db core.Storage) *DeckService {
	return &DeckService{db: db}
}

// List returns every deck owned by the account.
func (s *DeckService) List(ctx context.Context, ownerID int64) ([]*core.Deck, error) {
	decks, err := s.db.ListDecks(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return decks, nil
}

// Get returns one deck by id, scoped to the owner. A deck owned by a
// different account is reported as not found.
func (s *DeckService) Get(ctx context.Context, ownerID, id int64) (*core.Deck, error) {
	deck, err := s.db.GetDeck(ctx, ownerID, id)
	if err != nil {
		if err == core.ErrDeckNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}
	return deck, nil
}

// Create inserts a new deck owned by the account.
func (s *DeckService) Create(ctx context.Context, ownerID int64, input DeckInput) (*core.Deck, error) {
	if input.Name == "" {
		return nil, core.ErrNameRequired
	}

	deck := &core.Deck{
		Name:        input.Name,
		Description: input.Description,
		Constructed: input.Constructed,
		OwnerID:     ownerID,
	}
	if err := s.db.CreateDeck(ctx, deck); err != nil {
		return nil, fmt.Errorf("failed to create deck: %w", err)
	}
	return deck, nil
}

// Update replaces the descriptive fields of a deck matched by id AND
// owner. Matching by id alone would let any account rewrite another
// account's deck.
func (s *DeckService) Update(ctx context.Context, ownerID, id int64, input DeckInput) (*core.Deck, error) {
	if input.Name == "" {
		return nil, core.ErrNameRequired
	}

	deck := &core.Deck{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Constructed: input.Constructed,
		OwnerID:     ownerID,
	}
	if err := s.db.UpdateDeck(ctx, deck); err != nil {
		if err == core.ErrDeckNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update deck: %w", err)
	}
	return deck, nil
}

// Delete removes a deck by id, scoped to the owner, and returns the
// deleted row. A deck that still holds cards is rejected; cards must be
// deleted first.
func (s *DeckService) Delete(ctx context.Context, ownerID, id int64) (*core.Deck, error) {
	remaining, err := s.db.CountCardsByDeck(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}
	if remaining > 0 {
		return nil, core.ErrDeckNotEmpty
	}

	deck, err := s.db.DeleteDeck(ctx, ownerID, id)
	if err != nil {
		if err == core.ErrDeckNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete deck: %w", err)
	}
	return deck, nil
}
