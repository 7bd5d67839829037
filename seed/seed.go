// Package seed loads a demo account with a fixture of decks and cards,
// mirroring what a fresh development database should contain.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/binderhq/binder/core"
)

//go:embed cards.json
var fixture embed.FS

type fixtureCard struct {
	Deck     string   `json:"deck"`
	Name     string   `json:"name"`
	Colors   []string `json:"colors"`
	Type     string   `json:"type"`
	ImageURL string   `json:"imageUrl"`
}

var fixtureDecks = map[string]core.Deck{
	"Burn":            {Name: "Burn", Description: "every spell at the face", Constructed: true},
	"Azorius Control": {Name: "Azorius Control", Description: "counter, sweep, win late", Constructed: true},
	"Green Stompy":    {Name: "Green Stompy", Description: "big creatures, fast clock", Constructed: true},
}

// Load creates the demo account with the given credentials and fills it
// with the embedded decks and cards.
func Load(ctx context.Context, db core.Storage, passwords core.PasswordHandler, email, password string) error {
	cards, err := readFixture()
	if err != nil {
		return err
	}

	hash, err := passwords.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	account := &core.Account{Email: email, Hash: hash}
	if err := db.CreateAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to create seed account: %w", err)
	}

	deckIDs := make(map[string]int64, len(fixtureDecks))
	for name, template := range fixtureDecks {
		deck := template
		deck.OwnerID = account.ID
		if err := db.CreateDeck(ctx, &deck); err != nil {
			return fmt.Errorf("failed to create deck %q: %w", name, err)
		}
		deckIDs[name] = deck.ID
	}

	for _, fc := range cards {
		deckID, ok := deckIDs[fc.Deck]
		if !ok {
			return fmt.Errorf("fixture card %q references unknown deck %q", fc.Name, fc.Deck)
		}
		card := &core.Card{
			Name:     fc.Name,
			Colors:   fc.Colors,
			Type:     fc.Type,
			ImageURL: fc.ImageURL,
			DeckID:   deckID,
			OwnerID:  account.ID,
		}
		if err := db.CreateCard(ctx, card); err != nil {
			return fmt.Errorf("failed to create card %q: %w", fc.Name, err)
		}
	}

	return nil
}

func readFixture() ([]fixtureCard, error) {
	raw, err := fixture.ReadFile("cards.json")
	if err != nil {
		return nil, err
	}
	var cards []fixtureCard
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("invalid card fixture: %w", err)
	}
	return cards, nil
}
