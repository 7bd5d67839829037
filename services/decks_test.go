package services

import (
	"context"
	"testing"

	"github.com/binderhq/binder/core"
)

func seedDeck(t *testing.T, storage *FakeStorage, ownerID int64, name string) *core.Deck {
	t.Helper()
	deck := &core.Deck{Name: name, Description: "test deck", Constructed: true, OwnerID: ownerID}
	if err := storage.CreateDeck(context.Background(), deck); err != nil {
		t.Fatalf("CreateDeck() error = %v", err)
	}
	return deck
}

func seedCard(t *testing.T, storage *FakeStorage, ownerID, deckID int64, name string) *core.Card {
	t.Helper()
	card := &core.Card{Name: name, Colors: []string{"Red"}, Type: "Instant", DeckID: deckID, OwnerID: ownerID}
	if err := storage.CreateCard(context.Background(), card); err != nil {
		t.Fatalf("CreateCard() error = %v", err)
	}
	return card
}

// Requirement: listing decks returns exactly the owner's decks, never
// another account's.
func TestDeckService_List_OwnerScoped(t *testing.T) {
	storage := NewFakeStorage()
	service := NewDeckService(storage)

	mine := seedDeck(t, storage, 1, "Burn")
	seedDeck(t, storage, 2, "Control")

	decks, err := service.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(decks) != 1 {
		t.Fatalf("List() returned %d decks, want 1", len(decks))
	}
	if decks[0].ID != mine.ID {
		t.Errorf("List() returned deck %d, want %d", decks[0].ID, mine.ID)
	}
}

// Requirement: a deck owned by another account is indistinguishable from
// a missing deck.
func TestDeckService_Get(t *testing.T) {
	storage := NewFakeStorage()
	service := NewDeckService(storage)
	deck := seedDeck(t, storage, 1, "Burn")

	tests := []struct {
		name    string
		ownerID int64
		deckID  int64
		wantErr error
	}{
		{name: "owner reads own deck", ownerID: 1, deckID: deck.ID},
		{name: "other account gets not found", ownerID: 2, deckID: deck.ID, wantErr: core.ErrDeckNotFound},
		{name: "missing id gets not found", ownerID: 1, deckID: 999, wantErr: core.ErrDeckNotFound},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got, err := service.Get(context.Background(), test.ownerID, test.deckID)
			if err != test.wantErr {
				t.Fatalf("Get() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr == nil && got.Name != deck.Name {
				t.Errorf("Get() name = %q, want %q", got.Name, deck.Name)
			}
		})
	}
}

func TestDeckService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   DeckInput
		wantErr error
	}{
		{
			name:  "creates deck with generated id",
			input: DeckInput{Name: "Burn", Description: "all damage", Constructed: true},
		},
		{
			name:    "rejects missing name",
			input:   DeckInput{Description: "anonymous"},
			wantErr: core.ErrNameRequired,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			service := NewDeckService(NewFakeStorage())

			deck, err := service.Create(context.Background(), 1, test.input)
			if err != test.wantErr {
				t.Fatalf("Create() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr != nil {
				return
			}
			if deck.ID == 0 {
				t.Error("Create() should assign a generated id")
			}
			if deck.OwnerID != 1 {
				t.Errorf("Create() owner = %d, want 1", deck.OwnerID)
			}
		})
	}
}

// Requirement: updates match id AND owner; a non-owner cannot mutate the
// row and learns nothing beyond not-found.
func TestDeckService_Update_OwnerScoped(t *testing.T) {
	storage := NewFakeStorage()
	service := NewDeckService(storage)
	deck := seedDeck(t, storage, 1, "Burn")

	_, err := service.Update(context.Background(), 2, deck.ID, DeckInput{Name: "Hijacked"})
	if err != core.ErrDeckNotFound {
		t.Fatalf("Update() by non-owner error = %v, want ErrDeckNotFound", err)
	}

	// The row must be untouched.
	unchanged, err := service.Get(context.Background(), 1, deck.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if unchanged.Name != "Burn" {
		t.Errorf("deck name = %q after non-owner update, want %q", unchanged.Name, "Burn")
	}

	updated, err := service.Update(context.Background(), 1, deck.ID, DeckInput{Name: "Sligh", Description: "faster", Constructed: false})
	if err != nil {
		t.Fatalf("Update() by owner error = %v", err)
	}
	if updated.Name != "Sligh" || updated.Description != "faster" || updated.Constructed {
		t.Errorf("Update() returned %+v, want the supplied fields", updated)
	}
}

func TestDeckService_Delete(t *testing.T) {
	t.Run("deletes an empty deck and returns the row", func(t *testing.T) {
		storage := NewFakeStorage()
		service := NewDeckService(storage)
		deck := seedDeck(t, storage, 1, "Burn")

		deleted, err := service.Delete(context.Background(), 1, deck.ID)
		if err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		if deleted.ID != deck.ID {
			t.Errorf("Delete() returned deck %d, want %d", deleted.ID, deck.ID)
		}

		// Delete-then-get must come back empty.
		if _, err := service.Get(context.Background(), 1, deck.ID); err != core.ErrDeckNotFound {
			t.Errorf("Get() after delete error = %v, want ErrDeckNotFound", err)
		}
	})

	t.Run("refuses to delete a deck that still has cards", func(t *testing.T) {
		storage := NewFakeStorage()
		service := NewDeckService(storage)
		deck := seedDeck(t, storage, 1, "Burn")
		seedCard(t, storage, 1, deck.ID, "Lightning Bolt")

		_, err := service.Delete(context.Background(), 1, deck.ID)
		if err != core.ErrDeckNotEmpty {
			t.Fatalf("Delete() error = %v, want ErrDeckNotEmpty", err)
		}
	})

	t.Run("non-owner delete reports not found", func(t *testing.T) {
		storage := NewFakeStorage()
		service := NewDeckService(storage)
		deck := seedDeck(t, storage, 1, "Burn")

		if _, err := service.Delete(context.Background(), 2, deck.ID); err != core.ErrDeckNotFound {
			t.Fatalf("Delete() error = %v, want ErrDeckNotFound", err)
		}
	})
}
