package services

import (
	"context"
	"sync"

	"github.com/binderhq/binder/core"
)

// FakeStorage is a test-only fake implementing core.Storage. It keeps
// rows in maps and exposes error fields for behavior injection.
type FakeStorage struct {
	mu       sync.RWMutex
	accounts map[int64]*core.Account
	decks    map[int64]*core.Deck
	cards    map[int64]*core.Card

	nextAccountID int64
	nextDeckID    int64
	nextCardID    int64

	CreateErr error
	GetErr    error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

var _ core.Storage = (*FakeStorage)(nil)

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		accounts: make(map[int64]*core.Account),
		decks:    make(map[int64]*core.Deck),
		cards:    make(map[int64]*core.Card),
	}
}

func (f *FakeStorage) CreateAccount(ctx context.Context, a *core.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.nextAccountID++
	a.ID = f.nextAccountID
	copied := *a
	f.accounts[a.ID] = &copied
	return nil
}

func (f *FakeStorage) GetAccountByID(ctx context.Context, id int64) (*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	a, ok := f.accounts[id]
	if !ok {
		return nil, core.ErrAccountNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *FakeStorage) GetAccountByEmail(ctx context.Context, email string) (*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	for _, a := range f.accounts {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (f *FakeStorage) CreateDeck(ctx context.Context, d *core.Deck) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.nextDeckID++
	d.ID = f.nextDeckID
	copied := *d
	f.decks[d.ID] = &copied
	return nil
}

func (f *FakeStorage) ListDecks(ctx context.Context, ownerID int64) ([]*core.Deck, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	decks := []*core.Deck{}
	for _, d := range f.decks {
		if d.OwnerID == ownerID {
			copied := *d
			decks = append(decks, &copied)
		}
	}
	return decks, nil
}

func (f *FakeStorage) GetDeck(ctx context.Context, ownerID, id int64) (*core.Deck, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	d, ok := f.decks[id]
	if !ok || d.OwnerID != ownerID {
		return nil, core.ErrDeckNotFound
	}
	copied := *d
	return &copied, nil
}

func (f *FakeStorage) UpdateDeck(ctx context.Context, d *core.Deck) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	existing, ok := f.decks[d.ID]
	if !ok || existing.OwnerID != d.OwnerID {
		return core.ErrDeckNotFound
	}
	copied := *d
	f.decks[d.ID] = &copied
	return nil
}

func (f *FakeStorage) DeleteDeck(ctx context.Context, ownerID, id int64) (*core.Deck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	d, ok := f.decks[id]
	if !ok || d.OwnerID != ownerID {
		return nil, core.ErrDeckNotFound
	}
	delete(f.decks, id)
	return d, nil
}

func (f *FakeStorage) CreateCard(ctx context.Context, c *core.Card) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.nextCardID++
	c.ID = f.nextCardID
	copied := *c
	f.cards[c.ID] = &copied
	return nil
}

func (f *FakeStorage) ListCards(ctx context.Context, ownerID int64) ([]*core.Card, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	cards := []*core.Card{}
	for _, c := range f.cards {
		if c.OwnerID == ownerID {
			copied := *c
			cards = append(cards, &copied)
		}
	}
	return cards, nil
}

func (f *FakeStorage) ListCardsByDeck(ctx context.Context, ownerID, deckID int64) ([]*core.Card, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	cards := []*core.Card{}
	for _, c := range f.cards {
		if c.OwnerID == ownerID && c.DeckID == deckID {
			copied := *c
			cards = append(cards, &copied)
		}
	}
	return cards, nil
}

func (f *FakeStorage) GetCard(ctx context.Context, ownerID, id int64) (*core.Card, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	c, ok := f.cards[id]
	if !ok || c.OwnerID != ownerID {
		return nil, core.ErrCardNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *FakeStorage) CountCardsByDeck(ctx context.Context, ownerID, deckID int64) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.GetErr != nil {
		return 0, f.GetErr
	}
	count := 0
	for _, c := range f.cards {
		if c.OwnerID == ownerID && c.DeckID == deckID {
			count++
		}
	}
	return count, nil
}

func (f *FakeStorage) DeleteCardsByDeck(ctx context.Context, ownerID, deckID int64) ([]*core.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	deleted := []*core.Card{}
	for id, c := range f.cards {
		if c.OwnerID == ownerID && c.DeckID == deckID {
			deleted = append(deleted, c)
			delete(f.cards, id)
		}
	}
	return deleted, nil
}

func (f *FakeStorage) DeleteCard(ctx context.Context, ownerID, id int64) (*core.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	c, ok := f.cards[id]
	if !ok || c.OwnerID != ownerID {
		return nil, core.ErrCardNotFound
	}
	delete(f.cards, id)
	return c, nil
}
