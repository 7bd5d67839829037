package core

import "time"

// Account represents a registered identity in the system
//
// This is the "who" - every deck and card row hangs off an account
type Account struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"createdAt"`
}

// Deck is a named, owned collection that cards belong to
type Deck struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Constructed bool   `json:"constructed"`
	OwnerID     int64  `json:"ownerId"`
}

// Card is an owned item belonging to exactly one deck
type Card struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Colors   []string `json:"colors"`
	Type     string   `json:"type"`
	ImageURL string   `json:"imageUrl"`
	DeckID   int64    `json:"deckId"`
	OwnerID  int64    `json:"ownerId"`
}
