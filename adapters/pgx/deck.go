package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/binderhq/binder/core"
)

func (a *Adapter) CreateDeck(ctx context.Context, deck *core.Deck) error {
	query := `INSERT INTO decks (name, description, constructed, owner_id)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := a.pool.QueryRow(ctx, query, deck.Name, deck.Description, deck.Constructed, deck.OwnerID).
		Scan(&deck.ID)
	if err != nil {
		return err
	}
	return nil
}

func (a *Adapter) ListDecks(ctx context.Context, ownerID int64) ([]*core.Deck, error) {
	query := `SELECT id, name, description, constructed, owner_id
	          FROM decks WHERE owner_id = $1 ORDER BY id`

	rows, err := a.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decks := []*core.Deck{}
	for rows.Next() {
		deck := &core.Deck{}
		if err := rows.Scan(&deck.ID, &deck.Name, &deck.Description, &deck.Constructed, &deck.OwnerID); err != nil {
			return nil, err
		}
		decks = append(decks, deck)
	}
	return decks, rows.Err()
}

func (a *Adapter) GetDeck(ctx context.Context, ownerID, id int64) (*core.Deck, error) {
	query := `SELECT id, name, description, constructed, owner_id
	          FROM decks WHERE owner_id = $1 AND id = $2`

	deck := &core.Deck{}
	err := a.pool.QueryRow(ctx, query, ownerID, id).
		Scan(&deck.ID, &deck.Name, &deck.Description, &deck.Constructed, &deck.OwnerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrDeckNotFound
		}
		return nil, err
	}
	return deck, nil
}

// UpdateDeck matches on id AND owner so a row can only be rewritten by
// the account it belongs to.
func (a *Adapter) UpdateDeck(ctx context.Context, deck *core.Deck) error {
	query := `UPDATE decks
	          SET name = $1, description = $2, constructed = $3
	          WHERE id = $4 AND owner_id = $5
	          RETURNING id`

	err := a.pool.QueryRow(ctx, query, deck.Name, deck.Description, deck.Constructed, deck.ID, deck.OwnerID).
		Scan(&deck.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return core.ErrDeckNotFound
		}
		return err
	}
	return nil
}

func (a *Adapter) DeleteDeck(ctx context.Context, ownerID, id int64) (*core.Deck, error) {
	query := `DELETE FROM decks
	          WHERE id = $1 AND owner_id = $2
	          RETURNING id, name, description, constructed, owner_id`

	deck := &core.Deck{}
	err := a.pool.QueryRow(ctx, query, id, ownerID).
		Scan(&deck.ID, &deck.Name, &deck.Description, &deck.Constructed, &deck.OwnerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrDeckNotFound
		}
		return nil, err
	}
	return deck, nil
}
