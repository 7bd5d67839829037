package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/binderhq/binder/core"
)

const cardColumns = `id, name, colors, card_type, image_url, deck_id, owner_id`

func (a *Adapter) CreateCard(ctx context.Context, card *core.Card) error {
	query := `INSERT INTO cards (name, colors, card_type, image_url, deck_id, owner_id)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	err := a.pool.QueryRow(ctx, query,
		card.Name, card.Colors, card.Type, card.ImageURL, card.DeckID, card.OwnerID,
	).Scan(&card.ID)
	if err != nil {
		return err
	}
	return nil
}

func (a *Adapter) ListCards(ctx context.Context, ownerID int64) ([]*core.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE owner_id = $1 ORDER BY id`

	rows, err := a.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCards(rows)
}

func (a *Adapter) ListCardsByDeck(ctx context.Context, ownerID, deckID int64) ([]*core.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE owner_id = $1 AND deck_id = $2 ORDER BY id`

	rows, err := a.pool.Query(ctx, query, ownerID, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCards(rows)
}

func (a *Adapter) GetCard(ctx context.Context, ownerID, id int64) (*core.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE owner_id = $1 AND id = $2`

	card := &core.Card{}
	err := a.pool.QueryRow(ctx, query, ownerID, id).Scan(
		&card.ID, &card.Name, &card.Colors, &card.Type, &card.ImageURL, &card.DeckID, &card.OwnerID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

func (a *Adapter) CountCardsByDeck(ctx context.Context, ownerID, deckID int64) (int, error) {
	query := `SELECT count(*) FROM cards WHERE owner_id = $1 AND deck_id = $2`

	var count int
	if err := a.pool.QueryRow(ctx, query, ownerID, deckID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (a *Adapter) DeleteCardsByDeck(ctx context.Context, ownerID, deckID int64) ([]*core.Card, error) {
	query := `DELETE FROM cards
	          WHERE deck_id = $1 AND owner_id = $2
	          RETURNING ` + cardColumns

	rows, err := a.pool.Query(ctx, query, deckID, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCards(rows)
}

func (a *Adapter) DeleteCard(ctx context.Context, ownerID, id int64) (*core.Card, error) {
	query := `DELETE FROM cards
	          WHERE id = $1 AND owner_id = $2
	          RETURNING ` + cardColumns

	card := &core.Card{}
	err := a.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&card.ID, &card.Name, &card.Colors, &card.Type, &card.ImageURL, &card.DeckID, &card.OwnerID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrCardNotFound
		}
		return nil, err
	}
	return card, nil
}

func scanCards(rows pgx.Rows) ([]*core.Card, error) {
	cards := []*core.Card{}
	for rows.Next() {
		card := &core.Card{}
		if err := rows.Scan(
			&card.ID, &card.Name, &card.Colors, &card.Type, &card.ImageURL, &card.DeckID, &card.OwnerID,
		); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}
