package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/binderhq/binder/core"
)

func (a *Adapter) CreateAccount(ctx context.Context, account *core.Account) error {
	query := `INSERT INTO accounts (email, hash) VALUES ($1, $2) RETURNING id, created_at`

	err := a.pool.QueryRow(ctx, query, account.Email, account.Hash).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (a *Adapter) GetAccountByID(ctx context.Context, id int64) (*core.Account, error) {
	query := `SELECT id, email, hash, created_at FROM accounts WHERE id = $1`

	account := &core.Account{}
	err := a.pool.QueryRow(ctx, query, id).
		Scan(&account.ID, &account.Email, &account.Hash, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

func (a *Adapter) GetAccountByEmail(ctx context.Context, email string) (*core.Account, error) {
	query := `SELECT id, email, hash, created_at FROM accounts WHERE email = $1`

	account := &core.Account{}
	err := a.pool.QueryRow(ctx, query, email).
		Scan(&account.ID, &account.Email, &account.Hash, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}
