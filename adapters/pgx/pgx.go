package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/binderhq/binder/core"
)

// Adapter implements core.Storage against Postgres. All statements are
// parameter-bound; values never reach the SQL text.
type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.Storage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
