// Command seed creates the schema and loads the demo fixture into the
// configured database.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	pgxadapter "github.com/binderhq/binder/adapters/pgx"
	"github.com/binderhq/binder/config"
	"github.com/binderhq/binder/migrations"
	"github.com/binderhq/binder/pkg/crypto"
	"github.com/binderhq/binder/seed"
)

const (
	defaultSeedEmail    = "demo@example.com"
	defaultSeedPassword = "DemoPass123!"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := migrations.Run(ctx, cfg.DatabaseURL); err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	email := os.Getenv("SEED_EMAIL")
	if email == "" {
		email = defaultSeedEmail
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = defaultSeedPassword
	}

	if err := seed.Load(ctx, pgxadapter.New(pool), crypto.NewArgon2(), email, password); err != nil {
		return err
	}

	slog.Info("seed data load complete", "email", email)
	return nil
}
