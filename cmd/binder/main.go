package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/jackc/pgx/v5/pgxpool"

	fiberadapter "github.com/binderhq/binder/adapters/fiber"
	pgxadapter "github.com/binderhq/binder/adapters/pgx"
	"github.com/binderhq/binder/config"
	"github.com/binderhq/binder/migrations"
	"github.com/binderhq/binder/pkg/crypto"
	"github.com/binderhq/binder/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := migrations.Run(ctx, cfg.DatabaseURL); err != nil {
		return err
	}

	tokens, err := crypto.NewTokenIssuer([]byte(cfg.Secret), cfg.TokenTTL)
	if err != nil {
		return err
	}

	db := pgxadapter.New(pool)
	auth := services.NewAuthService(db, crypto.NewArgon2(), tokens)
	decks := services.NewDeckService(db)
	cards := services.NewCardService(db)

	app := fiber.New()
	app.Use(logger.New())
	fiberadapter.New(app, auth, decks, cards, tokens).RegisterRoutes()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", cfg.Addr)
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
