// Package config reads server settings from the process environment.
// A .env file in the working directory is loaded first when present;
// real environment variables win over it.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/binderhq/binder/core"
)

const defaultAddr = ":3000"

// Config holds runtime settings for the binder server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabaseURL: PostgreSQL DSN (pgx).
//   - Secret: HMAC secret for signing bearer tokens (HS256), minimum 32 bytes.
//   - TokenTTL: token lifetime; zero issues tokens without an expiry claim.
type Config struct {
	Addr        string
	DatabaseURL string
	Secret      string
	TokenTTL    time.Duration
}

// Load builds a Config from the environment. A missing signing secret
// or database URL is a fatal condition reported to the caller; the
// server must not start without them.
func Load() (*Config, error) {
	// Missing .env is fine; containers set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:        os.Getenv("BINDER_ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Secret:      os.Getenv("BINDER_SECRET"),
	}
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}

	if cfg.Secret == "" {
		return nil, core.ErrSecretRequired
	}
	if cfg.DatabaseURL == "" {
		return nil, core.ErrDSNRequired
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", raw, err)
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}
