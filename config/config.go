package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"5000"`
	DatabaseURL  string `env:"DATABASE_URL" envDefault:"file:linkvote.db"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"sqlite"`

	// TokenSecret signs application credentials. Required.
	TokenSecret string        `env:"TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	LinkedInClientID     string `env:"LINKEDIN_CLIENT_ID"`
	LinkedInClientSecret string `env:"LINKEDIN_CLIENT_SECRET"`
	LinkedInRedirectURI  string `env:"LINKEDIN_REDIRECT_URI"`

	// SeedFile optionally points at a JSON file of candidates loaded at
	// startup. Candidates are only ever created out-of-band.
	SeedFile string `env:"SEED_FILE"`
}

// Load parses environment variables into a Config, with a few CLI flag
// overrides for local development (-p port, -d database URL, -t database
// type). Secrets come from the environment only.
func Load(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("linkvote", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid DATABASE_TYPE %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required")
	}
	if cfg.LinkedInClientID == "" {
		return Config{}, errors.New("LINKEDIN_CLIENT_ID required")
	}
	if cfg.LinkedInClientSecret == "" {
		return Config{}, errors.New("LINKEDIN_CLIENT_SECRET required")
	}
	if cfg.LinkedInRedirectURI == "" {
		return Config{}, errors.New("LINKEDIN_REDIRECT_URI required")
	}

	return cfg, nil
}
