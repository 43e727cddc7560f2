// Package config reads the runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port int `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		// Path of the sqlite file. The directory is created on startup.
		Path string `envconfig:"DB_PATH" default:"data/familybiz.db"`
	}

	Sync struct {
		// CloudURL is the endpoint holding the cloud copy of the
		// ledger. Sync is disabled when empty.
		CloudURL string `envconfig:"SYNC_CLOUD_URL"`

		// Debounce is how long the ledger must stay quiet after an
		// edit before it is pushed.
		Debounce time.Duration `envconfig:"SYNC_DEBOUNCE" default:"2s"`

		// Timeout bounds a single push or pull request.
		Timeout time.Duration `envconfig:"SYNC_TIMEOUT" default:"30s"`

		// StartupTimeout bounds the pull at startup. When it expires
		// the server starts with the local state.
		StartupTimeout time.Duration `envconfig:"SYNC_STARTUP_TIMEOUT" default:"4s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
