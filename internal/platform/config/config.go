// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, search backend) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Search backend selectors. Exactly one backend serves a running instance.
const (
	BackendPostgres   = "postgres"
	BackendRediSearch = "redisearch"
)

// # Configuration Schema

// Config holds all runtime configuration for the archive API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"3010"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// SearchBackend selects the query executor: "postgres" or "redisearch".
	// The relational backend is the default; the document-search backend is
	// only used where a RediSearch index of the corpus is maintained.
	SearchBackend string `env:"SEARCH_BACKEND" envDefault:"postgres"`

	// RedisURL is required only when SearchBackend is "redisearch".
	RedisURL string `env:"REDIS_URL"`

	// SearchIndex is the name of the RediSearch index over the corpus.
	SearchIndex string `env:"SEARCH_INDEX" envDefault:"artwork:idx"`

	// Admin gate credentials. The password is stored as a bcrypt hash.
	AdminUser         string `env:"ADMIN_USER"          envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// AdminTokenSecret signs the short-lived bearer tokens issued by /admin/login.
	AdminTokenSecret string `env:"ADMIN_TOKEN_SECRET,required"`

	// ImagePath is the directory holding the full-size artwork scans.
	ImagePath string `env:"IMAGE_PATH" envDefault:"./images"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.SearchBackend != BackendPostgres && cfg.SearchBackend != BackendRediSearch {
		return nil, fmt.Errorf("config: unknown SEARCH_BACKEND %q", cfg.SearchBackend)
	}
	if cfg.SearchBackend == BackendRediSearch && cfg.RedisURL == "" {
		return nil, fmt.Errorf("config: REDIS_URL is required when SEARCH_BACKEND=redisearch")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
