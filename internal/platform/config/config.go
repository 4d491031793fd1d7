// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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
  - DI-Friendly: Passed to core components (storage, sessions) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/folio/internal/platform/constants"
)

// # Configuration Schema

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageBolt     = "bolt"
	StoragePostgres = "postgres"
)

// Config holds all runtime configuration for the Folio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Content storage. "bolt" keeps the document in an embedded file,
	// "postgres" in the content_documents table.
	StorageDriver     string `env:"STORAGE_DRIVER"      envDefault:"bolt"`
	BoltPath          string `env:"BOLT_PATH"           envDefault:"./data/folio.db"`
	StorageQuotaBytes int    `env:"STORAGE_QUOTA_BYTES" envDefault:"5242880"`

	// Relational Database (PostgreSQL), only read when StorageDriver is "postgres".
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Admin flags fall back to process memory when empty.
	RedisURL string `env:"REDIS_URL"`

	// Session signing and lifetime
	SessionSecret string        `env:"SESSION_SECRET,required"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"12h"`

	// The single administrator credential.
	AdminUsername     string `env:"ADMIN_USERNAME,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// Uploads
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("config: BOLT_PATH is required for the bolt storage driver")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for the postgres storage driver")
		}
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.StorageQuotaBytes <= 0 {
		c.StorageQuotaBytes = constants.DefaultStorageQuotaBytes
	}

	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// OriginSuffix implements the CORS policy lookup used by the middleware.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
