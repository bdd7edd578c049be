// Package config loads runtime settings from SALES_* environment variables,
// optionally seeded from a .env file, and validates them.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads .env into the process environment, if present, before any lookup.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SALES_"

// Config holds everything main needs to open the database and drive the demo.
type Config struct {
	DatabasePath string `koanf:"database_path" validate:"required"`
	LogLevel     string `koanf:"log_level" validate:"oneof=debug info warn error"`
	// Seed inserts sample departments and sellers into an empty database.
	Seed bool `koanf:"seed"`
	// DeleteDepartmentID and DeleteSellerID pick the rows the demo deletes.
	// Zero skips the delete step.
	DeleteDepartmentID int64 `koanf:"delete_department_id" validate:"gte=0"`
	DeleteSellerID     int64 `koanf:"delete_seller_id" validate:"gte=0"`
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		DatabasePath: "sales.db",
		LogLevel:     "info",
		Seed:         true,
	}
}

// Load reads SALES_* variables over the defaults. SALES_DATABASE_PATH maps
// to database_path and so on.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
