package config_test

import (
	"log/slog"
	"testing"

	"github.com/msomdec/sales-dao/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DatabasePath != "sales.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
	if !cfg.Seed {
		t.Fatal("expected seeding to be on by default")
	}
	if cfg.DeleteDepartmentID != 0 || cfg.DeleteSellerID != 0 {
		t.Fatalf("expected delete ids to default to 0, got %d/%d", cfg.DeleteDepartmentID, cfg.DeleteSellerID)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SALES_DATABASE_PATH", "/tmp/other.db")
	t.Setenv("SALES_LOG_LEVEL", "debug")
	t.Setenv("SALES_SEED", "false")
	t.Setenv("SALES_DELETE_DEPARTMENT_ID", "3")
	t.Setenv("SALES_DELETE_SELLER_ID", "7")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DatabasePath != "/tmp/other.db" {
		t.Fatalf("expected database path from env, got %q", cfg.DatabasePath)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.SlogLevel())
	}
	if cfg.Seed {
		t.Fatal("expected seeding to be off")
	}
	if cfg.DeleteDepartmentID != 3 || cfg.DeleteSellerID != 7 {
		t.Fatalf("expected delete ids 3/7, got %d/%d", cfg.DeleteDepartmentID, cfg.DeleteSellerID)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("SALES_LOG_LEVEL", "verbose")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected validation error for unknown log level")
	}
}

func TestLoad_NegativeDeleteID(t *testing.T) {
	t.Setenv("SALES_DELETE_SELLER_ID", "-1")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected validation error for negative id")
	}
}
