package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/msomdec/sales-dao/internal/config"
	"github.com/msomdec/sales-dao/internal/demo"
	"github.com/msomdec/sales-dao/internal/repository/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logOpts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}
	slog.Info("database migrations applied", "path", cfg.DatabasePath)

	depts, sellers := db.Departments(), db.Sellers()

	if cfg.Seed {
		seeded, err := demo.Seed(ctx, depts, sellers)
		if err != nil {
			return err
		}
		slog.Info("sample data checked", "seeded", seeded)
	}

	runner := demo.NewRunner(depts, sellers, os.Stdout)
	if err := runner.Run(ctx, demo.Options{
		DeleteDepartmentID: cfg.DeleteDepartmentID,
		DeleteSellerID:     cfg.DeleteSellerID,
	}); err != nil {
		return err
	}
	slog.Info("demo finished")
	return nil
}
