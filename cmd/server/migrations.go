package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/tasknest/tasknest-api/internal/config"
	"github.com/tasknest/tasknest-api/internal/platform/postgres/migrations"
)

// runMigrations applies any pending schema migrations. It is called on every
// startup so a fresh database reaches the current schema without a separate
// deploy step.
func runMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, migrations.Dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("Migrations applied", "version", version)
	return nil
}

// handleMigrations executes an explicit migration command (the -migrate flag)
// and exits without starting the server.
func handleMigrations(ctx context.Context, cfg *config.Config, command string) error {
	log := slog.Default()

	db, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close database connection", "error", closeErr)
		}
	}()

	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	slog.Info("Executing migrations", "command", command)

	switch command {
	case "up":
		return goose.UpContext(ctx, db, migrations.Dir)
	case "down":
		return goose.DownContext(ctx, db, migrations.Dir)
	case "status":
		return goose.StatusContext(ctx, db, migrations.Dir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}
