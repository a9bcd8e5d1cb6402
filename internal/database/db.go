// Package database handles the connection to the billing store and all
// customer and bill persistence
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/billform/internal/config"
)

// InitDB opens the single long-lived database handle described by cfg,
// prepares it and bootstraps the schema
func InitDB(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	if d == dialectSQLite && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(d.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection for the lifetime of the app; no pooling
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := prepare(ctx, db, d); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, err
	}

	return db, nil
}

// prepare applies connection settings, pings and runs the schema bootstrap
func prepare(ctx context.Context, db *sql.DB, d dialect) error {
	if d == dialectSQLite {
		// Enable foreign key constraints (bills must reference a customer)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			slog.Error("Failed to enable foreign keys", "error", err)
			return err
		}

		// Set busy timeout to 5 seconds (SQLite will retry for this duration)
		if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
			slog.Error("Failed to set busy timeout", "error", err)
			return err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db, d); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
