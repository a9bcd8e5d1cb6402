package database

import (
	"context"
	"database/sql"
)

// Prices and totals are TEXT in SQLite so decimals round-trip exactly
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		bill_id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_id INTEGER NOT NULL,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price TEXT NOT NULL,
		total TEXT NOT NULL,
		FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bills_customer ON bills(customer_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		bill_id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers(customer_id),
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price NUMERIC(12, 2) NOT NULL,
		total NUMERIC(14, 2) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bills_customer ON bills(customer_id)`,
}

// runMigrations creates the two tables if they are missing.
// Existing tables are left untouched; there is no schema versioning.
func runMigrations(ctx context.Context, db *sql.DB, d dialect) error {
	schema := sqliteSchema
	if d == dialectPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
