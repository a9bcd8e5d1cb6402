package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/config"
	"github.com/thenoetrevino/billform/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the schema bootstrapped
func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	db, err := InitDB(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	repo, err := NewRepository(db, config.DriverSQLite)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// openFileDB opens (or reopens) a file-backed database, simulating an app start
func openFileDB(t *testing.T, path string) (*Repository, *sql.DB) {
	t.Helper()
	db, err := InitDB(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   path,
	})
	if err != nil {
		t.Fatalf("Failed to open database %s: %v", path, err)
	}

	repo, err := NewRepository(db, config.DriverSQLite)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	return repo, db
}

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "billing.db")
}

// ============================================================================
// FIXTURES
// ============================================================================

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func createTestCustomer(t *testing.T, repo *Repository, name string) int64 {
	t.Helper()
	id, err := repo.CreateCustomer(context.Background(), name, "5551234567", "a@b.co", "1 Main St")
	if err != nil {
		t.Fatalf("Failed to create customer: %v", err)
	}
	return id
}

func createTestBill(t *testing.T, repo *Repository, customerID int64, item string, qty int, price string) int64 {
	t.Helper()
	p := dec(t, price)
	total := p.Mul(decimal.NewFromInt(int64(qty)))
	id, err := repo.CreateBill(context.Background(), customerID, item, qty, p, total)
	if err != nil {
		t.Fatalf("Failed to create bill: %v", err)
	}
	return id
}

func sampleCustomer() models.Customer {
	return models.Customer{Name: "Ann", Phone: "5551234567", Email: "ann@x.io", Address: "1 Main St"}
}

func countRows(t *testing.T, repo *Repository, table string) int {
	t.Helper()
	var n int
	if err := repo.db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}
