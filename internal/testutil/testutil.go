// Package testutil provides shared fixtures for tests that need a full App:
// an in-memory database, seeded bills and cobra command execution.
package testutil

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/billform/internal/app"
	"github.com/thenoetrevino/billform/internal/cli"
	"github.com/thenoetrevino/billform/internal/config"
	"github.com/thenoetrevino/billform/internal/database"
	"github.com/thenoetrevino/billform/internal/models"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// SetupTestApp creates an App over an in-memory SQLite database.
// Exports go to a per-test temp dir. The App is closed when the test ends.
func SetupTestApp(t *testing.T) *app.App {
	t.Helper()

	db, err := database.InitDB(context.Background(), config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	repo, err := database.NewRepository(db, config.DriverSQLite)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	cfg := &config.Config{
		Database:    config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"},
		Export:      config.ExportConfig{Dir: t.TempDir()},
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}

	a := app.New(repo, cfg, app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// CreateTestBill submits a customer with one bill and returns the stored bill
func CreateTestBill(t *testing.T, a *app.App, customer, item string, quantity int, price string) *models.Bill {
	t.Helper()

	b, err := a.BillService.Submit(context.Background(), billservice.SubmitRequest{
		CreateCustomerRequest: billservice.CreateCustomerRequest{
			Name:  customer,
			Phone: "5551234567",
			Email: "test@example.com",
		},
		ItemName: item,
		Quantity: quantity,
		Price:    decimal.RequireFromString(price),
	})
	if err != nil {
		t.Fatalf("Failed to create test bill: %v", err)
	}
	return b
}

// ExecuteCLICommand runs cmd with args against the test App and returns
// what the command wrote to stdout and stderr
func ExecuteCLICommand(t *testing.T, a *app.App, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, a, cmd, "", args...)
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin set to input
func ExecuteCLICommandWithInput(t *testing.T, a *app.App, cmd *cobra.Command, input string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	if a == nil {
		t.Fatal("app cannot be nil - SetupTestApp must be called first")
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(bytes.NewBufferString(input))
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err = cmd.ExecuteContext(cli.WithApp(context.Background(), a))
	return out.String(), errOut.String(), err
}
