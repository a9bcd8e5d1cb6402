package bill

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/config"
	"github.com/thenoetrevino/billform/internal/database"
	"github.com/thenoetrevino/billform/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestService creates a service backed by an in-memory database
func setupTestService(t *testing.T) (Service, *database.Repository) {
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
	t.Cleanup(func() { _ = repo.Close() })

	return NewService(repo, quietLogger()), repo
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validSubmit() SubmitRequest {
	return SubmitRequest{
		CreateCustomerRequest: CreateCustomerRequest{
			Name:    "Ann",
			Phone:   "5551234567",
			Email:   "ann@x.io",
			Address: "1 Main St",
		},
		ItemName: "Pen",
		Quantity: 3,
		Price:    decimal.RequireFromString("2.50"),
	}
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// ============================================================================
// SUBMIT
// ============================================================================

func TestSubmitComputesTotal(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	b, err := svc.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if b.ID <= 0 || b.CustomerID <= 0 {
		t.Errorf("Expected generated IDs, got bill=%d customer=%d", b.ID, b.CustomerID)
	}
	if got := b.Total.StringFixed(2); got != "7.50" {
		t.Errorf("Expected total 7.50, got %s", got)
	}

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"1", "Ann", "Pen", "3", "7.50"}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	for i, cell := range rows[0].Cells() {
		if cell != want[i] {
			t.Errorf("Cell %d: expected %q, got %q", i, want[i], cell)
		}
	}
}

func TestSubmitExplicitTotalKept(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)

	req := validSubmit()
	req.Total = ptr(decimal.RequireFromString("7.00"))

	b, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if got := b.Total.StringFixed(2); got != "7.00" {
		t.Errorf("Expected the given total 7.00, got %s", got)
	}
}

func TestSubmitTrimsFields(t *testing.T) {
	t.Parallel()
	svc, repo := setupTestService(t)
	ctx := context.Background()

	req := validSubmit()
	req.Name = "  Ann  "
	req.ItemName = " Pen "

	b, err := svc.Submit(ctx, req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	detail, err := repo.GetBill(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetBill failed: %v", err)
	}
	if detail.Customer.Name != "Ann" || detail.ItemName != "Pen" {
		t.Errorf("Expected trimmed values, got %q / %q", detail.Customer.Name, detail.ItemName)
	}
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*SubmitRequest)
		wantErr error
	}{
		{"empty name", func(r *SubmitRequest) { r.Name = "   " }, ErrEmptyName},
		{"short phone", func(r *SubmitRequest) { r.Phone = "555123" }, ErrInvalidPhone},
		{"phone with letters", func(r *SubmitRequest) { r.Phone = "555123456a" }, ErrInvalidPhone},
		{"bad email", func(r *SubmitRequest) { r.Email = "ann@x" }, ErrInvalidEmail},
		{"empty item", func(r *SubmitRequest) { r.ItemName = "" }, ErrEmptyItemName},
		{"negative quantity", func(r *SubmitRequest) { r.Quantity = -1 }, ErrInvalidQuantity},
		{"negative price", func(r *SubmitRequest) { r.Price = decimal.NewFromInt(-1) }, ErrInvalidPrice},
		{"negative total", func(r *SubmitRequest) { r.Total = ptr(decimal.NewFromInt(-5)) }, ErrInvalidTotal},
		{"sub-cent price", func(r *SubmitRequest) { r.Price = decimal.RequireFromString("2.555") }, ErrInvalidPrice},
		{"sub-cent total", func(r *SubmitRequest) { r.Total = ptr(decimal.RequireFromString("7.665")) }, ErrInvalidTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := setupTestService(t)

			req := validSubmit()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}

			rows, err := repo.ListBills(context.Background())
			if err != nil {
				t.Fatalf("ListBills failed: %v", err)
			}
			if len(rows) != 0 {
				t.Errorf("Rejected submit must not store anything, found %d rows", len(rows))
			}
		})
	}
}

func TestSubmitAllowsEmptyAddressAndZeroQuantity(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)

	req := validSubmit()
	req.Address = ""
	req.Quantity = 0

	b, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !b.Total.IsZero() {
		t.Errorf("Expected zero total, got %s", b.Total)
	}
}

// ============================================================================
// CUSTOMER / BILL PASS-THROUGHS
// ============================================================================

func TestCreateCustomerThenBill(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	cid, err := svc.CreateCustomer(ctx, CreateCustomerRequest{Name: "Bob", Phone: "0123456789", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}

	b, err := svc.CreateBill(ctx, CreateBillRequest{
		CustomerID: cid,
		ItemName:   "Book",
		Quantity:   2,
		Price:      decimal.RequireFromString("10.25"),
	})
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}
	if got := b.Total.StringFixed(2); got != "20.50" {
		t.Errorf("Expected total 20.50, got %s", got)
	}

	detail, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if detail.Customer.Name != "Bob" {
		t.Errorf("Expected Bob, got %q", detail.Customer.Name)
	}
}

func TestCreateBillInvalidCustomer(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	req := CreateBillRequest{ItemName: "Pen", Quantity: 1, Price: decimal.NewFromInt(1)}
	if _, err := svc.CreateBill(ctx, req); !errors.Is(err, ErrInvalidCustomer) {
		t.Errorf("Expected ErrInvalidCustomer, got %v", err)
	}

	// Positive but unknown customer fails in storage
	req.CustomerID = 404
	_, err := svc.CreateBill(ctx, req)
	var storageErr *database.StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("Expected *StorageError, got %T: %v", err, err)
	}
}

// ============================================================================
// UPDATE / DELETE / GET
// ============================================================================

func TestUpdateRecomputesTotal(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	b, err := svc.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	err = svc.Update(ctx, UpdateRequest{
		BillID:   b.ID,
		ItemName: "Pencil",
		Quantity: 5,
		Price:    decimal.RequireFromString("2.00"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if rows[0].ItemName != "Pencil" || rows[0].Quantity != 5 || rows[0].Total.StringFixed(2) != "10.00" {
		t.Errorf("Unexpected row after update: %+v", rows[0])
	}
}

func TestStoredTotalSurvivesUnchangedEdit(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	req := validSubmit()
	req.Price = decimal.RequireFromString("2.55")
	b, err := svc.Submit(ctx, req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	stored, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !stored.Total.Equal(b.Total) {
		t.Errorf("Submit returned total %s, stored %s", b.Total, stored.Total)
	}
	want := stored.Price.Mul(decimal.NewFromInt(int64(stored.Quantity)))
	if !stored.Total.Equal(want) {
		t.Errorf("Stored total %s != quantity x price %s", stored.Total, want)
	}

	err = svc.Update(ctx, UpdateRequest{
		BillID:   b.ID,
		ItemName: stored.ItemName,
		Quantity: stored.Quantity,
		Price:    stored.Price,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	after, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !after.Price.Equal(stored.Price) || !after.Total.Equal(stored.Total) {
		t.Errorf("Unchanged edit moved price/total from %s/%s to %s/%s",
			stored.Price, stored.Total, after.Price, after.Total)
	}
}

func TestUpdateRejectsSubCentPrice(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	b, err := svc.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	err = svc.Update(ctx, UpdateRequest{
		BillID:   b.ID,
		ItemName: "Pen",
		Quantity: 3,
		Price:    decimal.RequireFromString("2.555"),
	})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("Expected ErrInvalidPrice, got %v", err)
	}

	d, err := svc.Get(ctx, b.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d.Total.StringFixed(2) != "7.50" {
		t.Errorf("Rejected update must not change the bill, total is %s", d.Total)
	}
}

func TestUpdateMissingBill(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)

	err := svc.Update(context.Background(), UpdateRequest{BillID: 99, ItemName: "Pen", Quantity: 1})
	if !errors.Is(err, models.ErrBillNotFound) {
		t.Errorf("Expected ErrBillNotFound, got %v", err)
	}
}

func TestInvalidBillID(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	if err := svc.Delete(ctx, 0); !errors.Is(err, ErrInvalidBillID) {
		t.Errorf("Delete: expected ErrInvalidBillID, got %v", err)
	}
	if _, err := svc.Get(ctx, -1); !errors.Is(err, ErrInvalidBillID) {
		t.Errorf("Get: expected ErrInvalidBillID, got %v", err)
	}
	if err := svc.Update(ctx, UpdateRequest{ItemName: "Pen"}); !errors.Is(err, ErrInvalidBillID) {
		t.Errorf("Update: expected ErrInvalidBillID, got %v", err)
	}
}

func TestDeleteRemovesOnlyThatBill(t *testing.T) {
	t.Parallel()
	svc, _ := setupTestService(t)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	second, err := svc.Submit(ctx, validSubmit())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	// Deleting again is a no-op
	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}

	rows, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 1 || rows[0].BillID != second.ID {
		t.Errorf("Expected only bill %d, got %+v", second.ID, rows)
	}
}

// ============================================================================
// STORAGE FAILURES
// ============================================================================

// failingStore is a DataStore whose every call fails
type failingStore struct {
	database.DataStore
	err error
}

func (f failingStore) CreateCustomerWithBill(context.Context, models.Customer, models.Bill) (int64, int64, error) {
	return 0, 0, f.err
}

func (f failingStore) ListBills(context.Context) ([]models.BillRow, error) {
	return nil, f.err
}

func TestStorageFailuresAreWrapped(t *testing.T) {
	t.Parallel()
	cause := &database.StorageError{Op: "list bills", Err: errors.New("connection refused")}
	svc := NewService(failingStore{err: cause}, quietLogger())
	ctx := context.Background()

	_, err := svc.List(ctx)
	if !errors.Is(err, cause) {
		t.Errorf("List: expected wrapped storage error, got %v", err)
	}

	_, err = svc.Submit(ctx, validSubmit())
	var storageErr *database.StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("Submit: expected *StorageError, got %T", err)
	}
}
