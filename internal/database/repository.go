package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*CustomerRepo
	*BillRepo

	db      *sql.DB
	dialect dialect
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository wrapping the given connection.
// driver selects the SQL dialect and must match the one db was opened with.
func NewRepository(db *sql.DB, driver string) (*Repository, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &Repository{
		CustomerRepo: &CustomerRepo{db: db, dialect: d},
		BillRepo:     &BillRepo{db: db, dialect: d},
		db:           db,
		dialect:      d,
	}, nil
}

func (r *Repository) CreateCustomer(ctx context.Context, name, phone, email, address string) (int64, error) {
	return r.CustomerRepo.Create(ctx, name, phone, email, address)
}

func (r *Repository) CreateBill(ctx context.Context, customerID int64, itemName string, quantity int, price, total decimal.Decimal) (int64, error) {
	return r.BillRepo.Create(ctx, customerID, itemName, quantity, price, total)
}

func (r *Repository) ListBills(ctx context.Context) ([]models.BillRow, error) {
	return r.BillRepo.List(ctx)
}

func (r *Repository) GetBill(ctx context.Context, billID int64) (*models.BillDetail, error) {
	return r.BillRepo.GetDetail(ctx, billID)
}

func (r *Repository) UpdateBill(ctx context.Context, billID int64, itemName string, quantity int, price, total decimal.Decimal) error {
	return r.BillRepo.Update(ctx, billID, itemName, quantity, price, total)
}

func (r *Repository) DeleteBill(ctx context.Context, billID int64) error {
	return r.BillRepo.Delete(ctx, billID)
}

// CreateCustomerWithBill inserts a customer and its first bill in one
// transaction. Either both rows exist afterwards or neither does.
// bill.CustomerID is ignored and replaced by the new customer's ID.
func (r *Repository) CreateCustomerWithBill(ctx context.Context, customer models.Customer, bill models.Bill) (customerID, billID int64, err error) {
	err = withTx(ctx, r.db, func(tx *sql.Tx) error {
		var txErr error
		customerID, txErr = insertCustomer(ctx, tx, r.dialect,
			customer.Name, customer.Phone, customer.Email, customer.Address)
		if txErr != nil {
			return fmt.Errorf("insert customer: %w", txErr)
		}

		billID, txErr = insertBill(ctx, tx, r.dialect,
			customerID, bill.ItemName, bill.Quantity, bill.Price, bill.Total)
		if txErr != nil {
			return fmt.Errorf("insert bill: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return 0, 0, storageErr("create customer with bill", err)
	}
	return customerID, billID, nil
}

// Close releases the database handle
func (r *Repository) Close() error {
	return r.db.Close()
}
