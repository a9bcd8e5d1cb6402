package database

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/models"
)

// CustomerWriter defines write operations for customers.
type CustomerWriter interface {
	CreateCustomer(ctx context.Context, name, phone, email, address string) (int64, error)
}

// BillReader defines read operations for bills.
type BillReader interface {
	ListBills(ctx context.Context) ([]models.BillRow, error)
	GetBill(ctx context.Context, billID int64) (*models.BillDetail, error)
}

// BillWriter defines write operations for bills.
type BillWriter interface {
	CreateBill(ctx context.Context, customerID int64, itemName string, quantity int, price, total decimal.Decimal) (int64, error)
	UpdateBill(ctx context.Context, billID int64, itemName string, quantity int, price, total decimal.Decimal) error
	DeleteBill(ctx context.Context, billID int64) error
	CreateCustomerWithBill(ctx context.Context, customer models.Customer, bill models.Bill) (customerID, billID int64, err error)
}

// BillRepository combines all bill-related operations.
type BillRepository interface {
	BillReader
	BillWriter
}
