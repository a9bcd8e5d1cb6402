// Package bill holds the billing business rules: field validation, total
// computation and the atomic customer-plus-bill submit.
package bill

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/database"
	"github.com/thenoetrevino/billform/internal/models"
)

// Service defines all bill-related business operations
type Service interface {
	// Read operations
	List(ctx context.Context) ([]models.BillRow, error)
	Get(ctx context.Context, billID int64) (*models.BillDetail, error)

	// Write operations
	Submit(ctx context.Context, req SubmitRequest) (*models.Bill, error)
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (int64, error)
	CreateBill(ctx context.Context, req CreateBillRequest) (*models.Bill, error)
	Update(ctx context.Context, req UpdateRequest) error
	Delete(ctx context.Context, billID int64) error
}

// CreateCustomerRequest encapsulates the customer half of the form
type CreateCustomerRequest struct {
	Name    string
	Phone   string
	Email   string
	Address string // optional
}

// CreateBillRequest encapsulates a bill for an existing customer
type CreateBillRequest struct {
	CustomerID int64
	ItemName   string
	Quantity   int
	Price      decimal.Decimal
	Total      *decimal.Decimal // nil means Quantity * Price
}

// SubmitRequest is one full form submission: a new customer and their bill
type SubmitRequest struct {
	CreateCustomerRequest
	ItemName string
	Quantity int
	Price    decimal.Decimal
	Total    *decimal.Decimal // nil means Quantity * Price
}

// UpdateRequest replaces the mutable fields of an existing bill
type UpdateRequest struct {
	BillID   int64
	ItemName string
	Quantity int
	Price    decimal.Decimal
	Total    *decimal.Decimal // nil means Quantity * Price
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	logger *slog.Logger
}

// NewService creates a new bill service. A nil logger uses slog.Default().
func NewService(repo database.DataStore, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// Submit validates a form submission and stores the customer and bill in
// one transaction
func (s *service) Submit(ctx context.Context, req SubmitRequest) (*models.Bill, error) {
	customer := normalizeCustomer(req.CreateCustomerRequest)
	if err := validateCustomer(customer.Name, customer.Phone, customer.Email); err != nil {
		return nil, err
	}

	itemName := strings.TrimSpace(req.ItemName)
	total, err := validateItem(itemName, req.Quantity, req.Price, req.Total)
	if err != nil {
		return nil, err
	}

	b := models.Bill{
		ItemName: itemName,
		Quantity: req.Quantity,
		Price:    req.Price,
		Total:    total,
	}

	customerID, billID, err := s.repo.CreateCustomerWithBill(ctx, customer, b)
	if err != nil {
		s.logger.Error("submit failed", "customer", customer.Name, "error", err)
		return nil, fmt.Errorf("failed to submit bill: %w", err)
	}

	b.ID = billID
	b.CustomerID = customerID
	s.logger.Info("bill submitted", "bill_id", billID, "customer_id", customerID)
	return &b, nil
}

// CreateCustomer validates and stores a customer on its own
func (s *service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (int64, error) {
	c := normalizeCustomer(req)
	if err := validateCustomer(c.Name, c.Phone, c.Email); err != nil {
		return 0, err
	}

	id, err := s.repo.CreateCustomer(ctx, c.Name, c.Phone, c.Email, c.Address)
	if err != nil {
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created", "customer_id", id)
	return id, nil
}

// CreateBill validates and stores a bill for an existing customer
func (s *service) CreateBill(ctx context.Context, req CreateBillRequest) (*models.Bill, error) {
	if req.CustomerID <= 0 {
		return nil, ErrInvalidCustomer
	}

	itemName := strings.TrimSpace(req.ItemName)
	total, err := validateItem(itemName, req.Quantity, req.Price, req.Total)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateBill(ctx, req.CustomerID, itemName, req.Quantity, req.Price, total)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	s.logger.Info("bill created", "bill_id", id, "customer_id", req.CustomerID)
	return &models.Bill{
		ID:         id,
		CustomerID: req.CustomerID,
		ItemName:   itemName,
		Quantity:   req.Quantity,
		Price:      req.Price,
		Total:      total,
	}, nil
}

// List returns every bill with its customer's name, ordered by bill ID
func (s *service) List(ctx context.Context) ([]models.BillRow, error) {
	rows, err := s.repo.ListBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return rows, nil
}

// Get retrieves one bill with its full customer record
func (s *service) Get(ctx context.Context, billID int64) (*models.BillDetail, error) {
	if billID <= 0 {
		return nil, ErrInvalidBillID
	}

	detail, err := s.repo.GetBill(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bill %d: %w", billID, err)
	}
	return detail, nil
}

// Update validates and applies new values for a bill's mutable fields
func (s *service) Update(ctx context.Context, req UpdateRequest) error {
	if req.BillID <= 0 {
		return ErrInvalidBillID
	}

	itemName := strings.TrimSpace(req.ItemName)
	total, err := validateItem(itemName, req.Quantity, req.Price, req.Total)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateBill(ctx, req.BillID, itemName, req.Quantity, req.Price, total); err != nil {
		return fmt.Errorf("failed to update bill %d: %w", req.BillID, err)
	}

	s.logger.Info("bill updated", "bill_id", req.BillID)
	return nil
}

// Delete removes a bill. A missing bill is not an error.
func (s *service) Delete(ctx context.Context, billID int64) error {
	if billID <= 0 {
		return ErrInvalidBillID
	}

	if err := s.repo.DeleteBill(ctx, billID); err != nil {
		return fmt.Errorf("failed to delete bill %d: %w", billID, err)
	}

	s.logger.Info("bill deleted", "bill_id", billID)
	return nil
}

func normalizeCustomer(req CreateCustomerRequest) models.Customer {
	return models.Customer{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Address: strings.TrimSpace(req.Address),
	}
}
