package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/thenoetrevino/billform/internal/models"
)

// CustomerRepo handles customer persistence
type CustomerRepo struct {
	db      *sql.DB
	dialect dialect
}

const insertCustomerSQL = `INSERT INTO customers (name, phone, email, address)
	VALUES (?, ?, ?, ?) RETURNING customer_id`

// Create inserts a customer and returns its generated ID.
// No validation happens here; callers are expected to have checked the fields.
func (r *CustomerRepo) Create(ctx context.Context, name, phone, email, address string) (int64, error) {
	id, err := insertCustomer(ctx, r.db, r.dialect, name, phone, email, address)
	if err != nil {
		return 0, storageErr("create customer", err)
	}
	return id, nil
}

// GetByID loads one customer
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	c := &models.Customer{}
	err := r.db.QueryRowContext(ctx,
		r.dialect.rebind(`SELECT customer_id, name, phone, email, address FROM customers WHERE customer_id = ?`),
		id,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storageErr("get customer", models.ErrCustomerNotFound)
	}
	if err != nil {
		return nil, storageErr("get customer", err)
	}
	return c, nil
}

func insertCustomer(ctx context.Context, q querier, d dialect, name, phone, email, address string) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, d.rebind(insertCustomerSQL),
		name, phone, email, address,
	).Scan(&id)
	return id, err
}
