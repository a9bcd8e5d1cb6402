package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/models"
)

// BillRepo handles bill persistence and the joined listing
type BillRepo struct {
	db      *sql.DB
	dialect dialect
}

const insertBillSQL = `INSERT INTO bills (customer_id, item_name, quantity, price, total)
	VALUES (?, ?, ?, ?, ?) RETURNING bill_id`

// Create inserts a bill linked to customerID and returns its generated ID.
// A customerID with no customer row fails on the foreign key.
func (r *BillRepo) Create(ctx context.Context, customerID int64, itemName string, quantity int, price, total decimal.Decimal) (int64, error) {
	id, err := insertBill(ctx, r.db, r.dialect, customerID, itemName, quantity, price, total)
	if err != nil {
		return 0, storageErr("create bill", err)
	}
	return id, nil
}

// List returns every bill joined with its customer's name, ordered by bill ID.
// The result is never nil.
func (r *BillRepo) List(ctx context.Context) ([]models.BillRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT b.bill_id, c.name, b.item_name, b.quantity, b.total
		FROM bills b
		INNER JOIN customers c ON c.customer_id = b.customer_id
		ORDER BY b.bill_id`)
	if err != nil {
		return nil, storageErr("list bills", err)
	}
	defer rows.Close()

	bills := make([]models.BillRow, 0)
	for rows.Next() {
		var row models.BillRow
		if err := rows.Scan(&row.BillID, &row.CustomerName, &row.ItemName, &row.Quantity, &row.Total); err != nil {
			return nil, storageErr("list bills", err)
		}
		bills = append(bills, row)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("list bills", err)
	}
	return bills, nil
}

// GetDetail loads one bill together with its full customer record
func (r *BillRepo) GetDetail(ctx context.Context, id int64) (*models.BillDetail, error) {
	d := &models.BillDetail{}
	err := r.db.QueryRowContext(ctx, r.dialect.rebind(`
		SELECT b.bill_id, b.customer_id, b.item_name, b.quantity, b.price, b.total,
			c.customer_id, c.name, c.phone, c.email, c.address
		FROM bills b
		INNER JOIN customers c ON c.customer_id = b.customer_id
		WHERE b.bill_id = ?`), id,
	).Scan(
		&d.ID, &d.CustomerID, &d.ItemName, &d.Quantity, &d.Price, &d.Total,
		&d.Customer.ID, &d.Customer.Name, &d.Customer.Phone, &d.Customer.Email, &d.Customer.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storageErr("get bill", ErrBillNotFound)
	}
	if err != nil {
		return nil, storageErr("get bill", err)
	}
	return d, nil
}

// Update replaces the mutable fields of a bill.
// The owning customer is never changed.
func (r *BillRepo) Update(ctx context.Context, id int64, itemName string, quantity int, price, total decimal.Decimal) error {
	result, err := r.db.ExecContext(ctx, r.dialect.rebind(`
		UPDATE bills SET item_name = ?, quantity = ?, price = ?, total = ?
		WHERE bill_id = ?`),
		itemName, quantity, money(price), money(total), id,
	)
	if err != nil {
		return storageErr("update bill", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageErr("update bill", err)
	}
	if affected == 0 {
		return storageErr("update bill", ErrBillNotFound)
	}
	return nil
}

// Delete removes a bill. Deleting an ID that does not exist is a no-op.
func (r *BillRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, r.dialect.rebind(`DELETE FROM bills WHERE bill_id = ?`), id)
	return storageErr("delete bill", err)
}

func insertBill(ctx context.Context, q querier, d dialect, customerID int64, itemName string, quantity int, price, total decimal.Decimal) (int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, d.rebind(insertBillSQL),
		customerID, itemName, quantity, money(price), money(total),
	).Scan(&id)
	return id, err
}

// money renders an amount the way it is stored: fixed two decimals as text
func money(d decimal.Decimal) string {
	return d.StringFixed(models.MoneyPlaces)
}
