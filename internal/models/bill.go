package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Bill is one line-item transaction tied to a customer
type Bill struct {
	ID         int64
	CustomerID int64
	ItemName   string
	Quantity   int
	Price      decimal.Decimal // unit price
	Total      decimal.Decimal // expected Quantity * Price, not enforced by the store
}

// BillRow is a bill joined with its owning customer's name.
// This is the shape rendered by the bill table and written by exports.
type BillRow struct {
	BillID       int64
	CustomerName string
	ItemName     string
	Quantity     int
	Total        decimal.Decimal
}

// BillDetail is a bill together with its full customer record
// Used by the edit flow and the receipt view
type BillDetail struct {
	Bill
	Customer Customer
}

// Row collapses a detail into its listing shape
func (d *BillDetail) Row() BillRow {
	return BillRow{
		BillID:       d.ID,
		CustomerName: d.Customer.Name,
		ItemName:     d.ItemName,
		Quantity:     d.Quantity,
		Total:        d.Total,
	}
}

// Cells returns the row as display text, in BillRowHeader order
func (r BillRow) Cells() []string {
	return []string{
		strconv.FormatInt(r.BillID, 10),
		r.CustomerName,
		r.ItemName,
		strconv.Itoa(r.Quantity),
		r.Total.StringFixed(MoneyPlaces),
	}
}
