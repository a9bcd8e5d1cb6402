package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{ErrBillNotFound, "bill not found"},
		{ErrCustomerNotFound, "customer not found"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Error message = %q, want %q", tt.err.Error(), tt.expectedMessage)
		}
	}

	if errors.Is(ErrBillNotFound, ErrCustomerNotFound) {
		t.Error("ErrBillNotFound should not match ErrCustomerNotFound")
	}
}

// ============================================================================
// BillRow Tests
// ============================================================================

func sampleRow() BillRow {
	return BillRow{
		BillID:       7,
		CustomerName: "Asha Rao",
		ItemName:     "Pen",
		Quantity:     10,
		Total:        decimal.RequireFromString("25"),
	}
}

func TestBillRow_Cells(t *testing.T) {
	cells := sampleRow().Cells()
	want := []string{"7", "Asha Rao", "Pen", "10", "25.00"}

	if len(cells) != len(BillRowHeader) {
		t.Fatalf("Cells() returned %d cells, want %d", len(cells), len(BillRowHeader))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, cells[i], want[i])
		}
	}
}

func TestBillDetail_Row(t *testing.T) {
	detail := &BillDetail{
		Bill: Bill{
			ID:       3,
			ItemName: "Ink",
			Quantity: 2,
			Price:    decimal.RequireFromString("1.25"),
			Total:    decimal.RequireFromString("2.50"),
		},
		Customer: Customer{ID: 1, Name: "Ravi"},
	}

	row := detail.Row()
	if row.BillID != 3 || row.CustomerName != "Ravi" || row.ItemName != "Ink" || row.Quantity != 2 {
		t.Errorf("Row() = %+v, fields not copied from detail", row)
	}
	if !row.Total.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("Row().Total = %s, want 2.50", row.Total)
	}
}

// ============================================================================
// Filter Tests
// ============================================================================

func TestFilterBillRows(t *testing.T) {
	rows := []BillRow{
		sampleRow(),
		{BillID: 8, CustomerName: "Meera", ItemName: "Notebook", Quantity: 1, Total: decimal.RequireFromString("40")},
	}

	tests := []struct {
		name   string
		search string
		want   []int64
	}{
		{"lowercase matches item", "pen", []int64{7}},
		{"uppercase matches item", "PEN", []int64{7}},
		{"matches customer name", "meera", []int64{8}},
		{"matches formatted total", "40.00", []int64{8}},
		{"matches bill id", "7", []int64{7}},
		{"no match", "xyz", nil},
		{"empty keeps all", "", []int64{7, 8}},
		{"whitespace keeps all", "   ", []int64{7, 8}},
		{"surrounding whitespace trimmed", "  note ", []int64{8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBillRows(rows, tt.search)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterBillRows(%q) returned %d rows, want %d", tt.search, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].BillID != id {
					t.Errorf("row %d has ID %d, want %d", i, got[i].BillID, id)
				}
			}
		})
	}
}

func TestFilterBillRows_EmptyInput(t *testing.T) {
	got := FilterBillRows(nil, "pen")
	if got == nil {
		t.Error("FilterBillRows(nil) returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("FilterBillRows(nil) returned %d rows, want 0", len(got))
	}
}
