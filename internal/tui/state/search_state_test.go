package state

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/models"
)

func TestSearchStateEditing(t *testing.T) {
	s := NewSearchState()

	for _, r := range "pén" {
		if !s.AppendChar(r) {
			t.Fatalf("AppendChar(%q) refused", r)
		}
	}
	if s.Query != "pén" {
		t.Fatalf("Query = %q, want %q", s.Query, "pén")
	}

	// Backspace removes a whole rune, not a byte
	if !s.Backspace() || s.Query != "pé" {
		t.Errorf("after Backspace Query = %q, want %q", s.Query, "pé")
	}

	s.Clear()
	if s.Backspace() {
		t.Error("Backspace on an empty query should report false")
	}
}

func TestSearchStateMaxLength(t *testing.T) {
	s := NewSearchState()
	s.Query = strings.Repeat("a", maxQueryLength)

	if s.AppendChar('b') {
		t.Error("AppendChar should refuse past the max length")
	}
}

func TestSearchStateActivate(t *testing.T) {
	s := NewSearchState()

	s.Activate()
	if s.IsActive {
		t.Error("an empty query should not activate the filter")
	}

	s.Query = "ann"
	s.Activate()
	if !s.IsActive {
		t.Error("Activate should keep a non-empty filter")
	}

	s.Clear()
	if s.IsActive || s.Query != "" {
		t.Errorf("Clear left %+v", s)
	}
}

func TestSearchStateFilter(t *testing.T) {
	rows := []models.BillRow{
		{BillID: 1, CustomerName: "Ann", ItemName: "Pen", Quantity: 3, Total: decimal.RequireFromString("7.5")},
		{BillID: 2, CustomerName: "Bob", ItemName: "Book", Quantity: 1, Total: decimal.RequireFromString("12")},
	}

	tests := []struct {
		query string
		want  []int64
	}{
		{"", []int64{1, 2}},
		{"BOB", []int64{2}},
		{"7.50", []int64{1}},
		{"o", []int64{2}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			s := &SearchState{Query: tt.query}
			got := s.Filter(rows)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) returned %d rows, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].BillID != id {
					t.Errorf("row %d = bill %d, want %d", i, got[i].BillID, id)
				}
			}
		})
	}
}
