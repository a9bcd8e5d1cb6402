package tui

import "github.com/thenoetrevino/billform/internal/models"

// Results of the service calls started by commands.go.
// Each one ends the in-flight operation.

type billsLoadedMsg struct {
	rows []models.BillRow
}

type billSavedMsg struct {
	billID  int64
	created bool
}

type billDeletedMsg struct {
	billID int64
}

// editLoadedMsg carries the stored bill to prefill the edit form
type editLoadedMsg struct {
	detail *models.BillDetail
}

type receiptLoadedMsg struct {
	detail *models.BillDetail
}

type exportedMsg struct {
	path string
	rows int
}

type errMsg struct {
	err error
}
