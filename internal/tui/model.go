// Package tui implements the interactive bill table: a bubbles table of
// bills, a huh form for entry and editing, search, export and receipts.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/billform/internal/config"
	"github.com/thenoetrevino/billform/internal/models"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
	"github.com/thenoetrevino/billform/internal/tui/state"
)

// columnWidths are the starting widths of the table columns, in
// models.BillRowHeader order
var columnWidths = []int{8, 24, 24, 10, 12}

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context
	svc billservice.Service
	cfg *config.Config

	keys keyMap
	help help.Model

	table   table.Model
	receipt viewport.Model

	// rows is every bill from the last load; visible is rows after the filter
	rows    []models.BillRow
	visible []models.BillRow

	uiState           *state.UIState
	formState         *state.FormState
	deleteState       *state.DeleteState
	searchState       *state.SearchState
	notificationState *state.NotificationState
}

// New creates the TUI model. ctx bounds every database call the model makes.
func New(ctx context.Context, svc billservice.Service, cfg *config.Config) Model {
	columns := make([]table.Column, len(models.BillRowHeader))
	for i, title := range models.BillRowHeader {
		columns[i] = table.Column{Title: title, Width: columnWidths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())

	return Model{
		ctx:               ctx,
		svc:               svc,
		cfg:               cfg,
		keys:              newKeyMap(cfg.KeyMappings),
		help:              help.New(),
		table:             t,
		receipt:           viewport.New(0, 0),
		rows:              []models.BillRow{},
		visible:           []models.BillRow{},
		uiState:           state.NewUIState(),
		formState:         state.NewFormState(),
		deleteState:       state.NewDeleteState(),
		searchState:       state.NewSearchState(),
		notificationState: state.NewNotificationState(),
	}
}

// Init loads the bill table
func (m Model) Init() tea.Cmd {
	m.uiState.SetBusy(true)
	return m.loadBillsCmd()
}

// applyFilter recomputes the visible rows and refreshes the table,
// keeping the cursor in range
func (m *Model) applyFilter() {
	m.visible = m.searchState.Filter(m.rows)

	rows := make([]table.Row, len(m.visible))
	for i, r := range m.visible {
		rows[i] = r.Cells()
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// selectedRow returns the bill under the cursor, if any
func (m Model) selectedRow() (models.BillRow, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.visible) {
		return models.BillRow{}, false
	}
	return m.visible[c], true
}

// resize fits the table and receipt to the terminal
func (m *Model) resize() {
	w, h := m.uiState.Width(), m.uiState.Height()
	if w == 0 {
		return
	}

	// title, search bar, status bar and help take 6 lines
	m.table.SetHeight(max(h-6-m.notificationHeight(), 3))
	m.table.SetWidth(w)
	m.help.Width = w

	m.receipt.Width = w
	m.receipt.Height = max(h-3, 1)
}
