package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/billform/internal/export"
	"github.com/thenoetrevino/billform/internal/tui/huhforms"
	"github.com/thenoetrevino/billform/internal/tui/state"
)

// updateTable handles keys while browsing the bill table
func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Banners last until the next key press
	m.notificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.uiState.Busy() {
			m.notificationState.Warn("Another operation is still running")
			return m, nil
		}
		m.formState.Reset()
		return m.openForm()

	case key.Matches(msg, m.keys.Edit):
		row, ok := m.selectedRow()
		if !ok {
			m.notificationState.Warn("Select a bill to edit first")
			return m, nil
		}
		if !m.startOp() {
			return m, nil
		}
		return m, m.loadForEditCmd(row.BillID)

	case key.Matches(msg, m.keys.Delete):
		row, ok := m.selectedRow()
		if !ok {
			m.notificationState.Warn("Select a bill to delete first")
			return m, nil
		}
		if m.uiState.Busy() {
			m.notificationState.Warn("Another operation is still running")
			return m, nil
		}
		m.deleteState.Start(row.BillID, rowLabel(row.ItemName, row.CustomerName))
		form := huhforms.CreateDeleteConfirmForm(m.deleteState).
			WithTheme(huhforms.CreateBillformTheme(m.cfg.ColorScheme))
		m.deleteState.SetForm(form)
		m.uiState.SetMode(state.DeleteConfirmMode)
		return m, form.Init()

	case key.Matches(msg, m.keys.View):
		row, ok := m.selectedRow()
		if !ok {
			m.notificationState.Warn("Select a bill to view first")
			return m, nil
		}
		if !m.startOp() {
			return m, nil
		}
		return m, m.loadReceiptCmd(row.BillID)

	case key.Matches(msg, m.keys.Refresh):
		if !m.startOp() {
			return m, nil
		}
		return m, m.loadBillsCmd()

	case key.Matches(msg, m.keys.Search):
		m.uiState.SetMode(state.SearchMode)
		return m, nil

	case key.Matches(msg, m.keys.ClearFilt):
		if m.searchState.IsActive {
			m.searchState.Clear()
			m.applyFilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.ExportCSV):
		return m.startExport(export.FormatCSV)

	case key.Matches(msg, m.keys.ExportPDF):
		return m.startExport(export.FormatPDF)
	}

	// Everything else moves the cursor
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) startExport(format export.Format) (tea.Model, tea.Cmd) {
	if len(m.visible) == 0 {
		m.notificationState.Warn("There are no bills to export")
		return m, nil
	}
	if !m.startOp() {
		return m, nil
	}
	return m, m.exportCmd(format)
}

// updateReceipt scrolls the receipt; esc, q or enter return to the table
func (m Model) updateReceipt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.uiState.SetMode(state.TableMode)
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.receipt, cmd = m.receipt.Update(msg)
	return m, cmd
}
