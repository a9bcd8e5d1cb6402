package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/billform/internal/receipt"
	"github.com/thenoetrevino/billform/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)

	// Banners come and go with most messages; refit the table around them
	if updated, ok := model.(Model); ok {
		updated.resize()
		return updated, cmd
	}
	return model, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWindowSize(msg.Width, msg.Height)
		m.resize()
		if f := m.formState.Form(); f != nil {
			m.formState.SetForm(f.WithWidth(min(msg.Width, 80)))
		}
		return m, nil

	case billsLoadedMsg:
		m.uiState.SetBusy(false)
		// a successful reload makes earlier storage errors stale
		m.notificationState.ClearLevel(state.LevelError)
		m.rows = msg.rows
		m.applyFilter()
		return m, nil

	case billSavedMsg:
		if msg.created {
			m.notificationState.Info("Bill %d recorded", msg.billID)
		} else {
			m.notificationState.Info("Bill %d updated", msg.billID)
		}
		return m, m.loadBillsCmd()

	case billDeletedMsg:
		m.notificationState.Info("Bill %d deleted", msg.billID)
		return m, m.loadBillsCmd()

	case editLoadedMsg:
		m.uiState.SetBusy(false)
		m.formState.LoadBill(msg.detail)
		return m.openForm()

	case receiptLoadedMsg:
		m.uiState.SetBusy(false)
		m.receipt.SetContent(receipt.Render(msg.detail, m.uiState.Width()))
		m.receipt.GotoTop()
		m.uiState.SetMode(state.ReceiptMode)
		return m, nil

	case exportedMsg:
		m.uiState.SetBusy(false)
		m.notificationState.Info("Exported %d bills to %s", msg.rows, msg.path)
		return m, nil

	case errMsg:
		m.uiState.SetBusy(false)
		slog.Error("operation failed", "error", msg.err)
		m.notificationState.Error(msg.err)
		return m, nil
	}

	// Forms receive every message, not just keys
	switch m.uiState.Mode() {
	case state.BillFormMode:
		return m.updateBillForm(msg)
	case state.DeleteConfirmMode:
		return m.updateDeleteConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.SearchMode:
		return m.updateSearch(keyMsg)
	case state.ReceiptMode:
		return m.updateReceipt(keyMsg)
	case state.HelpMode:
		m.uiState.SetMode(state.TableMode)
		return m, nil
	default:
		return m.updateTable(keyMsg)
	}
}

// startOp marks a service call as in flight, refusing if one already is
func (m *Model) startOp() bool {
	if m.uiState.Busy() {
		m.notificationState.Warn("Another operation is still running")
		return false
	}
	m.uiState.SetBusy(true)
	return true
}

// rowLabel describes a row for prompts
func rowLabel(itemName, customerName string) string {
	return fmt.Sprintf("'%s' for %s", itemName, customerName)
}
