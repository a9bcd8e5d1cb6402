package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/billform/internal/export"
	"github.com/thenoetrevino/billform/internal/models"
	billservice "github.com/thenoetrevino/billform/internal/services/bill"
)

// Every command below runs one service call and reports back with a message.
// The model sets busy before returning one and clears it on the result.

func (m Model) loadBillsCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		rows, err := svc.List(ctx)
		if err != nil {
			return errMsg{fmt.Errorf("failed to load bills: %w", err)}
		}
		return billsLoadedMsg{rows: rows}
	}
}

func (m Model) submitBillCmd(req billservice.SubmitRequest) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		b, err := svc.Submit(ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return billSavedMsg{billID: b.ID, created: true}
	}
}

func (m Model) updateBillCmd(req billservice.UpdateRequest) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		if err := svc.Update(ctx, req); err != nil {
			return errMsg{err}
		}
		return billSavedMsg{billID: req.BillID}
	}
}

func (m Model) deleteBillCmd(billID int64) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		if err := svc.Delete(ctx, billID); err != nil {
			return errMsg{err}
		}
		return billDeletedMsg{billID: billID}
	}
}

func (m Model) loadForEditCmd(billID int64) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		d, err := svc.Get(ctx, billID)
		if err != nil {
			return errMsg{err}
		}
		return editLoadedMsg{detail: d}
	}
}

func (m Model) loadReceiptCmd(billID int64) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		d, err := svc.Get(ctx, billID)
		if err != nil {
			return errMsg{err}
		}
		return receiptLoadedMsg{detail: d}
	}
}

// exportCmd writes a copy of rows, so later table changes cannot race the write
func (m Model) exportCmd(format export.Format) tea.Cmd {
	rows := append([]models.BillRow(nil), m.visible...)
	path := export.DefaultPath(m.cfg.Export.Dir, format)
	return func() tea.Msg {
		if err := export.ToFile(path, format, rows); err != nil {
			return errMsg{err}
		}
		slog.Info("bills exported", "path", path, "rows", len(rows))
		return exportedMsg{path: path, rows: len(rows)}
	}
}
