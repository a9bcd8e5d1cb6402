package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/thenoetrevino/billform/internal/tui/huhforms"
	"github.com/thenoetrevino/billform/internal/tui/state"
)

// openForm builds the bill form over the current form state and shows it
func (m Model) openForm() (tea.Model, tea.Cmd) {
	form := huhforms.CreateBillForm(m.formState).
		WithTheme(huhforms.CreateBillformTheme(m.cfg.ColorScheme))
	if w := m.uiState.Width(); w > 0 {
		form = form.WithWidth(min(w, 80))
	}
	m.formState.SetForm(form)
	m.uiState.SetMode(state.BillFormMode)
	return m, form.Init()
}

// updateBillForm forwards messages to the bill form and saves on completion
func (m Model) updateBillForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.formState.Form()
	if form == nil {
		m.uiState.SetMode(state.TableMode)
		return m, nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		form = f
		m.formState.SetForm(f)
	}

	switch form.State {
	case huh.StateCompleted:
		m.uiState.SetMode(state.TableMode)
		if !m.formState.Confirm {
			m.formState.Reset()
			return m, nil
		}
		return m.saveForm()
	case huh.StateAborted:
		m.uiState.SetMode(state.TableMode)
		if m.formState.HasChanges() {
			m.notificationState.Warn("Changes discarded")
		}
		m.formState.Reset()
		return m, nil
	}

	return m, cmd
}

// saveForm submits a new bill or the edited one.
// Parse errors are reported like any other failure.
func (m Model) saveForm() (tea.Model, tea.Cmd) {
	defer m.formState.Reset()
	m.uiState.SetMode(state.TableMode)

	if !m.startOp() {
		return m, nil
	}

	if m.formState.IsEditing() {
		req, err := m.formState.UpdateRequest()
		if err != nil {
			m.uiState.SetBusy(false)
			m.notificationState.Error(err)
			return m, nil
		}
		return m, m.updateBillCmd(req)
	}

	req, err := m.formState.SubmitRequest()
	if err != nil {
		m.uiState.SetBusy(false)
		m.notificationState.Error(err)
		return m, nil
	}
	return m, m.submitBillCmd(req)
}

// updateDeleteConfirm forwards messages to the confirmation form
func (m Model) updateDeleteConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.deleteState.Form()
	if form == nil {
		m.uiState.SetMode(state.TableMode)
		return m, nil
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		form = f
		m.deleteState.SetForm(f)
	}

	switch form.State {
	case huh.StateCompleted, huh.StateAborted:
		m.uiState.SetMode(state.TableMode)
		confirmed := form.State == huh.StateCompleted && m.deleteState.Confirm
		billID := m.deleteState.BillID
		m.deleteState.Clear()
		if !confirmed || !m.startOp() {
			return m, nil
		}
		return m, m.deleteBillCmd(billID)
	}

	return m, cmd
}
