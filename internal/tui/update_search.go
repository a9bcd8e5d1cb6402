package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/billform/internal/tui/state"
)

// updateSearch edits the query; the table filters as it changes.
// enter keeps the filter, esc clears it.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchState.Clear()
		m.uiState.SetMode(state.TableMode)
	case tea.KeyEnter:
		m.searchState.Activate()
		m.uiState.SetMode(state.TableMode)
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyBackspace:
		if !m.searchState.Backspace() {
			return m, nil
		}
	case tea.KeySpace:
		m.searchState.AppendChar(' ')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.searchState.AppendChar(r)
		}
	default:
		return m, nil
	}

	m.applyFilter()
	return m, nil
}
