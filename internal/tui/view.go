package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/billform/internal/tui/notifications"
	"github.com/thenoetrevino/billform/internal/tui/state"
)

// View renders the current mode
func (m Model) View() string {
	switch m.uiState.Mode() {
	case state.BillFormMode:
		if f := m.formState.Form(); f != nil {
			return m.frame(f.View())
		}
	case state.DeleteConfirmMode:
		if f := m.deleteState.Form(); f != nil {
			return m.frame(lipgloss.JoinVertical(lipgloss.Left, m.table.View(), "", f.View()))
		}
	case state.ReceiptMode:
		return m.frame(m.receipt.View() + "\n" + subtleStyle().Render("esc back • ↑/↓ scroll"))
	case state.HelpMode:
		return m.frame(m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" + subtleStyle().Render("press any key to return"))
	}

	var b strings.Builder
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.searchBar())
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	if n := m.renderNotifications(); n != "" {
		b.WriteString("\n")
		b.WriteString(n)
	}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return m.frame(b.String())
}

// frame puts the title above content
func (m Model) frame(content string) string {
	return titleStyle().Render("billform") + "\n" + content
}

func (m Model) searchBar() string {
	switch {
	case m.uiState.Mode() == state.SearchMode:
		return searchStyle().Render("/" + m.searchState.Query + "█")
	case m.searchState.IsActive:
		return searchStyle().Render("filter: " + m.searchState.Query)
	default:
		return ""
	}
}

func (m Model) statusBar() string {
	status := fmt.Sprintf("%s  %d of %d bills", m.uiState.Mode(), len(m.visible), len(m.rows))
	if m.uiState.Busy() {
		status += "  working..."
	}
	return statusStyle().Render(status)
}

func (m Model) renderNotifications() string {
	if !m.notificationState.HasAny() {
		return ""
	}
	all := m.notificationState.All()
	banners := make([]string, len(all))
	for i, n := range all {
		banners[i] = notifications.RenderFromState(n, m.uiState.Width())
	}
	return lipgloss.JoinVertical(lipgloss.Left, banners...)
}

// notificationHeight is the number of lines the banners take
func (m Model) notificationHeight() int {
	n := m.renderNotifications()
	if n == "" {
		return 0
	}
	return lipgloss.Height(n)
}
