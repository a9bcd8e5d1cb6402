// Package notifications renders the info, warning and error banners
package notifications

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/thenoetrevino/billform/internal/tui/state"
)

// minWidth keeps very narrow terminals from collapsing the banner
const minWidth = 20

// Render renders a notification banner based on severity level.
// Messages longer than width are wrapped; width <= 0 disables wrapping.
func Render(severity Severity, message string, width int) string {
	style := severity.style()

	// Border (2) and padding (2) take 4 columns
	if width > 0 {
		message = wordwrap.String(message, max(width-4, minWidth))
	}

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderFromState renders a notification banner from a state.Notification
func RenderFromState(n state.Notification, width int) string {
	switch n.Level {
	case state.LevelWarning:
		return Render(Warning, n.Message, width)
	case state.LevelError:
		return Render(Error, n.Message, width)
	default:
		return Render(Info, n.Message, width)
	}
}
