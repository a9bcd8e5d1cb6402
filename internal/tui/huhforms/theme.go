package huhforms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/thenoetrevino/billform/internal/config"
)

// CreateBillformTheme creates a huh theme matching the configured color scheme
func CreateBillformTheme(colorScheme config.ColorScheme) *huh.Theme {
	t := huh.ThemeBase()

	accent := lipgloss.Color(colorScheme.Accent)
	subtle := lipgloss.Color(colorScheme.Subtle)
	normal := lipgloss.Color(colorScheme.Normal)
	title := lipgloss.Color(colorScheme.Title)
	errorColor := lipgloss.Color(colorScheme.ErrorFg)

	// Focused field styles
	t.Focused.Base = t.Focused.Base.BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(title).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(subtle)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accent).
		Bold(true)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(normal).
		Background(subtle)

	// TextInput styles
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(accent)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(subtle)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)

	// Blurred field styles (inherit from focused but with hidden border)
	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

	return t
}
