// Package theme holds the TUI colors, initialized from the configured scheme
package theme

import "github.com/thenoetrevino/billform/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight string
	Title     string
	Subtle    string
	Normal    string
	InfoFg    string
	InfoBg    string
	WarningFg string
	WarningBg string
	ErrorFg   string
	ErrorBg   string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Title = colors.Title
	Subtle = colors.Subtle
	Normal = colors.Normal
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
