package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/thenoetrevino/billform/internal/config"
)

// keyMap holds the table-mode bindings, built from the configured key mappings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	View      key.Binding
	Refresh   key.Binding
	Search    key.Binding
	ExportCSV key.Binding
	ExportPDF key.Binding
	ClearFilt key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		New:       key.NewBinding(key.WithKeys(km.NewBill), key.WithHelp(km.NewBill, "new bill")),
		Edit:      key.NewBinding(key.WithKeys(km.EditBill), key.WithHelp(km.EditBill, "edit")),
		Delete:    key.NewBinding(key.WithKeys(km.DeleteBill), key.WithHelp(km.DeleteBill, "delete")),
		View:      key.NewBinding(key.WithKeys(km.ViewBill), key.WithHelp(km.ViewBill, "receipt")),
		Refresh:   key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "reload")),
		Search:    key.NewBinding(key.WithKeys(km.Search), key.WithHelp(km.Search, "search")),
		ExportCSV: key.NewBinding(key.WithKeys(km.ExportCSV), key.WithHelp(km.ExportCSV, "export csv")),
		ExportPDF: key.NewBinding(key.WithKeys(km.ExportPDF), key.WithHelp(km.ExportPDF, "export pdf")),
		ClearFilt: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
		Help:      key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:      key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Delete, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.View, k.Refresh},
		{k.New, k.Edit, k.Delete},
		{k.Search, k.ClearFilt, k.ExportCSV, k.ExportPDF},
		{k.Help, k.Quit},
	}
}
