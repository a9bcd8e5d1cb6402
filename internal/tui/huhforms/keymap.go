package huhforms

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
)

// CreateKeyMapWithEscape creates the default keymap with esc added to the
// abort keys, so esc leaves a form without saving.
func CreateKeyMapWithEscape() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)

	return keymap
}
