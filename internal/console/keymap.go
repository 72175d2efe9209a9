package console

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/astrolab/internal/config"
)

// NewKeyMap builds the huh keymap from the configured key mappings.
// Both the quit and the back key abort a form; the prompter decides whether
// an abort leaves the application or returns to the main menu.
func NewKeyMap(km config.KeyMappings) *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Quit = key.NewBinding(
		key.WithKeys(km.Quit, km.Back),
		key.WithHelp(km.Back, "back"),
	)

	keymap.Select.Up = key.NewBinding(
		key.WithKeys("up", km.Up),
		key.WithHelp("↑/"+km.Up, "up"),
	)
	keymap.Select.Down = key.NewBinding(
		key.WithKeys("down", km.Down),
		key.WithHelp("↓/"+km.Down, "down"),
	)
	keymap.Select.Submit = key.NewBinding(
		key.WithKeys(km.Submit),
		key.WithHelp(km.Submit, "select"),
	)

	keymap.Input.Next = key.NewBinding(
		key.WithKeys(km.Submit, km.Next),
		key.WithHelp(km.Submit, "next"),
	)
	keymap.Input.Prev = key.NewBinding(
		key.WithKeys(km.Prev),
		key.WithHelp(km.Prev, "back"),
	)
	keymap.Input.Submit = key.NewBinding(
		key.WithKeys(km.Submit),
		key.WithHelp(km.Submit, "submit"),
	)

	return keymap
}
