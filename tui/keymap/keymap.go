package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the navigation panel keybindings. It satisfies help.KeyMap.
type KeyMap struct {
	// Focus cursor movement; the active entry does not change
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding // gg sequence
	Bottom key.Binding // G

	// Selection
	Select key.Binding
	Jump   key.Binding // 1-9 select the nth entry

	Help key.Binding
	Quit key.Binding
}

// Default returns the vim-style panel keymap.
func Default() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("gg", "home"),
			key.WithHelp("gg", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "select nth"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Load returns the default keymap with the configured overrides applied.
// Override keys are the snake_case field names: up, down, top, bottom,
// select, jump, help, quit.
func Load(overrides map[string][]string) KeyMap {
	km := Default()
	ApplyOverrides(&km, overrides)
	return km
}

// Actions returns the override keys Load understands.
func Actions() []string {
	return fieldKeys(&KeyMap{})
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped into help columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Select, k.Jump},
		{k.Help, k.Quit},
	}
}

// Sequences returns the bindings that may span more than one key press.
func (k KeyMap) Sequences() []key.Binding {
	return []key.Binding{k.Top}
}
