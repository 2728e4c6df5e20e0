package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines the keybindings for every screen. Which ones are
// live depends on the screen; ShortcutOverlay decides what to advertise.
type GlobalKeyMap struct {
	// Truly global keys - work from any screen
	Quit        key.Binding // q, Ctrl+C - quit application
	Keybindings key.Binding // ? - show help

	// Flow
	Continue key.Binding // Enter - Begin / Next / Start Day 1

	// Day 1 checklist
	Up           key.Binding // ↑, k - move cursor up
	Down         key.Binding // ↓, j - move cursor down
	Toggle       key.Binding // space, x - toggle item under cursor
	ToggleItem   key.Binding // 1-4 - toggle item directly
	CompleteDay1 key.Binding // c - mark Day 1 complete

	// Dialog actions
	Close key.Binding // Enter, Esc - close the completion dialog
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Keybindings: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keybindings"),
		),

		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "continue"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle item"),
		),
		ToggleItem: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "toggle item n"),
		),
		CompleteDay1: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "mark day 1 complete"),
		),

		Close: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("↵/esc", "close"),
		),
	}
}

// GlobalKeys is the shared keymap used by the UI.
var GlobalKeys = NewGlobalKeyMap()

// ShortHelp returns a slice of key bindings to show in the short help view
func (k *GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Keybindings,
		k.Quit,
	}
}

// FullHelp returns a slice of key bindings to show in the full help view
func (k *GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Keybindings},
		{k.Continue},
		{k.Up, k.Down, k.Toggle, k.ToggleItem, k.CompleteDay1},
		{k.Close},
	}
}

// HelpSectionOrder is the order sections appear in the keybindings dialog.
var HelpSectionOrder = []string{"Global", "Onboarding", "Day 1 Checklist", "Dialogs"}

// GetHelpSections returns help sections with categorized keybindings
func (k *GlobalKeyMap) GetHelpSections() map[string][]key.Binding {
	return map[string][]key.Binding{
		"Global": {
			k.Quit,
			k.Keybindings,
		},
		"Onboarding": {
			k.Continue,
		},
		"Day 1 Checklist": {
			k.Up,
			k.Down,
			k.Toggle,
			k.ToggleItem,
			k.CompleteDay1,
		},
		"Dialogs": {
			k.Close,
		},
	}
}
