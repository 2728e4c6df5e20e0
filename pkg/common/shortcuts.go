package common

import (
	"shipfive/pkg/wizard"

	"github.com/charmbracelet/bubbles/key"
)

// ShortcutOverlay manages the display of contextual shortcuts
type ShortcutOverlay struct {
	keyMap    *GlobalKeyMap
	screen    wizard.Screen
	modalOpen bool
}

// NewShortcutOverlay creates a new shortcut overlay
func NewShortcutOverlay(keyMap *GlobalKeyMap) *ShortcutOverlay {
	return &ShortcutOverlay{
		keyMap: keyMap,
		screen: wizard.ScreenWelcome,
	}
}

// SetContext updates the screen and dialog state shortcuts are chosen for.
func (s *ShortcutOverlay) SetContext(screen wizard.Screen, modalOpen bool) {
	s.screen = screen
	s.modalOpen = modalOpen
}

// GetContextualShortcuts returns shortcuts relevant to current context
func (s *ShortcutOverlay) GetContextualShortcuts() []key.Binding {
	shortcuts := []key.Binding{}

	switch {
	case s.modalOpen:
		shortcuts = append(shortcuts, s.keyMap.Close)
	case s.screen == wizard.ScreenDayOne:
		shortcuts = append(shortcuts,
			s.keyMap.Toggle,
			s.keyMap.Up,
			s.keyMap.Down,
			s.keyMap.CompleteDay1,
		)
	default:
		shortcuts = append(shortcuts, s.continueBinding())
	}

	// Always show global shortcuts
	shortcuts = append(shortcuts, s.keyMap.Quit, s.keyMap.Keybindings)
	return shortcuts
}

// continueBinding relabels Enter with the button it presses on this screen.
func (s *ShortcutOverlay) continueBinding() key.Binding {
	label := "continue"
	switch s.screen {
	case wizard.ScreenWelcome:
		label = "begin"
	case wizard.ScreenOnboardingStep1:
		label = "next"
	case wizard.ScreenOnboardingStep2:
		label = "start day 1"
	}
	b := s.keyMap.Continue
	b.SetHelp(b.Help().Key, label)
	return b
}

// FormatShortcuts formats the shortcuts for display
func (s *ShortcutOverlay) FormatShortcuts() []Shortcut {
	bindings := s.GetContextualShortcuts()
	shortcuts := make([]Shortcut, 0, len(bindings))

	for _, binding := range bindings {
		if binding.Enabled() {
			shortcuts = append(shortcuts, Shortcut{
				Key:         binding.Help().Key,
				Description: binding.Help().Desc,
				IsGlobal:    s.isGlobalKey(binding),
			})
		}
	}

	return shortcuts
}

// isGlobalKey checks if a keybinding is global
func (s *ShortcutOverlay) isGlobalKey(binding key.Binding) bool {
	helpKey := binding.Help().Key
	return helpKey == s.keyMap.Quit.Help().Key || helpKey == s.keyMap.Keybindings.Help().Key
}

// Shortcut represents a keyboard shortcut with its description
type Shortcut struct {
	Key         string
	Description string
	IsGlobal    bool
}

// AllShortcuts returns all available shortcuts for the help dialog
func AllShortcuts(keyMap *GlobalKeyMap) map[string][]Shortcut {
	sections := keyMap.GetHelpSections()
	result := make(map[string][]Shortcut)

	for sectionName, bindings := range sections {
		shortcuts := make([]Shortcut, 0, len(bindings))
		for _, binding := range bindings {
			shortcuts = append(shortcuts, Shortcut{
				Key:         binding.Help().Key,
				Description: binding.Help().Desc,
				IsGlobal:    binding.Help().Key == keyMap.Quit.Help().Key || binding.Help().Key == keyMap.Keybindings.Help().Key,
			})
		}
		result[sectionName] = shortcuts
	}

	return result
}
