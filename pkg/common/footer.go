package common

import (
	"strings"

	"shipfive/pkg/gui/theme"
	"shipfive/pkg/wizard"

	"github.com/charmbracelet/lipgloss"
)

// Footer manages the bottom footer bar with keyboard shortcuts
type Footer struct {
	width           int
	palette         theme.Palette
	shortcutOverlay *ShortcutOverlay
}

// NewFooter creates a new footer component
func NewFooter(overlay *ShortcutOverlay) *Footer {
	return &Footer{
		palette:         theme.Light,
		shortcutOverlay: overlay,
	}
}

// SetWidth updates the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetPalette switches the footer colors.
func (f *Footer) SetPalette(p theme.Palette) {
	f.palette = p
}

// SetContext forwards the current screen to the shortcut overlay.
func (f *Footer) SetContext(screen wizard.Screen, modalOpen bool) {
	f.shortcutOverlay.SetContext(screen, modalOpen)
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 {
		return ""
	}

	shortcuts := f.shortcutOverlay.FormatShortcuts()
	if len(shortcuts) == 0 {
		return ""
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(f.palette.Text))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(f.palette.Text))
	globalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(f.palette.TextMuted))
	separatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(f.palette.Separator))

	var contextual, global []string
	for _, s := range shortcuts {
		if s.IsGlobal {
			global = append(global, globalStyle.Bold(true).Render(s.Key)+" "+globalStyle.Render(s.Description))
		} else {
			contextual = append(contextual, keyStyle.Render(s.Key)+" "+descStyle.Render(s.Description))
		}
	}

	dot := separatorStyle.Render(" • ")
	content := strings.Join(contextual, dot)
	if len(contextual) > 0 && len(global) > 0 {
		content += separatorStyle.Render(" │ ")
	}
	content += strings.Join(global, dot)

	return lipgloss.NewStyle().
		Padding(0, 1).
		Width(f.width).
		Align(lipgloss.Center).
		Render(content)
}
