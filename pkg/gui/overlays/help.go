package overlays

import (
	"strings"

	"shipfive/pkg/common"
	"shipfive/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
)

// HelpDialog represents a help overlay showing all shortcuts
type HelpDialog struct {
	keyMap  *common.GlobalKeyMap
	palette theme.Palette
}

// NewHelpDialog creates a new help dialog
func NewHelpDialog(keyMap *common.GlobalKeyMap) *HelpDialog {
	return &HelpDialog{keyMap: keyMap, palette: theme.Light}
}

// SetPalette switches the dialog colors.
func (h *HelpDialog) SetPalette(p theme.Palette) {
	h.palette = p
}

// View renders the help dialog content
func (h *HelpDialog) View() string {
	p := h.palette
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Brand)).MarginBottom(1)
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Text)).MarginTop(1)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Cursor))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextMuted))
	footerStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(p.TextMuted)).MarginTop(1)

	var content []string
	content = append(content, titleStyle.Render("Ship in Five Days - Keybindings"))

	shortcuts := common.AllShortcuts(h.keyMap)
	for _, section := range common.HelpSectionOrder {
		items, ok := shortcuts[section]
		if !ok {
			continue
		}
		content = append(content, sectionStyle.Render(section))
		for _, shortcut := range items {
			content = append(content, "  "+keyStyle.Render(padRight(shortcut.Key, 10))+descStyle.Render(shortcut.Description))
		}
	}

	content = append(content, "", footerStyle.Render("Press any key to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(1, 2).
		MaxWidth(65).
		Render(strings.Join(content, "\n"))
}

// padRight pads a string to the right with spaces
func padRight(s string, length int) string {
	if w := lipgloss.Width(s); w < length {
		return s + strings.Repeat(" ", length-w)
	}
	return s
}
