package overlays

import (
	"strings"

	"shipfive/pkg/gui/icons"
	"shipfive/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CompletionDialog is shown after Day 1 is marked complete.
type CompletionDialog struct {
	palette theme.Palette
}

// NewCompletionDialog creates a new completion dialog
func NewCompletionDialog() *CompletionDialog {
	return &CompletionDialog{palette: theme.Light}
}

// SetPalette switches the dialog colors.
func (d *CompletionDialog) SetPalette(p theme.Palette) {
	d.palette = p
}

// View renders the dialog box
func (d *CompletionDialog) View() string {
	p := d.palette

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Checked))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextMuted)).MarginTop(1)
	buttonStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.ButtonFg)).
		Background(lipgloss.Color(p.ButtonBg)).
		Padding(0, 3)

	content := strings.Join([]string{
		titleStyle.Render(icons.Done.Get() + " Day 1 Complete."),
		descStyle.Render("Tomorrow: Build the structure."),
		"",
		lipgloss.NewStyle().Width(40).Align(lipgloss.Right).Render(buttonStyle.Render("Close")),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(1, 2).
		Render(content)
}
