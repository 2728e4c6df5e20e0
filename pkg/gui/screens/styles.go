// Package screens renders the four wizard screens from a state snapshot.
// Rendering is pure: nothing here mutates state.
package screens

import (
	"strings"

	"shipfive/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// MaxContentWidth caps the text column on wide terminals.
const MaxContentWidth = 64

type styles struct {
	display lipgloss.Style
	title   lipgloss.Style
	body    lipgloss.Style
	muted   lipgloss.Style
	italic  lipgloss.Style
	button  lipgloss.Style
	rule    lipgloss.Style
	checked lipgloss.Style
	cursor  lipgloss.Style
	row     lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	return styles{
		display: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Brand)),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Text)),
		body:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.TextMuted)),
		italic:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(p.TextMuted)),
		button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.ButtonFg)).
			Background(lipgloss.Color(p.ButtonBg)).
			Padding(0, 3),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Separator)),
		checked: lipgloss.NewStyle().Foreground(lipgloss.Color(p.Checked)),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Cursor)),
		row:     lipgloss.NewStyle().Background(lipgloss.Color(p.HighlightBg)),
	}
}

// columnWidth returns the text column width for a terminal width.
func columnWidth(width int) int {
	w := width - 8
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

func wrap(s string, width int) string {
	return wordwrap.String(s, width)
}

func (s styles) separator(width int) string {
	return s.rule.Render(strings.Repeat("─", width))
}
