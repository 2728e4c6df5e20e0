package screens

import (
	"strings"

	"shipfive/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Welcome renders the first screen. prompt is the blinking "press enter"
// line supplied by the caller.
func Welcome(p theme.Palette, width int, prompt string) string {
	s := newStyles(p)
	col := columnWidth(width)

	lines := []string{
		s.display.Render("SHIP IN FIVE DAYS"),
		"",
		s.muted.Render(wrap("A simple system to finish your Framer template.", col)),
		"",
		s.button.Render("Begin"),
	}
	if prompt != "" {
		lines = append(lines, "", s.muted.Render(prompt))
	}

	return lipgloss.NewStyle().
		Width(col).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
