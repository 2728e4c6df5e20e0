package screens

import (
	"fmt"
	"strings"

	"shipfive/pkg/gui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Onboarding renders step 1 or 2 of the onboarding sequence.
func Onboarding(p theme.Palette, width, step int) string {
	s := newStyles(p)
	col := columnWidth(width)

	indicator := lipgloss.NewStyle().
		Width(col).
		Align(lipgloss.Right).
		Render(s.muted.Render(fmt.Sprintf("%d/2", step)))

	var lines []string
	switch step {
	case 1:
		lines = []string{
			s.title.Render("You don't need motivation."),
			"",
			s.muted.Render(wrap("You need a path. This system breaks your week into five focused days so you can ship instead of overthinking.", col)),
			"",
			s.button.Render("Next"),
		}
	default:
		lines = []string{
			s.title.Render("Trust the process."),
			"",
			s.muted.Render(wrap("For the next five days, this app will tell you what to focus on. Your only job is to show up and follow it.", col)),
			"",
			s.italic.Render(wrap("By starting, you commit to 5 focused days.", col)),
			"",
			s.button.Render("Start Day 1"),
		}
	}

	body := lipgloss.NewStyle().Width(col).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, indicator, "", body)
}
