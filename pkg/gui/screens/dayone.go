package screens

import (
	"strings"

	"shipfive/pkg/gui/icons"
	"shipfive/pkg/gui/theme"
	"shipfive/pkg/wizard"

	"github.com/charmbracelet/lipgloss"
)

// DayOne renders the checklist screen with the row cursor at cursor.
func DayOne(p theme.Palette, width int, snap wizard.Snapshot, cursor int) string {
	s := newStyles(p)
	col := columnWidth(width)

	lines := []string{
		s.title.Render("DAY 1 — DEFINE"),
		s.muted.Render("Set the direction for your template."),
		"",
		s.separator(col),
		"",
	}

	for i, item := range wizard.Items() {
		lines = append(lines, checklistRow(s, col, item, snap.Record.Checklist.Get(item.Key), i == cursor))
	}

	lines = append(lines,
		"",
		s.separator(col),
		"",
		s.muted.Render(snap.Progress()),
		"",
		s.button.Render("Mark Day 1 Complete"),
	)

	return lipgloss.NewStyle().Width(col).Render(strings.Join(lines, "\n"))
}

func checklistRow(s styles, col int, item wizard.Item, checked, selected bool) string {
	box := icons.Unchecked.Get()
	if checked {
		box = s.checked.Render(icons.Checked.Get())
	}

	marker := "  "
	if selected {
		marker = s.cursor.Render(icons.Cursor.Get()) + " "
	}

	prefix := marker + box + " "
	text := wrap(item.Label+" "+s.muted.Render("("+item.Hint+")"), col-lipgloss.Width(prefix))
	row := lipgloss.JoinHorizontal(lipgloss.Top, prefix, s.body.Render(text))
	if selected {
		row = s.row.Render(row)
	}
	return row
}
