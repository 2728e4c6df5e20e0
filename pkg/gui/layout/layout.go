package layout

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	TopPaddingRows   = 1
	FooterRows       = 1
	BottomMarginRows = 1
	HorizontalMargin = 2
)

// Layout manages the screen regions for the UI
type Layout struct {
	width  int
	height int

	bodyWidth  int
	bodyHeight int
}

// NewLayout creates a new layout with the given terminal dimensions
func NewLayout(width, height int) *Layout {
	l := &Layout{
		width:  width,
		height: height,
	}
	l.calculate()
	return l
}

// Update recalculates the layout for new terminal dimensions
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

func (l *Layout) calculate() {
	l.bodyWidth = max(l.width-2*HorizontalMargin, 0)
	l.bodyHeight = max(l.height-TopPaddingRows-FooterRows-BottomMarginRows, 0)
}

// Render centers content in the body region and puts footer at the bottom.
func (l *Layout) Render(content, footer string) string {
	body := lipgloss.Place(l.bodyWidth, l.bodyHeight, lipgloss.Center, lipgloss.Center, content)
	body = lipgloss.NewStyle().
		PaddingTop(TopPaddingRows).
		PaddingLeft(HorizontalMargin).
		PaddingRight(HorizontalMargin).
		Render(body)

	footerLine := lipgloss.PlaceHorizontal(l.width, lipgloss.Center, footer)
	components := []string{body, footerLine}
	for i := 0; i < BottomMarginRows; i++ {
		components = append(components, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// RenderDialog centers a dialog over the whole screen.
func (l *Layout) RenderDialog(dialog string) string {
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, dialog)
}

// GetWidth returns the terminal width
func (l *Layout) GetWidth() int {
	return l.width
}

// GetHeight returns the terminal height
func (l *Layout) GetHeight() int {
	return l.height
}

// GetBodyWidth returns the width available to screen content
func (l *Layout) GetBodyWidth() int {
	return l.bodyWidth
}
