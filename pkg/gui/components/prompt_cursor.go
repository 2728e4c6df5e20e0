package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// BlinkingCursor is a simple on/off cursor spinner
var BlinkingCursor = spinner.Spinner{
	Frames: []string{"█", " "},
	FPS:    time.Millisecond * 500,
}

// PromptCursor renders a label followed by a blinking block cursor.
type PromptCursor struct {
	spinner spinner.Model
	label   string
}

// NewPromptCursor returns a prompt configured with the blinking cursor spinner.
func NewPromptCursor(label string) *PromptCursor {
	return &PromptCursor{
		spinner: spinner.New(spinner.WithSpinner(BlinkingCursor)),
		label:   label,
	}
}

// TickCmd starts the blink animation.
func (p *PromptCursor) TickCmd() tea.Cmd {
	if p == nil {
		return nil
	}
	return p.spinner.Tick
}

// Update advances the blink when receiving tick messages.
func (p *PromptCursor) Update(msg tea.Msg) tea.Cmd {
	if p == nil {
		return nil
	}

	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(tick)
		return cmd
	}
	return nil
}

// View renders the label and cursor.
func (p *PromptCursor) View() string {
	if p == nil {
		return ""
	}
	if p.label == "" {
		return p.spinner.View()
	}
	return p.label + " " + p.spinner.View()
}
