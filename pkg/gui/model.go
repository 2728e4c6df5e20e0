// Package gui is the Bubble Tea front end. It renders the wizard snapshot
// and forwards key presses to the state machine as intents.
package gui

import (
	"shipfive/pkg/common"
	"shipfive/pkg/gui/components"
	"shipfive/pkg/gui/layout"
	"shipfive/pkg/gui/overlays"
	"shipfive/pkg/gui/screens"
	"shipfive/pkg/gui/theme"
	"shipfive/pkg/wizard"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// HydratedMsg is sent once stored progress has been loaded.
type HydratedMsg struct{}

// Model is the root tea.Model.
type Model struct {
	machine          *wizard.Machine
	layout           *layout.Layout
	keyMap           *common.GlobalKeyMap
	footer           *common.Footer
	helpDialog       *overlays.HelpDialog
	completionDialog *overlays.CompletionDialog
	prompt           *components.PromptCursor
	systemPalette    theme.Palette
	logger           *zap.Logger

	ready    bool // Whether the first WindowSizeMsg arrived
	hydrated bool // Whether Initialize has run
	showHelp bool
	cursor   int // Selected checklist row on Day 1
}

// Option configures a Model.
type Option func(*Model)

// WithSystemPalette overrides the palette used after the welcome screen.
func WithSystemPalette(p theme.Palette) Option {
	return func(m *Model) { m.systemPalette = p }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// NewModel wraps a machine that has not been initialized yet.
func NewModel(machine *wizard.Machine, opts ...Option) Model {
	keyMap := common.GlobalKeys
	m := Model{
		machine:          machine,
		layout:           layout.NewLayout(0, 0),
		keyMap:           keyMap,
		footer:           common.NewFooter(common.NewShortcutOverlay(keyMap)),
		helpDialog:       overlays.NewHelpDialog(keyMap),
		completionDialog: overlays.NewCompletionDialog(),
		prompt:           components.NewPromptCursor("press enter to begin"),
		logger:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.systemPalette == (theme.Palette{}) {
		m.systemPalette = theme.System()
	}
	return m
}

// Init starts the cursor blink and loads stored progress.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.prompt.TickCmd(), m.hydrate())
}

func (m Model) hydrate() tea.Cmd {
	machine := m.machine
	return func() tea.Msg {
		machine.Initialize()
		return HydratedMsg{}
	}
}

// palette is light on the welcome screen and follows the terminal after.
func (m Model) palette(screen wizard.Screen) theme.Palette {
	if screen == wizard.ScreenWelcome {
		return theme.Light
	}
	return m.systemPalette
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.footer.SetWidth(msg.Width)
		m.ready = true
		return m, nil

	case HydratedMsg:
		m.hydrated = true
		m.cursor = 0
		m.logger.Info("progress restored", zap.Stringer("screen", m.machine.Snapshot().Screen))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.prompt.Update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	// If help dialog is visible, any key closes it
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if key.Matches(msg, m.keyMap.Keybindings) {
		m.showHelp = true
		return m, nil
	}

	snap := m.machine.Snapshot()
	if snap.ModalOpen {
		if key.Matches(msg, m.keyMap.Close) {
			m.machine.CloseModal()
		}
		return m, nil
	}

	switch snap.Screen {
	case wizard.ScreenWelcome:
		if key.Matches(msg, m.keyMap.Continue) {
			m.machine.Begin()
		}
	case wizard.ScreenOnboardingStep1:
		if key.Matches(msg, m.keyMap.Continue) {
			m.machine.OnboardingNext()
		}
	case wizard.ScreenOnboardingStep2:
		if key.Matches(msg, m.keyMap.Continue) {
			m.machine.CompleteOnboarding()
		}
	case wizard.ScreenDayOne:
		m.handleChecklistKey(msg)
	}
	return m, nil
}

func (m *Model) handleChecklistKey(msg tea.KeyMsg) {
	items := wizard.Items()

	switch {
	case key.Matches(msg, m.keyMap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keyMap.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keyMap.Toggle):
		m.machine.ToggleChecklistItem(items[m.cursor].Key)
	case key.Matches(msg, m.keyMap.ToggleItem):
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(items) {
			m.cursor = idx
			m.machine.ToggleChecklistItem(items[idx].Key)
		}
	case key.Matches(msg, m.keyMap.CompleteDay1):
		m.machine.CompleteDay1()
	}
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	snap := m.machine.Snapshot()
	p := m.palette(snap.Screen)
	width := m.layout.GetBodyWidth()

	var content string
	switch snap.Screen {
	case wizard.ScreenWelcome:
		content = screens.Welcome(p, width, m.prompt.View())
	case wizard.ScreenOnboardingStep1, wizard.ScreenOnboardingStep2:
		content = screens.Onboarding(p, width, snap.Screen.OnboardingStep())
	case wizard.ScreenDayOne:
		content = screens.DayOne(p, width, snap, m.cursor)
	}

	if m.showHelp {
		m.helpDialog.SetPalette(p)
		return m.layout.RenderDialog(m.helpDialog.View())
	}
	if snap.ModalOpen {
		m.completionDialog.SetPalette(p)
		return m.layout.RenderDialog(m.completionDialog.View())
	}

	m.footer.SetPalette(p)
	m.footer.SetContext(snap.Screen, snap.ModalOpen)
	return m.layout.Render(content, m.footer.View())
}
