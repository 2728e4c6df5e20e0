package gui

import (
	"strings"
	"testing"

	"shipfive/pkg/gui/theme"
	"shipfive/pkg/progress"
	"shipfive/pkg/wizard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const stateKey = "shipfive-state"

func newTestModel(t *testing.T, seed *progress.Record) (Model, *wizard.Machine, *progress.Adapter) {
	t.Helper()
	adapter := progress.NewAdapter(progress.NewMemoryStore(), stateKey, nil)
	if seed != nil {
		adapter.Save(*seed)
	}
	machine := wizard.NewMachine(adapter, nil)
	m := NewModel(machine, WithSystemPalette(theme.Dark))

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), machine, adapter
}

func hydrate(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.hydrate()()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestFreshRunWalksThroughOnboardingToDayOne(t *testing.T) {
	m, machine, adapter := newTestModel(t, nil)

	if got := machine.Snapshot().Screen; got != wizard.ScreenWelcome {
		t.Fatalf("pre-hydration screen = %s want welcome", got)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "SHIP IN FIVE DAYS") {
		t.Fatalf("expected welcome screen, got:\n%s", view)
	}

	m = hydrate(t, m)
	if got := machine.Snapshot().Screen; got != wizard.ScreenOnboardingStep1 {
		t.Fatalf("screen after hydrate = %s want onboarding1", got)
	}

	m = press(t, m, "enter")
	if got := machine.Snapshot().Screen; got != wizard.ScreenOnboardingStep2 {
		t.Fatalf("screen = %s want onboarding2", got)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Trust the process.") {
		t.Fatalf("expected step 2 copy, got:\n%s", view)
	}

	m = press(t, m, "enter")
	if got := machine.Snapshot().Screen; got != wizard.ScreenDayOne {
		t.Fatalf("screen = %s want dayOne", got)
	}
	if !adapter.Load().OnboardingComplete {
		t.Fatalf("expected onboardingComplete to be persisted")
	}
}

func TestBeginFromWelcome(t *testing.T) {
	m, machine, _ := newTestModel(t, nil)

	press(t, m, "enter")
	if got := machine.Snapshot().Screen; got != wizard.ScreenOnboardingStep1 {
		t.Fatalf("screen = %s want onboarding1", got)
	}
}

func TestChecklistKeysToggleAndComplete(t *testing.T) {
	m, machine, adapter := newTestModel(t, &progress.Record{OnboardingComplete: true})
	m = hydrate(t, m)

	m = press(t, m, " ")
	if !adapter.Load().Checklist.Category {
		t.Fatalf("expected space to toggle the first row")
	}

	m = press(t, m, "down", "down", "x")
	if !adapter.Load().Checklist.HeroSketch {
		t.Fatalf("expected x to toggle the third row")
	}

	m = press(t, m, "4")
	if !adapter.Load().Checklist.Typography {
		t.Fatalf("expected 4 to toggle typography")
	}
	if m.cursor != 3 {
		t.Fatalf("cursor = %d want 3", m.cursor)
	}

	if view := ansi.Strip(m.View()); !strings.Contains(view, "3/4 defined") {
		t.Fatalf("expected progress counter, got:\n%s", view)
	}

	m = press(t, m, "c")
	snap := machine.Snapshot()
	if !snap.ModalOpen || !snap.Record.Day1Complete {
		t.Fatalf("expected day 1 complete with modal open, got %+v", snap)
	}
	if snap.Record.Checklist != progress.All() {
		t.Fatalf("expected every flag set, got %+v", snap.Record.Checklist)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Tomorrow: Build the structure.") {
		t.Fatalf("expected completion dialog, got:\n%s", view)
	}

	// Checklist keys are swallowed while the dialog is open.
	m = press(t, m, " ")
	if machine.Snapshot().Record.Checklist != progress.All() {
		t.Fatalf("toggle must not apply behind the dialog")
	}

	m = press(t, m, "esc")
	if machine.Snapshot().ModalOpen {
		t.Fatalf("expected esc to close the dialog")
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	m, _, _ := newTestModel(t, &progress.Record{OnboardingComplete: true})
	m = hydrate(t, m)

	m = press(t, m, "up")
	if m.cursor != 0 {
		t.Fatalf("cursor = %d want 0", m.cursor)
	}
	m = press(t, m, "down", "down", "down", "down", "down")
	if m.cursor != len(wizard.Items())-1 {
		t.Fatalf("cursor = %d want %d", m.cursor, len(wizard.Items())-1)
	}
}

func TestCompletedUserLandsOnDayOne(t *testing.T) {
	m, machine, _ := newTestModel(t, &progress.Record{OnboardingComplete: true, Checklist: progress.All(), Day1Complete: true})
	m = hydrate(t, m)

	if got := machine.Snapshot().Screen; got != wizard.ScreenDayOne {
		t.Fatalf("screen = %s want dayOne", got)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "4/4 defined") {
		t.Fatalf("expected full checklist, got:\n%s", view)
	}
}

func TestHelpDialogClosesOnAnyKey(t *testing.T) {
	m, machine, _ := newTestModel(t, nil)
	m = hydrate(t, m)

	m = press(t, m, "?")
	if !m.showHelp {
		t.Fatalf("expected help dialog")
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Keybindings") {
		t.Fatalf("expected help content, got:\n%s", view)
	}

	m = press(t, m, "enter")
	if m.showHelp {
		t.Fatalf("expected help dialog to close")
	}
	if got := machine.Snapshot().Screen; got != wizard.ScreenOnboardingStep1 {
		t.Fatalf("closing help must not advance the flow, screen = %s", got)
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestViewBeforeWindowSize(t *testing.T) {
	adapter := progress.NewAdapter(nil, stateKey, nil)
	m := NewModel(wizard.NewMachine(adapter, nil), WithSystemPalette(theme.Dark))
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q want Loading...", got)
	}
}
