// Package wizard implements the onboarding flow: welcome, two onboarding
// steps, then the Day 1 checklist. Every intent that touches persisted
// fields writes the full record through to the progress adapter.
package wizard

import (
	"fmt"
	"sync"

	"shipfive/pkg/progress"

	"go.uber.org/zap"
)

// Persister is the slice of progress.Adapter the machine depends on.
type Persister interface {
	Load() progress.Record
	Save(progress.Record)
}

// Snapshot is an immutable copy of the machine state for renderers.
type Snapshot struct {
	Screen    Screen
	ModalOpen bool
	Record    progress.Record
}

// Progress renders the checklist counter, e.g. "2/4 defined".
func (s Snapshot) Progress() string {
	return fmt.Sprintf("%d/%d defined", s.Record.Checklist.Completed(), s.Record.Checklist.Total())
}

// Machine owns the session state and the in-memory copy of the record.
// Intents are serialized by mu, so each runs to completion before the next.
type Machine struct {
	mu        sync.Mutex
	persister Persister
	logger    *zap.Logger
	snap      Snapshot

	// OnChange, if set, is called with the new snapshot after every
	// intent that applied. It runs outside the lock.
	OnChange func(Snapshot)
}

// NewMachine returns a machine in the pre-hydration state: Welcome screen,
// modal closed, default record. Call Initialize to restore stored progress.
func NewMachine(persister Persister, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{
		persister: persister,
		logger:    logger.Named("wizard"),
		snap: Snapshot{
			Screen: ScreenWelcome,
			Record: progress.DefaultRecord(),
		},
	}
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// apply runs fn under the lock. fn returns whether the intent applied and
// whether the record must be persisted.
func (m *Machine) apply(intent string, fn func(s *Snapshot) (applied, persist bool)) bool {
	m.mu.Lock()
	next := m.snap
	applied, persist := fn(&next)
	if !applied {
		screen := m.snap.Screen
		m.mu.Unlock()
		m.logger.Debug("intent ignored", zap.String("intent", intent), zap.Stringer("screen", screen))
		return false
	}
	m.snap = next
	if persist {
		m.persister.Save(next.Record)
	}
	m.mu.Unlock()

	m.logger.Debug("intent applied",
		zap.String("intent", intent),
		zap.Stringer("screen", next.Screen),
		zap.Bool("modalOpen", next.ModalOpen))
	if m.OnChange != nil {
		m.OnChange(next)
	}
	return true
}

// Initialize loads the stored record and picks the starting screen:
// DayOne if onboarding was completed before, OnboardingStep1 otherwise.
func (m *Machine) Initialize() {
	record := m.persister.Load()
	m.apply("initialize", func(s *Snapshot) (bool, bool) {
		s.Record = record
		s.ModalOpen = false
		if record.OnboardingComplete {
			s.Screen = ScreenDayOne
		} else {
			s.Screen = ScreenOnboardingStep1
		}
		return true, false
	})
}

// Begin leaves the welcome screen.
func (m *Machine) Begin() bool {
	return m.apply("begin", func(s *Snapshot) (bool, bool) {
		if s.Screen != ScreenWelcome {
			return false, false
		}
		s.Screen = ScreenOnboardingStep1
		return true, false
	})
}

// OnboardingNext moves from the first onboarding step to the second.
func (m *Machine) OnboardingNext() bool {
	return m.apply("onboardingNext", func(s *Snapshot) (bool, bool) {
		if s.Screen != ScreenOnboardingStep1 {
			return false, false
		}
		s.Screen = ScreenOnboardingStep2
		return true, false
	})
}

// CompleteOnboarding marks onboarding done and opens the Day 1 screen.
func (m *Machine) CompleteOnboarding() bool {
	return m.apply("completeOnboarding", func(s *Snapshot) (bool, bool) {
		if s.Screen != ScreenOnboardingStep2 {
			return false, false
		}
		s.Record.OnboardingComplete = true
		s.Screen = ScreenDayOne
		return true, true
	})
}

// ToggleChecklistItem flips one checklist flag. Only allowed on DayOne.
func (m *Machine) ToggleChecklistItem(key progress.ChecklistKey) bool {
	return m.apply("toggleChecklistItem", func(s *Snapshot) (bool, bool) {
		if s.Screen != ScreenDayOne {
			return false, false
		}
		if !s.Record.Checklist.Toggle(key) {
			return false, false
		}
		return true, true
	})
}

// CompleteDay1 force-checks every item, marks the day complete and opens
// the completion modal. Completion does not require the boxes to have
// been checked first.
func (m *Machine) CompleteDay1() bool {
	return m.apply("completeDay1", func(s *Snapshot) (bool, bool) {
		if s.Screen != ScreenDayOne {
			return false, false
		}
		s.Record.Checklist = progress.All()
		s.Record.Day1Complete = true
		s.ModalOpen = true
		return true, true
	})
}

// CloseModal dismisses the completion modal.
func (m *Machine) CloseModal() bool {
	return m.apply("closeModal", func(s *Snapshot) (bool, bool) {
		if !s.ModalOpen {
			return false, false
		}
		s.ModalOpen = false
		return true, false
	})
}
