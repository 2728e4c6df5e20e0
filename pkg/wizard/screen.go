package wizard

// Screen is the view the user is currently on.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenOnboardingStep1
	ScreenOnboardingStep2
	ScreenDayOne
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenOnboardingStep1:
		return "onboarding1"
	case ScreenOnboardingStep2:
		return "onboarding2"
	case ScreenDayOne:
		return "dayOne"
	default:
		return "unknown"
	}
}

// OnboardingStep returns 1 or 2 on the onboarding screens and 0 elsewhere.
func (s Screen) OnboardingStep() int {
	switch s {
	case ScreenOnboardingStep1:
		return 1
	case ScreenOnboardingStep2:
		return 2
	}
	return 0
}
