package icons

import (
	"os"
	"strings"
)

// Icon represents an icon with Nerd Font and fallback options
type Icon struct {
	NerdFont string
	Fallback string
}

// Icons used by the checklist and dialogs
var (
	Checked = Icon{
		NerdFont: "\U000f0132", // Nerd Font checkbox marked
		Fallback: "[x]",
	}

	Unchecked = Icon{
		NerdFont: "\U000f0131", // Nerd Font checkbox blank
		Fallback: "[ ]",
	}

	Cursor = Icon{
		NerdFont: "\ue0b0", // Nerd Font right arrow
		Fallback: "▶",
	}

	Done = Icon{
		NerdFont: "\uf00c", // Nerd Font check mark
		Fallback: "✓",
	}
)

var useNerdFonts *bool

// SetNerdFonts manually overrides Nerd Font detection
func SetNerdFonts(enabled bool) {
	useNerdFonts = &enabled
}

// ResetNerdFonts drops any override so the next lookup detects again.
func ResetNerdFonts() {
	useNerdFonts = nil
}

// hasNerdFonts detects if Nerd Fonts are likely available
func hasNerdFonts() bool {
	if useNerdFonts != nil {
		return *useNerdFonts
	}

	termProgram := strings.ToLower(os.Getenv("TERM_PROGRAM"))
	term := strings.ToLower(os.Getenv("TERM"))

	nerdFontTerms := []string{
		"alacritty", "kitty", "wezterm", "iterm", "hyper", "ghostty",
	}

	result := false
	for _, nfTerm := range nerdFontTerms {
		if strings.Contains(termProgram, nfTerm) || strings.Contains(term, nfTerm) {
			result = true
			break
		}
	}

	useNerdFonts = &result
	return result
}

// Get returns the appropriate icon string based on Nerd Font availability
func (i Icon) Get() string {
	if hasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}
