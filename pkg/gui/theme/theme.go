// Package theme holds the color palettes used by the screens.
package theme

import "github.com/muesli/termenv"

// Palette defines all colors used throughout the application with semantic naming.
type Palette struct {
	Brand       string // headline and accent color
	Text        string // body text
	TextMuted   string // hints, counters, supporting copy
	Border      string // dialog borders
	Separator   string // horizontal rules
	Checked     string // checked checklist boxes
	Cursor      string // row cursor highlight
	ButtonFg    string // primary button text
	ButtonBg    string // primary button background
	HighlightBg string // highlighted row background
}

// Light is the warm-beige palette used on the welcome screen.
var Light = Palette{
	Brand:       "#3d3226",
	Text:        "#2b2b2b",
	TextMuted:   "#7a6f63",
	Border:      "#b8a894",
	Separator:   "#d6cbbb",
	Checked:     "#4f7a4a",
	Cursor:      "#8a5a2b",
	ButtonFg:    "#f5efe6",
	ButtonBg:    "#3d3226",
	HighlightBg: "#ebe2d4",
}

// Dark is used on dark terminals once the welcome screen is left.
var Dark = Palette{
	Brand:       "#e8dccb",
	Text:        "#ffffff",
	TextMuted:   "#7a7a7a",
	Border:      "#7a7a7a",
	Separator:   "#4a4a4a",
	Checked:     "#50fa7b",
	Cursor:      "#ffb86c",
	ButtonFg:    "#282a36",
	ButtonBg:    "#e8dccb",
	HighlightBg: "#525252",
}

var hasDarkBackground = termenv.HasDarkBackground

// System returns the palette matching the terminal background.
func System() Palette {
	if hasDarkBackground() {
		return Dark
	}
	return Light
}
