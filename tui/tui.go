package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navpanel/tui/theme"
	"github.com/muesli/termenv"
)

// InitializeTUI prepares the terminal environment for the panel.
// It checks for environment variables that force color output (`CLICOLOR_FORCE`,
// `COLORTERM`) and sets the appropriate lipgloss color profile when present.
// NO_COLOR wins over both.
func InitializeTUI() {
	switch {
	case os.Getenv("NO_COLOR") != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// ApplyAppearance selects the default theme and glyph set.
func ApplyAppearance(themeName, icons string) {
	theme.SetDefault(themeName)
	theme.UseASCIIIcons(icons == "ascii")
}
