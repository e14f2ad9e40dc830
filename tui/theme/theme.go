package theme

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultThemeName = "kanagawa"

// --- Kanagawa Dragon (dark) palette ---
const (
	kanagawaDarkGreen              = "#98BB6C"
	kanagawaDarkYellow             = "#FF9E3B"
	kanagawaDarkRed                = "#FF5D62"
	kanagawaDarkOrange             = "#FFA066"
	kanagawaDarkCyan               = "#7E9CD8"
	kanagawaDarkViolet             = "#957FB8"
	kanagawaDarkLightText          = "#DCD7BA"
	kanagawaDarkMutedText          = "#727169"
	kanagawaDarkBorder             = "#363646"
	kanagawaDarkSelectedBackground = "#223249"
)

// --- Kanagawa Wave (light-inspired) palette ---
const (
	kanagawaLightGreen              = "#4E7C5A"
	kanagawaLightYellow             = "#A68A64"
	kanagawaLightRed                = "#C34043"
	kanagawaLightOrange             = "#CC6B4E"
	kanagawaLightCyan               = "#5B8BBE"
	kanagawaLightViolet             = "#674D7A"
	kanagawaLightLightText          = "#2B2F42"
	kanagawaLightMutedText          = "#6C7086"
	kanagawaLightBorder             = "#B5BDC5"
	kanagawaLightSelectedBackground = "#E2E6F3"
)

// --- Point-of-sale brand palette (teal cards on slate) ---
const (
	posDarkAccent              = "#2EC4B6"
	posLightAccent             = "#0F7C73"
	posDarkText                = "#E8EEF2"
	posLightText               = "#1B2A33"
	posDarkMuted               = "#7A8A94"
	posLightMuted              = "#6B7C86"
	posDarkBorder              = "#2F3E46"
	posLightBorder             = "#C9D6DC"
	posDarkSelectedBackground  = "#16403C"
	posLightSelectedBackground = "#D8F3F0"
)

// --- Terminal (ANSI-friendly) palette ---
const (
	terminalGreen              = "2"
	terminalYellow             = "3"
	terminalRed                = "1"
	terminalOrange             = "208"
	terminalCyan               = "6"
	terminalViolet             = "5"
	terminalLightText          = "7"
	terminalMutedText          = "8"
	terminalBorder             = "8"
	terminalSelectedBackground = "8"
)

// Colors encapsulates the palette used by a theme. lipgloss.TerminalColor
// allows a mix of adaptive and static colors.
type Colors struct {
	Green              lipgloss.TerminalColor
	Yellow             lipgloss.TerminalColor
	Red                lipgloss.TerminalColor
	Orange             lipgloss.TerminalColor
	Cyan               lipgloss.TerminalColor
	Violet             lipgloss.TerminalColor
	LightText          lipgloss.TerminalColor
	MutedText          lipgloss.TerminalColor
	Border             lipgloss.TerminalColor
	SelectedBackground lipgloss.TerminalColor
}

// Theme holds the pre-configured styles for the navigation panel and CLI.
type Theme struct {
	Name   string
	Colors Colors

	// Logo row at the top of the panel
	Header lipgloss.Style
	Title  lipgloss.Style

	// Module cards. The *Active variants are used for the active entry.
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	Icon        lipgloss.Style
	IconActive  lipgloss.Style
	Label       lipgloss.Style
	LabelActive lipgloss.Style
	FocusMarker lipgloss.Style
	PanelBorder lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Text styles
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
}

var themeRegistry = map[string]func() Colors{
	"kanagawa": newKanagawaColors,
	"pos":      newPOSColors,
	"terminal": newTerminalColors,
}

var themeAliases = map[string]string{
	"kanagawa-dark":   "kanagawa",
	"kanagawa-dragon": "kanagawa",
	"kanagawa-wave":   "kanagawa",
	"getpos":          "pos",
	"ansi":            "terminal",
}

// DefaultTheme is the theme used by components that are not handed one.
// NAVPANEL_THEME selects it at start-up; SetDefault replaces it.
var DefaultTheme = NewThemeWithName(os.Getenv("NAVPANEL_THEME"))

// SetDefault replaces DefaultTheme with the named palette.
func SetDefault(name string) {
	DefaultTheme = NewThemeWithName(name)
}

// Names returns the canonical theme names.
func Names() []string {
	return []string{"kanagawa", "pos", "terminal"}
}

// Known reports whether name (or one of its aliases) is a registered theme.
func Known(name string) bool {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	_, ok := themeRegistry[key]
	return ok
}

// NewThemeWithName constructs a theme from a specific palette name.
// Unknown or empty names fall back to the default palette.
func NewThemeWithName(name string) *Theme {
	key := resolveThemeName(name)
	return newThemeFromColors(themeRegistry[key](), key)
}

func newThemeFromColors(colors Colors, name string) *Theme {
	return &Theme{
		Name:   name,
		Colors: colors,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Orange).
			Padding(0, 1).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, 1),

		CardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Cyan).
			Background(colors.SelectedBackground).
			Padding(0, 1),

		Icon: lipgloss.NewStyle().
			Foreground(colors.MutedText),

		IconActive: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(colors.LightText),

		LabelActive: lipgloss.NewStyle().
			Foreground(colors.LightText).
			Bold(true),

		FocusMarker: lipgloss.NewStyle().
			Foreground(colors.Orange).
			Bold(true),

		PanelBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colors.Border),

		Success: lipgloss.NewStyle().
			Foreground(colors.Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(colors.Yellow).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(colors.Cyan).
			Bold(true),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Italic: lipgloss.NewStyle().
			Italic(true),

		Muted: lipgloss.NewStyle().
			Faint(true),

		Accent: lipgloss.NewStyle().
			Foreground(colors.Violet).
			Bold(true),
	}
}

func resolveThemeName(name string) string {
	key := normalizeThemeName(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	if _, ok := themeRegistry[key]; ok {
		return key
	}
	return defaultThemeName
}

func normalizeThemeName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return normalized
}

func newKanagawaColors() Colors {
	return Colors{
		Green:              lipgloss.AdaptiveColor{Light: kanagawaLightGreen, Dark: kanagawaDarkGreen},
		Yellow:             lipgloss.AdaptiveColor{Light: kanagawaLightYellow, Dark: kanagawaDarkYellow},
		Red:                lipgloss.AdaptiveColor{Light: kanagawaLightRed, Dark: kanagawaDarkRed},
		Orange:             lipgloss.AdaptiveColor{Light: kanagawaLightOrange, Dark: kanagawaDarkOrange},
		Cyan:               lipgloss.AdaptiveColor{Light: kanagawaLightCyan, Dark: kanagawaDarkCyan},
		Violet:             lipgloss.AdaptiveColor{Light: kanagawaLightViolet, Dark: kanagawaDarkViolet},
		LightText:          lipgloss.AdaptiveColor{Light: kanagawaLightLightText, Dark: kanagawaDarkLightText},
		MutedText:          lipgloss.AdaptiveColor{Light: kanagawaLightMutedText, Dark: kanagawaDarkMutedText},
		Border:             lipgloss.AdaptiveColor{Light: kanagawaLightBorder, Dark: kanagawaDarkBorder},
		SelectedBackground: lipgloss.AdaptiveColor{Light: kanagawaLightSelectedBackground, Dark: kanagawaDarkSelectedBackground},
	}
}

// newPOSColors shares status colors with kanagawa and swaps the card palette.
func newPOSColors() Colors {
	c := newKanagawaColors()
	c.Cyan = lipgloss.AdaptiveColor{Light: posLightAccent, Dark: posDarkAccent}
	c.LightText = lipgloss.AdaptiveColor{Light: posLightText, Dark: posDarkText}
	c.MutedText = lipgloss.AdaptiveColor{Light: posLightMuted, Dark: posDarkMuted}
	c.Border = lipgloss.AdaptiveColor{Light: posLightBorder, Dark: posDarkBorder}
	c.SelectedBackground = lipgloss.AdaptiveColor{Light: posLightSelectedBackground, Dark: posDarkSelectedBackground}
	return c
}

func newTerminalColors() Colors {
	return Colors{
		Green:              lipgloss.Color(terminalGreen),
		Yellow:             lipgloss.Color(terminalYellow),
		Red:                lipgloss.Color(terminalRed),
		Orange:             lipgloss.Color(terminalOrange),
		Cyan:               lipgloss.Color(terminalCyan),
		Violet:             lipgloss.Color(terminalViolet),
		LightText:          lipgloss.Color(terminalLightText),
		MutedText:          lipgloss.Color(terminalMutedText),
		Border:             lipgloss.Color(terminalBorder),
		SelectedBackground: lipgloss.Color(terminalSelectedBackground),
	}
}
