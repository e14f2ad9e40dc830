package sidenav

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navpanel/nav"
	"github.com/grovetools/navpanel/tui/theme"
	"github.com/mattn/go-runewidth"
)

// IconRenderer returns the glyph drawn for an entry.
type IconRenderer func(e nav.Entry) string

// DefaultIconRenderer resolves the entry's icon descriptor, or its name when
// the descriptor is empty, through the theme icon registry.
func DefaultIconRenderer(e nav.Entry) string {
	descriptor := e.Icon
	if descriptor == "" {
		descriptor = e.Name
	}
	return theme.Glyph(descriptor)
}

// Options controls how entries are drawn.
type Options struct {
	Theme *theme.Theme
	// Width is the outer width of a card, borders included.
	Width int
	Icons IconRenderer
	// Focus is the index of the entry under the keyboard cursor, or -1.
	Focus int
}

// Item is the rendered form of one entry.
type Item struct {
	Name   string `json:"name"`
	Glyph  string `json:"glyph"`
	Active bool   `json:"isActive"`
	// Focused is true for the entry under the keyboard cursor.
	Focused bool   `json:"focused"`
	View    string `json:"view"`
}

// Render produces one item per entry, in entry order.
func Render(state nav.State, opts Options) []Item {
	opts = opts.withDefaults()

	items := make([]Item, 0, state.Len())
	for i := 0; i < state.Len(); i++ {
		e := state.Entry(i)
		glyph := opts.Icons(e)
		focused := i == opts.Focus
		items = append(items, Item{
			Name:    e.Name,
			Glyph:   glyph,
			Active:  e.Active,
			Focused: focused,
			View:    renderCard(e, glyph, focused, opts),
		})
	}
	return items
}

// RenderHeader draws the logo row shown above the cards.
func RenderHeader(title, logo string, th *theme.Theme) string {
	if th == nil {
		th = theme.DefaultTheme
	}
	parts := []string{theme.Glyph(logo)}
	if title != "" {
		parts = append(parts, th.Title.Render(title))
	}
	return th.Header.Render(strings.Join(parts, " "))
}

func (o Options) withDefaults() Options {
	if o.Theme == nil {
		o.Theme = theme.DefaultTheme
	}
	if o.Icons == nil {
		o.Icons = DefaultIconRenderer
	}
	if o.Width <= 0 {
		o.Width = defaultCardWidth
	}
	return o
}

const (
	defaultCardWidth = 28
	// cardChrome is the border plus horizontal padding of a card.
	cardChrome = 4
)

func renderCard(e nav.Entry, glyph string, focused bool, opts Options) string {
	th := opts.Theme
	card, icon, label := th.Card, th.Icon, th.Label
	if e.Active {
		card, icon, label = th.CardActive, th.IconActive, th.LabelActive
	}

	marker := " "
	if focused {
		marker = th.FocusMarker.Render(theme.Glyph("focus"))
	}

	prefix := marker + " " + icon.Render(glyph) + " "
	avail := opts.Width - cardChrome - lipgloss.Width(prefix)
	if avail < 1 {
		avail = 1
	}
	name := e.Name
	if runewidth.StringWidth(name) > avail {
		name = runewidth.Truncate(name, avail, "…")
	}

	// Width excludes the border, so subtract it to keep the outer width fixed
	return card.Width(opts.Width - 2).Render(prefix + label.Render(name))
}
