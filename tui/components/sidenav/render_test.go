package sidenav

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navpanel/nav"
	"github.com/grovetools/navpanel/tui/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useASCII(t *testing.T) {
	t.Helper()
	prev := theme.ASCIIIcons()
	theme.UseASCIIIcons(true)
	t.Cleanup(func() { theme.UseASCIIIcons(prev) })
}

func sampleEntries() []nav.Entry {
	return []nav.Entry{
		{Name: "Home", Icon: "home"},
		{Name: "Orders", Active: true, Icon: "orders"},
		{Name: "Settings"},
	}
}

func TestRenderOneItemPerEntry(t *testing.T) {
	useASCII(t)

	items := Render(nav.Initialize(sampleEntries()), Options{Focus: -1})
	require.Len(t, items, 3)

	assert.Equal(t, "Home", items[0].Name)
	assert.Equal(t, "Orders", items[1].Name)
	assert.Equal(t, "Settings", items[2].Name)
	assert.Equal(t, []bool{false, true, false}, []bool{items[0].Active, items[1].Active, items[2].Active})

	assert.Equal(t, theme.Glyph("home"), items[0].Glyph)
	// No icon descriptor: the name is used
	assert.Equal(t, theme.Glyph("settings"), items[2].Glyph)

	for _, item := range items {
		assert.Contains(t, item.View, item.Name)
		assert.Equal(t, cardHeight, lipgloss.Height(item.View))
		assert.Equal(t, defaultCardWidth, lipgloss.Width(item.View))
		assert.False(t, item.Focused)
	}
}

func TestRenderEmptyState(t *testing.T) {
	assert.Empty(t, Render(nav.Initialize(nil), Options{}))
}

func TestRenderFocusMarker(t *testing.T) {
	useASCII(t)

	items := Render(nav.Initialize(sampleEntries()), Options{Focus: 2})
	assert.True(t, items[2].Focused)
	assert.Contains(t, items[2].View, theme.Glyph("focus"))
	assert.NotContains(t, items[0].View, theme.Glyph("focus"))
}

func TestRenderCustomIconRenderer(t *testing.T) {
	items := Render(nav.Initialize(sampleEntries()), Options{
		Icons: func(e nav.Entry) string { return strings.ToLower(e.Name[:1]) },
	})
	assert.Equal(t, "h", items[0].Glyph)
	assert.Contains(t, items[1].View, "o Orders")
}

func TestRenderTruncatesLongNames(t *testing.T) {
	useASCII(t)

	state := nav.Initialize([]nav.Entry{{Name: "Point of Sale Closing Shift Report"}})
	items := Render(state, Options{Width: 16})

	require.Len(t, items, 1)
	assert.Equal(t, 16, lipgloss.Width(items[0].View))
	assert.Equal(t, cardHeight, lipgloss.Height(items[0].View))
	assert.Contains(t, items[0].View, "…")
}

func TestRenderHeader(t *testing.T) {
	useASCII(t)

	header := RenderHeader("GetPOS", "logo", nil)
	assert.Contains(t, header, "GetPOS")
	assert.Contains(t, header, theme.Glyph("logo"))
	assert.Equal(t, 2, lipgloss.Height(header))
}
