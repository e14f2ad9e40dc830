package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeWithNameResolvesAliases(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "kanagawa"},
		{in: "Kanagawa Dragon", want: "kanagawa"},
		{in: "getpos", want: "pos"},
		{in: "ANSI", want: "terminal"},
		{in: "solarized", want: "kanagawa"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NewThemeWithName(tt.in).Name)
		})
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("pos"))
	assert.True(t, Known("kanagawa_wave"))
	assert.False(t, Known("solarized"))
}

func TestSetDefault(t *testing.T) {
	prev := DefaultTheme
	t.Cleanup(func() { DefaultTheme = prev })

	SetDefault("terminal")
	assert.Equal(t, "terminal", DefaultTheme.Name)
}

func TestGlyph(t *testing.T) {
	prev := ASCIIIcons()
	t.Cleanup(func() { UseASCIIIcons(prev) })

	UseASCIIIcons(true)
	assert.Equal(t, asciiIconHome, Glyph("home"))
	assert.Equal(t, asciiIconHome, Glyph("Home"))
	assert.Equal(t, asciiIconCart, Glyph("Create Order"))
	assert.Equal(t, asciiIconShift, Glyph("closing_shift"))
	assert.Equal(t, asciiIconBullet, Glyph("unknown-thing"))

	UseASCIIIcons(false)
	assert.Equal(t, nerdIconHome, Glyph("home"))
	assert.Equal(t, nerdIconBullet, Glyph(""))
}

func TestHasIcon(t *testing.T) {
	assert.True(t, HasIcon("My Orders"))
	assert.False(t, HasIcon("spaceship"))
	assert.Contains(t, IconNames(), "settings")
}
