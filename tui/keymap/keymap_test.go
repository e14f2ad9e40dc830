package keymap

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefault(t *testing.T) {
	km := Default()

	assert.True(t, key.Matches(runeKey('k'), km.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, km.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Select))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.Select))
	assert.True(t, key.Matches(runeKey('7'), km.Jump))
	assert.False(t, key.Matches(runeKey('0'), km.Jump))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit))

	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 3)
}

func TestLoadAppliesOverrides(t *testing.T) {
	km := Load(map[string][]string{
		"select": {"l", "enter"},
		"quit":   {"x"},
		"bogus":  {"z"},
	})

	assert.True(t, key.Matches(runeKey('l'), km.Select))
	assert.Equal(t, "l", km.Select.Help().Key)
	assert.Equal(t, "select", km.Select.Help().Desc)
	assert.True(t, key.Matches(runeKey('x'), km.Quit))
	assert.False(t, key.Matches(runeKey('q'), km.Quit))
	// Untouched bindings keep their defaults
	assert.True(t, key.Matches(runeKey('j'), km.Down))
}

func TestLoadIgnoresEmptyOverride(t *testing.T) {
	km := Load(map[string][]string{"up": {}})
	assert.True(t, key.Matches(runeKey('k'), km.Up))
}

func TestActions(t *testing.T) {
	assert.Equal(t, []string{"up", "down", "top", "bottom", "select", "jump", "help", "quit"}, Actions())
}

func TestCamelToSnake(t *testing.T) {
	tests := map[string]string{
		"Select":     "select",
		"PageDown":   "page_down",
		"HTTPServer": "http_server",
		"GoToTop":    "go_to_top",
	}
	for in, want := range tests {
		assert.Equal(t, want, camelToSnake(in), in)
	}
}

func TestSequence(t *testing.T) {
	km := Default()
	clock := time.Unix(0, 0)
	s := NewSequence()
	s.now = func() time.Time { return clock }

	res, idx := s.Process(runeKey('g'), km.Sequences()...)
	assert.Equal(t, SequencePending, res)
	assert.Equal(t, -1, idx)
	assert.True(t, s.Pending())

	clock = clock.Add(100 * time.Millisecond)
	res, idx = s.Process(runeKey('g'), km.Sequences()...)
	assert.Equal(t, SequenceMatch, res)
	assert.Equal(t, 0, idx)
	assert.False(t, s.Pending())

	res, _ = s.Process(runeKey('x'), km.Sequences()...)
	assert.Equal(t, SequenceNone, res)
	assert.False(t, s.Pending())
}

func TestSequenceTimeout(t *testing.T) {
	km := Default()
	clock := time.Unix(0, 0)
	s := NewSequence()
	s.now = func() time.Time { return clock }

	s.Process(runeKey('g'), km.Sequences()...)
	clock = clock.Add(2 * time.Second)

	res, _ := s.Process(runeKey('g'), km.Sequences()...)
	assert.Equal(t, SequencePending, res, "stale g is dropped, the new g starts over")

	s.Clear()
	assert.False(t, s.Pending())
}
