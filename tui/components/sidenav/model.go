package sidenav

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navpanel/logging"
	"github.com/grovetools/navpanel/nav"
	"github.com/grovetools/navpanel/tui/keymap"
	"github.com/grovetools/navpanel/tui/theme"
	"github.com/grovetools/navpanel/tui/utils/scrollbar"
	"github.com/sirupsen/logrus"
)

// Config defines the configuration for the panel.
type Config struct {
	Entries []nav.Entry
	Title   string
	// Logo is the icon descriptor drawn in the header row.
	Logo string
	// Width is the outer card width.
	Width  int
	Policy nav.MissPolicy
	Theme  *theme.Theme
	Icons  IconRenderer
	// Keys defaults to keymap.Default() when nil.
	Keys       *keymap.KeyMap
	HideHeader bool
	HideHelp   bool
}

// Model is the navigation panel component model.
type Model struct {
	state  nav.State
	policy nav.MissPolicy
	cursor int
	offset int

	keys keymap.KeyMap
	seq  *keymap.Sequence
	help help.Model

	theme      *theme.Theme
	icons      IconRenderer
	title      string
	logo       string
	cardWidth  int
	hideHeader bool
	hideHelp   bool

	width    int
	height   int
	quitting bool

	logger *logrus.Entry

	// OnSelect is called after a selection. The returned command is executed
	// instead of emitting SelectedMsg.
	OnSelect func(SelectedMsg) tea.Cmd
}

// New creates a panel holding nav.Initialize(cfg.Entries).
func New(cfg Config) Model {
	keys := keymap.Default()
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}
	th := cfg.Theme
	if th == nil {
		th = theme.DefaultTheme
	}
	width := cfg.Width
	if width <= 0 {
		width = defaultCardWidth
	}

	m := Model{
		policy:     cfg.Policy,
		keys:       keys,
		seq:        keymap.NewSequence(),
		help:       help.New(),
		theme:      th,
		icons:      cfg.Icons,
		title:      cfg.Title,
		logo:       cfg.Logo,
		cardWidth:  width,
		hideHeader: cfg.HideHeader,
		hideHelp:   cfg.HideHelp,
		logger:     logging.NewLogger("sidenav"),
	}
	if m.logo == "" {
		m.logo = "logo"
	}
	m.mount(cfg.Entries)
	return m
}

// mount replaces the state with a freshly initialized one and puts the
// cursor on the active entry.
func (m *Model) mount(entries []nav.Entry) {
	m.state = nav.Initialize(entries)
	m.cursor = 0
	m.offset = 0
	for i := 0; i < m.state.Len(); i++ {
		if m.state.Entry(i).Active {
			m.cursor = i
			break
		}
	}
	m.clampScroll()

	for _, issue := range nav.Lint(entries) {
		m.logger.WithField("kind", issue.Kind).Warn(issue.Message)
	}
}

// State returns the current panel state.
func (m Model) State() nav.State { return m.state }

// Cursor returns the index of the focused entry.
func (m Model) Cursor() int { return m.cursor }

// Quitting reports whether the panel asked the program to quit.
func (m Model) Quitting() bool { return m.quitting }

// Init initializes the panel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Select selects the entry called name and returns the resulting command.
func (m Model) Select(name string) (Model, tea.Cmd) {
	m.state = nav.SelectWithPolicy(m.state, name, m.policy)
	idx := m.state.Index(name)
	if idx >= 0 {
		m.cursor = idx
		m.clampScroll()
	}

	msg := SelectedMsg{Name: name, Index: idx, Found: idx >= 0, State: m.state}
	m.logger.WithFields(logrus.Fields{
		"entry":  name,
		"found":  msg.Found,
		"policy": m.policy.String(),
	}).Debug("Entry selected")

	if m.OnSelect != nil {
		return m, m.OnSelect(msg)
	}
	return m, func() tea.Msg { return msg }
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		return m, nil

	case ModulesReloadedMsg:
		if msg.Err != nil {
			m.logger.WithError(msg.Err).Warn("Keeping current entries after failed reload")
			return m, nil
		}
		m.logger.WithField("modules", len(msg.Entries)).Info("Remounting panel with reloaded entries")
		m.seq.Clear()
		m.mount(msg.Entries)
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		idx, ok := m.HitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.seq.Clear()
		return m.Select(m.state.Entry(idx).Name)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If help is visible, any key closes it
	if m.help.ShowAll {
		m.help.ShowAll = false
		m.clampScroll()
		return m, nil
	}

	switch result, _ := m.seq.Process(msg, m.keys.Sequences()...); result {
	case keymap.SequenceMatch:
		m.moveCursor(-m.state.Len())
		return m, nil
	case keymap.SequencePending:
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampScroll()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(m.state.Len())
	case key.Matches(msg, m.keys.Select):
		if m.cursor < m.state.Len() {
			return m.Select(m.state.Entry(m.cursor).Name)
		}
	case key.Matches(msg, m.keys.Jump):
		// The nth jump key selects the nth entry.
		idx := slices.Index(m.keys.Jump.Keys(), msg.String())
		if idx >= 0 && idx < m.state.Len() {
			return m.Select(m.state.Entry(idx).Name)
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.state.Len() == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= m.state.Len() {
		m.cursor = m.state.Len() - 1
	}
	m.clampScroll()
}

// View renders the panel.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	if !m.hideHeader {
		sections = append(sections, m.headerView())
	}

	items := Render(m.state, m.renderOptions())
	visible := m.visibleCards()
	end := min(m.offset+visible, len(items))
	cards := make([]string, 0, end-m.offset)
	for _, item := range items[m.offset:end] {
		cards = append(cards, item.View)
	}
	column := lipgloss.JoinVertical(lipgloss.Left, cards...)
	if len(items) > visible {
		bar := scrollbar.Generate(len(items), visible, m.offset, lipgloss.Height(column), m.theme.Muted)
		column = scrollbar.Overlay(column, bar)
	}
	if len(cards) > 0 {
		sections = append(sections, column)
	}

	if !m.hideHelp {
		sections = append(sections, m.helpView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderOptions() Options {
	return Options{
		Theme: m.theme,
		Width: m.cardWidth,
		Icons: m.icons,
		Focus: m.cursor,
	}
}

func (m Model) headerView() string {
	return RenderHeader(m.title, m.logo, m.theme)
}

func (m Model) helpView() string {
	return m.help.View(m.keys)
}
