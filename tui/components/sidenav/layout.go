package sidenav

import (
	"github.com/charmbracelet/lipgloss"
)

// HitTest maps a point in the panel's view to the index of the card under
// it. The header, help line and empty space hit nothing.
func (m Model) HitTest(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.cardWidth {
		return -1, false
	}

	row := y - m.headerHeight()
	if row < 0 {
		return -1, false
	}

	items := Render(m.state, m.renderOptions())
	end := m.offset + m.visibleCards()
	if end > len(items) {
		end = len(items)
	}
	for i := m.offset; i < end; i++ {
		h := lipgloss.Height(items[i].View)
		if row < h {
			return i, true
		}
		row -= h
	}
	return -1, false
}

func (m Model) headerHeight() int {
	if m.hideHeader {
		return 0
	}
	return lipgloss.Height(m.headerView())
}

func (m Model) helpHeight() int {
	if m.hideHelp {
		return 0
	}
	return lipgloss.Height(m.helpView())
}

// cardHeight is the height of one card: a single content line plus borders.
const cardHeight = 3

// visibleCards is how many cards fit under the header and above the help.
// Before the first WindowSizeMsg every card is shown.
func (m Model) visibleCards() int {
	if m.height <= 0 {
		return m.state.Len()
	}
	avail := (m.height - m.headerHeight() - m.helpHeight()) / cardHeight
	if avail < 1 {
		return 1
	}
	return avail
}

// clampScroll keeps the cursor inside the visible window.
func (m *Model) clampScroll() {
	if m.state.Len() == 0 {
		m.offset = 0
		return
	}
	avail := m.visibleCards()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+avail {
		m.offset = m.cursor - avail + 1
	}
	if last := m.state.Len() - avail; m.offset > last {
		m.offset = last
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
