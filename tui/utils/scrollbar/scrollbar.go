// Package scrollbar draws a one-column scroll indicator for lists that
// show a window of their items.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	thumb = "█"
	track = "░"
)

// Generate returns height rows of scrollbar for a list of total items of
// which visible are shown starting at offset. A list that fits is drawn as
// a full thumb.
func Generate(total, visible, offset, height int, style lipgloss.Style) []string {
	if height <= 0 {
		return []string{}
	}

	rows := make([]string, height)
	if total <= 0 || total <= visible {
		for i := range rows {
			rows[i] = style.Render(thumb)
		}
		return rows
	}

	thumbSize := max(1, height*visible/total)
	maxStart := height - thumbSize
	maxOffset := total - visible

	start := 0
	if maxOffset > 0 {
		start = (maxStart*offset + maxOffset/2) / maxOffset
	}
	start = min(max(start, 0), maxStart)

	for i := range rows {
		if i >= start && i < start+thumbSize {
			rows[i] = style.Render(thumb)
		} else {
			rows[i] = style.Render(track)
		}
	}
	return rows
}

// Overlay appends bar to the right of content, separated by one space.
// content is padded so the bar stays in a single column.
func Overlay(content string, bar []string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, content, " ", strings.Join(bar, "\n"))
}
