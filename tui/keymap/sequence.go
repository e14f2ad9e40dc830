package keymap

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SequenceResult represents the result of processing a key in a sequence context.
type SequenceResult int

const (
	// SequenceNone indicates no match and no potential match.
	SequenceNone SequenceResult = iota
	// SequencePending indicates the buffer is a prefix of a valid sequence.
	SequencePending
	// SequenceMatch indicates a complete sequence match.
	SequenceMatch
)

// Sequence buffers key presses for multi-key bindings such as gg.
// The buffer is dropped when the next key arrives after the timeout.
type Sequence struct {
	buffer     string
	lastUpdate time.Time
	timeout    time.Duration
	now        func() time.Time
}

// NewSequence creates a sequence buffer with a one second timeout.
func NewSequence() *Sequence {
	return &Sequence{timeout: time.Second, now: time.Now}
}

// Process appends msg to the buffer and reports whether it now completes one
// of bindings (returning its index), may still complete one, or cannot.
// The buffer is cleared on a match and on a miss.
func (s *Sequence) Process(msg tea.KeyMsg, bindings ...key.Binding) (SequenceResult, int) {
	now := s.now()
	if s.timeout > 0 && now.Sub(s.lastUpdate) > s.timeout {
		s.buffer = ""
	}
	s.lastUpdate = now
	s.buffer += msg.String()

	for i, b := range bindings {
		for _, k := range b.Keys() {
			if k == s.buffer {
				s.buffer = ""
				return SequenceMatch, i
			}
		}
	}

	for _, b := range bindings {
		for _, k := range b.Keys() {
			if len(s.buffer) < len(k) && strings.HasPrefix(k, s.buffer) {
				return SequencePending, -1
			}
		}
	}

	s.buffer = ""
	return SequenceNone, -1
}

// Pending reports whether a partial sequence is buffered.
func (s *Sequence) Pending() bool {
	return s.buffer != ""
}

// Clear drops any buffered keys.
func (s *Sequence) Clear() {
	s.buffer = ""
}
