package sidenav

import (
	"github.com/grovetools/navpanel/nav"
)

// SelectedMsg is emitted after every selection, by click, key or Select.
type SelectedMsg struct {
	// Name is the requested entry name.
	Name string
	// Index is the position of the entry, or -1 when no entry has that name.
	Index int
	// Found reports whether the name matched an entry.
	Found bool
	// State is the panel state after the selection.
	State nav.State
}

// ModulesReloadedMsg replaces the panel's entries, as if the panel had been
// created again. A non-nil Err leaves the panel untouched.
type ModulesReloadedMsg struct {
	Entries []nav.Entry
	Err     error
}
