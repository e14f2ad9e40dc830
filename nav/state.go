// Package nav holds the selection state of the side navigation panel.
//
// A State is a value: every operation returns a new State backed by a
// freshly allocated slice, so two holders of a State never observe each
// other's changes.
package nav

// Entry is one navigable module in the side panel.
type Entry struct {
	// Name identifies the entry within its list and doubles as the display label.
	Name string `json:"name" yaml:"name"`
	// Active marks the highlighted entry.
	Active bool `json:"isActive" yaml:"isActive"`
	// Icon is an opaque descriptor handed to the icon renderer.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// State is the ordered list of entries shown by the panel.
// Order is display order.
type State struct {
	Entries []Entry `json:"modules" yaml:"modules"`
}

// Initialize builds a State from the static entry list as-is.
// Nothing is validated; use Lint to report suspicious input.
func Initialize(entries []Entry) State {
	return State{Entries: cloneEntries(entries)}
}

// Select marks the entry called name as active and every other entry as
// inactive. When no entry is called name the result has no active entry
// (see ClearOnMiss).
func Select(s State, name string) State {
	return SelectWithPolicy(s, name, ClearOnMiss)
}

// SelectWithPolicy is Select with an explicit miss policy.
func SelectWithPolicy(s State, name string, policy MissPolicy) State {
	if policy == KeepOnMiss && s.Index(name) < 0 {
		return Initialize(s.Entries)
	}

	entries := make([]Entry, len(s.Entries))
	for i, e := range s.Entries {
		e.Active = e.Name == name
		entries[i] = e
	}
	return State{Entries: entries}
}

// Len returns the number of entries.
func (s State) Len() int {
	return len(s.Entries)
}

// Entry returns the entry at index i.
func (s State) Entry(i int) Entry {
	return s.Entries[i]
}

// Index returns the position of the first entry called name, or -1.
func (s State) Index(name string) int {
	for i, e := range s.Entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Active returns the first active entry, if any.
func (s State) Active() (Entry, bool) {
	for _, e := range s.Entries {
		if e.Active {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the entry names in display order.
func (s State) Names() []string {
	names := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		names[i] = e.Name
	}
	return names
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
