package nav

import (
	"fmt"
	"strings"
)

// MissPolicy decides what a selection does when no entry carries the
// requested name.
type MissPolicy int

const (
	// ClearOnMiss deactivates every entry. This is the default: a click on
	// a name that is not in the list leaves nothing selected.
	ClearOnMiss MissPolicy = iota
	// KeepOnMiss leaves the current selection untouched.
	KeepOnMiss
)

// String returns the configuration spelling of the policy.
func (p MissPolicy) String() string {
	switch p {
	case ClearOnMiss:
		return "clear"
	case KeepOnMiss:
		return "keep"
	default:
		return fmt.Sprintf("MissPolicy(%d)", int(p))
	}
}

// ParseMissPolicy converts "clear" or "keep" into a MissPolicy.
// An empty string yields ClearOnMiss.
func ParseMissPolicy(s string) (MissPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clear":
		return ClearOnMiss, nil
	case "keep":
		return KeepOnMiss, nil
	default:
		return ClearOnMiss, fmt.Errorf("unknown miss policy %q (want clear or keep)", s)
	}
}
