package config

import (
	"fmt"
	"sort"

	"github.com/grovetools/navpanel/errors"
	"github.com/grovetools/navpanel/nav"
	"github.com/grovetools/navpanel/tui/keymap"
	"github.com/grovetools/navpanel/tui/theme"
)

// Validate checks the values the schema cannot express. Every problem is
// reported in one CONFIG_VALIDATION error.
func (c *Config) Validate() error {
	var violations []string

	if _, err := nav.ParseMissPolicy(c.Panel.OnUnknown); err != nil {
		violations = append(violations, fmt.Sprintf("- /panel/on_unknown: %v", err))
	}

	if c.Panel.Width != 0 && c.Panel.Width < MinPanelWidth {
		violations = append(violations, fmt.Sprintf("- /panel/width: must be at least %d, got %d", MinPanelWidth, c.Panel.Width))
	}

	if c.TUI.Theme != "" && !theme.Known(c.TUI.Theme) {
		violations = append(violations, fmt.Sprintf("- /tui/theme: unknown theme %q (want one of %v)", c.TUI.Theme, theme.Names()))
	}

	switch c.TUI.Icons {
	case "", "nerd", "ascii":
	default:
		violations = append(violations, fmt.Sprintf("- /tui/icons: unknown icon set %q (want nerd or ascii)", c.TUI.Icons))
	}

	known := make(map[string]bool)
	for _, action := range keymap.Actions() {
		known[action] = true
	}
	actions := make([]string, 0, len(c.TUI.Keybindings))
	for action := range c.TUI.Keybindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		if !known[action] {
			violations = append(violations, fmt.Sprintf("- /tui/keybindings/%s: unknown action", action))
			continue
		}
		keys := c.TUI.Keybindings[action]
		if len(keys) == 0 {
			violations = append(violations, fmt.Sprintf("- /tui/keybindings/%s: at least one key is required", action))
		}
		for _, k := range keys {
			if k == "" {
				violations = append(violations, fmt.Sprintf("- /tui/keybindings/%s: keys cannot be empty", action))
				break
			}
		}
	}

	if len(violations) > 0 {
		return errors.ConfigValidation("", violations)
	}
	return nil
}

// Lint reports non-fatal problems with the modules list. Loading succeeds
// regardless; callers log these.
func (c *Config) Lint() []nav.Issue {
	return nav.Lint(c.Entries())
}
