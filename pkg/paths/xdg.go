// Package paths provides XDG-compliant path resolution for navpanel.
//
// Resolution order:
// 1. NAVPANEL_HOME (portable root) → $NAVPANEL_HOME/{config,state}
// 2. XDG env vars → $XDG_*_HOME/navpanel
// 3. Platform defaults → ~/.config/navpanel, ~/.local/state/navpanel
package paths

import (
	"os"
	"path/filepath"
)

const appName = "navpanel"

// getConfigHome returns the base config home directory.
func getConfigHome() string {
	if home := os.Getenv("NAVPANEL_HOME"); home != "" {
		return filepath.Join(home, "config")
	}
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config")
	}
	return ""
}

// getStateHome returns the base state home directory.
func getStateHome() string {
	if home := os.Getenv("NAVPANEL_HOME"); home != "" {
		return filepath.Join(home, "state")
	}
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".local", "state")
	}
	return ""
}

// ConfigDir returns the navpanel configuration directory.
// The global navpanel.yml lives here.
func ConfigDir() string {
	base := getConfigHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// StateDir returns the navpanel state directory.
func StateDir() string {
	base := getStateHome()
	if base == "" {
		return ""
	}
	return filepath.Join(base, appName)
}

// LogsDir returns the directory default log files are written to.
func LogsDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}

// GlobalConfigFile returns the path of the global configuration file.
func GlobalConfigFile() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "navpanel.yml")
}

// EnsureDirs creates the navpanel directories if they don't exist.
func EnsureDirs() error {
	for _, dir := range []string{ConfigDir(), StateDir(), LogsDir()} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
