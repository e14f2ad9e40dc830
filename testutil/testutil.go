package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// ModulesYAML is a small configuration with the second of three entries active.
const ModulesYAML = `version: "1"
modules:
  - name: Home
    isActive: 0
    icon: home
  - name: Orders
    isActive: 1
    icon: orders
  - name: Settings
    isActive: 0
    icon: settings
`

// ModulesJSON is ModulesYAML in the NavigationModules.json layout.
const ModulesJSON = `{
  "modules": [
    {"name": "Home", "isActive": 0, "icon": "home"},
    {"name": "Orders", "isActive": 1, "icon": "orders"},
    {"name": "Settings", "isActive": 0, "icon": "settings"}
  ]
}
`

// IsolateHome points NAVPANEL_HOME at a fresh temporary directory so tests
// never read or write the real config and state directories. It returns
// the directory.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("NAVPANEL_HOME", home)
	t.Setenv("NAVPANEL_LOG_LEVEL", "")
	return home
}

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteGlobalConfig writes the global navpanel.yml under an isolated home.
func WriteGlobalConfig(t *testing.T, home, content string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(home, "config", "navpanel"), "navpanel.yml", content)
}

// ModulesYAMLFor builds a configuration listing names in order with the
// entry called active marked active. An empty active leaves all inactive.
func ModulesYAMLFor(active string, names ...string) string {
	var b strings.Builder
	b.WriteString("modules:\n")
	for _, name := range names {
		flag := 0
		if name == active {
			flag = 1
		}
		fmt.Fprintf(&b, "  - name: %q\n    isActive: %d\n", name, flag)
	}
	return b.String()
}

// Eventually polls cond until it returns true or timeout elapses.
func Eventually(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v: %s", timeout, msg)
}
