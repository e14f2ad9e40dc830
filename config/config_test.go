package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grovetools/navpanel/errors"
	"github.com/grovetools/navpanel/nav"
	"github.com/grovetools/navpanel/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.ErrorLevel)
	return logrus.NewEntry(l)
}

func TestLoadFromBytesFormats(t *testing.T) {
	tomlContent := `
version = "1"

[[modules]]
name = "Home"
isActive = 0
icon = "home"

[[modules]]
name = "Orders"
isActive = 1
icon = "orders"

[[modules]]
name = "Settings"
isActive = false
icon = "settings"
`
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{name: "yaml", data: testutil.ModulesYAML, format: FormatYAML},
		{name: "json", data: testutil.ModulesJSON, format: FormatJSON},
		{name: "toml", data: tomlContent, format: FormatTOML},
	}

	want := []nav.Entry{
		{Name: "Home", Active: false, Icon: "home"},
		{Name: "Orders", Active: true, Icon: "orders"},
		{Name: "Settings", Active: false, Icon: "settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromBytes([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, cfg.Entries())
		})
	}
}

func TestLoadFromBytesBareList(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`[{"name": "A", "isActive": true}, {"name": "B"}]`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []nav.Entry{{Name: "A", Active: true}, {Name: "B"}}, cfg.Entries())
}

func TestSetDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("modules: []\n"), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Empty(t, cfg.Modules)
	assert.Equal(t, "Navigation", cfg.Panel.Title)
	assert.Equal(t, "logo", cfg.Panel.Logo)
	assert.Equal(t, DefaultPanelWidth, cfg.Panel.Width)
	assert.Equal(t, "clear", cfg.Panel.OnUnknown)
	assert.Equal(t, nav.ClearOnMiss, cfg.MissPolicy())
	assert.Equal(t, "kanagawa", cfg.TUI.Theme)
	assert.Equal(t, "nerd", cfg.TUI.Icons)
	assert.True(t, cfg.MouseEnabled())
}

func TestPanelAndTUISettings(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
modules:
  - name: Home
panel:
  title: GetPOS
  width: 32
  on_unknown: keep
  hide_help: true
tui:
  theme: pos
  icons: ascii
  mouse: false
  keybindings:
    select: ["enter", "l"]
`), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "GetPOS", cfg.Panel.Title)
	assert.Equal(t, 32, cfg.Panel.Width)
	assert.Equal(t, nav.KeepOnMiss, cfg.MissPolicy())
	assert.True(t, cfg.Panel.HideHelp)
	assert.Equal(t, "pos", cfg.TUI.Theme)
	assert.Equal(t, "ascii", cfg.TUI.Icons)
	assert.False(t, cfg.MouseEnabled())
	assert.Equal(t, []string{"enter", "l"}, cfg.TUI.Keybindings["select"])
}

func TestEnvExpansion(t *testing.T) {
	t.Setenv("NAVPANEL_TEST_ENTRY", "Reports")

	cfg, err := LoadFromBytes([]byte(`
modules:
  - name: ${NAVPANEL_TEST_ENTRY}
  - name: ${NAVPANEL_TEST_MISSING:-Fallback}
panel:
  title: ${NAVPANEL_TEST_MISSING}Title
`), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, []string{"Reports", "Fallback"}, nav.Initialize(cfg.Entries()).Names())
	assert.Equal(t, "Title", cfg.Panel.Title)
}

func TestSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{name: "missing modules", data: "panel:\n  title: x\n", wantMsg: "modules"},
		{name: "unknown top-level key", data: "modules: []\nsidebar: true\n", wantMsg: "sidebar"},
		{name: "missing entry name", data: "modules:\n  - icon: home\n", wantMsg: "/modules/0"},
		{name: "empty entry name", data: "modules:\n  - name: \"\"\n", wantMsg: "/modules/0/name"},
		{name: "isActive out of range", data: "modules:\n  - name: A\n    isActive: 2\n", wantMsg: "/modules/0/isActive"},
		{name: "isActive string", data: "modules:\n  - name: A\n    isActive: \"yes\"\n", wantMsg: "/modules/0/isActive"},
		{name: "bad policy", data: "modules: []\npanel:\n  on_unknown: maybe\n", wantMsg: "/panel/on_unknown"},
		{name: "bad log level", data: "modules: []\nlogging:\n  level: loud\n", wantMsg: "/logging/level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.data), FormatYAML)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := LoadFromBytes([]byte("modules: [\n"), FormatYAML)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))

	_, err = LoadFromBytes([]byte(`"just a string"`), FormatJSON)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.GetCode(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantMsg string
	}{
		{name: "unknown theme", mutate: func(c *Config) { c.TUI.Theme = "solarized" }, wantMsg: "/tui/theme"},
		{name: "narrow panel", mutate: func(c *Config) { c.Panel.Width = 4 }, wantMsg: "/panel/width"},
		{name: "unknown icon set", mutate: func(c *Config) { c.TUI.Icons = "emoji" }, wantMsg: "/tui/icons"},
		{name: "unknown key action", mutate: func(c *Config) { c.TUI.Keybindings = map[string][]string{"scroll": {"g"}} }, wantMsg: "/tui/keybindings/scroll"},
		{name: "empty key list", mutate: func(c *Config) { c.TUI.Keybindings = map[string][]string{"quit": {}} }, wantMsg: "/tui/keybindings/quit"},
		{name: "bad policy", mutate: func(c *Config) { c.Panel.OnUnknown = "ignore" }, wantMsg: "/panel/on_unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.SetDefaults()
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeConfigValidation, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateAcceptsEveryKeyAction(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()
	cfg.TUI.Keybindings = map[string][]string{
		"jump":   {"a", "s", "d"},
		"select": {"l"},
		"top":    {"home"},
	}
	assert.NoError(t, cfg.Validate())
}

func TestLint(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(testutil.ModulesYAMLFor("", "A", "B", "A")), FormatYAML)
	require.NoError(t, err)

	issues := cfg.Lint()
	kinds := make([]nav.IssueKind, 0, len(issues))
	for _, issue := range issues {
		kinds = append(kinds, issue.Kind)
	}
	assert.Equal(t, []nav.IssueKind{nav.IssueDuplicateName, nav.IssueNoActive}, kinds)
}

func TestLoad(t *testing.T) {
	testutil.IsolateHome(t)
	dir := t.TempDir()

	path := testutil.WriteFile(t, dir, "NavigationModules.json", testutil.ModulesJSON)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Modules, 3)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))

	ini := testutil.WriteFile(t, dir, "navpanel.ini", "modules=")
	_, err = Load(ini)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedFormat))

	bad := testutil.WriteFile(t, dir, "bad.yml", "modules:\n  - name: A\n    isActive: 5\n")
	_, err = Load(bad)
	require.Error(t, err)
	navErr, ok := errors.As(err)
	require.True(t, ok)
	assert.Equal(t, bad, navErr.Details["path"])
}

func TestFindConfigFile(t *testing.T) {
	testutil.IsolateHome(t)
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	testutil.WriteFile(t, root, "NavigationModules.json", testutil.ModulesJSON)
	yml := testutil.WriteFile(t, root, "navpanel.yml", testutil.ModulesYAML)

	found, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, yml, found)
}

func TestFindConfigFileFallsBackToGlobal(t *testing.T) {
	home := testutil.IsolateHome(t)
	global := testutil.WriteGlobalConfig(t, home, testutil.ModulesYAML)

	found, err := FindConfigFile(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, global, found)
}

func TestFindConfigFileNotFound(t *testing.T) {
	testutil.IsolateHome(t)

	_, err := FindConfigFile(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestLoadDefaultUsesWorkingDirectory(t *testing.T) {
	testutil.IsolateHome(t)
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "NavigationModules.json", testutil.ModulesJSON)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Orders", "Settings"}, nav.Initialize(cfg.Entries()).Names())
}

func TestHierarchicalMerging(t *testing.T) {
	home := testutil.IsolateHome(t)
	testutil.WriteGlobalConfig(t, home, `
panel:
  title: Global Title
  width: 40
tui:
  theme: pos
  keybindings:
    quit: ["x"]
logging:
  level: debug
`)

	projectDir := t.TempDir()
	testutil.WriteFile(t, projectDir, "navpanel.yml", `
modules:
  - name: Home
    isActive: 1
  - name: Orders
panel:
  width: 30
tui:
  keybindings:
    select: ["l"]
`)

	cfg, err := LoadFromWithLogger(projectDir, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"Home", "Orders"}, nav.Initialize(cfg.Entries()).Names())
	assert.Equal(t, "Global Title", cfg.Panel.Title)
	assert.Equal(t, 30, cfg.Panel.Width)
	assert.Equal(t, "pos", cfg.TUI.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []string{"x"}, cfg.TUI.Keybindings["quit"])
	assert.Equal(t, []string{"l"}, cfg.TUI.Keybindings["select"])
}

func TestGlobalMayListModulesButNeverSuppliesThem(t *testing.T) {
	home := testutil.IsolateHome(t)
	testutil.WriteGlobalConfig(t, home, "modules:\n  - name: FromGlobal\ntui:\n  theme: pos\n")

	path := testutil.WriteFile(t, t.TempDir(), "navpanel.yml", testutil.ModulesYAML)
	cfg, err := LoadWithGlobal(path, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Orders", "Settings"}, nav.Initialize(cfg.Entries()).Names())
	assert.Equal(t, "pos", cfg.TUI.Theme)
}

func TestProjectFileMustListModules(t *testing.T) {
	home := testutil.IsolateHome(t)
	testutil.WriteGlobalConfig(t, home, testutil.ModulesYAML)

	path := testutil.WriteFile(t, t.TempDir(), "navpanel.yml", "panel:\n  title: Shop\n")
	_, err := LoadWithGlobal(path, quietLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
}

func TestGlobalWithoutModulesCannotBeTheProjectFile(t *testing.T) {
	home := testutil.IsolateHome(t)
	testutil.WriteGlobalConfig(t, home, "panel:\n  title: Shop\n")

	_, err := LoadFromWithLogger(t.TempDir(), quietLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigValidation))
}

func TestSchemaValidatorsCompile(t *testing.T) {
	project, err := NewSchemaValidator()
	require.NoError(t, err)
	global, err := NewGlobalSchemaValidator()
	require.NoError(t, err)

	doc := map[string]interface{}{
		"panel":   map[string]interface{}{"title": "Shop"},
		"logging": map[string]interface{}{"level": "debug", "format": map[string]interface{}{"preset": "json"}},
	}
	assert.Error(t, project.Validate(doc))
	assert.NoError(t, global.Validate(doc))

	doc["logging"] = map[string]interface{}{"level": "loud"}
	assert.Error(t, global.Validate(doc), "nested logging section is still checked")
}

func TestBrokenGlobalIsIgnored(t *testing.T) {
	home := testutil.IsolateHome(t)
	testutil.WriteGlobalConfig(t, home, "panel: [\n")

	path := testutil.WriteFile(t, t.TempDir(), "navpanel.yml", testutil.ModulesYAML)
	cfg, err := LoadWithGlobal(path, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "Navigation", cfg.Panel.Title)
}

func TestGlobalAsProjectIsLoadedOnce(t *testing.T) {
	home := testutil.IsolateHome(t)
	testutil.WriteGlobalConfig(t, home, testutil.ModulesYAML)

	cfg, err := LoadFromWithLogger(t.TempDir(), quietLogger())
	require.NoError(t, err)
	assert.Len(t, cfg.Modules, 3)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `"modules"`)
	assert.Contains(t, out, `"isActive"`)
	assert.Contains(t, out, `"oneOf"`)
	assert.Contains(t, out, `"on_unknown"`)
	assert.Contains(t, out, `"#/$defs/logging.Config"`)

	_, err = NewSchemaValidator()
	require.NoError(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.yml":                  FormatYAML,
		"a.YAML":                 FormatYAML,
		"a.toml":                 FormatTOML,
		"NavigationModules.json": FormatJSON,
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("a.txt")
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedFormat))
}
