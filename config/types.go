package config

import (
	"github.com/grovetools/navpanel/logging"
	"github.com/grovetools/navpanel/nav"
	"github.com/invopop/jsonschema"
)

// Config is the root of a navpanel configuration source.
type Config struct {
	Version string         `yaml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1')"`
	Modules []Module       `yaml:"modules" json:"modules" jsonschema:"description=Navigation entries in display order"`
	Panel   PanelConfig    `yaml:"panel,omitempty" json:"panel,omitempty" jsonschema:"description=Panel layout and selection behaviour"`
	TUI     TUIConfig      `yaml:"tui,omitempty" json:"tui,omitempty" jsonschema:"description=Terminal appearance and input"`
	Logging logging.Config `yaml:"logging,omitempty" json:"logging,omitempty" jsonschema:"description=Log level and sinks"`
}

// Module is one entry of the modules list.
type Module struct {
	Name     string `yaml:"name" json:"name" jsonschema:"minLength=1,description=Entry name; also the display label"`
	IsActive Flag   `yaml:"isActive,omitempty" json:"isActive,omitempty"`
	Icon     string `yaml:"icon,omitempty" json:"icon,omitempty" jsonschema:"description=Icon descriptor; defaults to the entry name"`
}

// PanelConfig configures the navigation panel.
type PanelConfig struct {
	Title      string `yaml:"title,omitempty" json:"title,omitempty" jsonschema:"description=Text shown next to the logo"`
	Logo       string `yaml:"logo,omitempty" json:"logo,omitempty" jsonschema:"description=Icon descriptor for the header logo"`
	Width      int    `yaml:"width,omitempty" json:"width,omitempty" jsonschema:"minimum=0,description=Card width in columns"`
	OnUnknown  string `yaml:"on_unknown,omitempty" json:"on_unknown,omitempty" jsonschema:"enum=clear,enum=keep,description=What selecting an unknown name does"`
	HideHeader bool   `yaml:"hide_header,omitempty" json:"hide_header,omitempty" jsonschema:"description=Do not render the logo row"`
	HideHelp   bool   `yaml:"hide_help,omitempty" json:"hide_help,omitempty" jsonschema:"description=Do not render the help line"`
}

// TUIConfig configures the terminal UI.
type TUIConfig struct {
	Theme       string              `yaml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Colour theme: kanagawa or pos or terminal"`
	Icons       string              `yaml:"icons,omitempty" json:"icons,omitempty" jsonschema:"enum=nerd,enum=ascii,description=Glyph set"`
	Mouse       *bool               `yaml:"mouse,omitempty" json:"mouse,omitempty" jsonschema:"description=Enable mouse selection (default true)"`
	Keybindings map[string][]string `yaml:"keybindings,omitempty" json:"keybindings,omitempty" jsonschema:"description=Key overrides by action: up down top bottom select jump help quit"`
}

// Flag is a boolean that also accepts 0 and 1, the encoding the
// NavigationModules.json format uses for isActive.
type Flag bool

// JSONSchema accepts a boolean or the integers 0 and 1.
func (Flag) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Whether the entry starts active (true/false or 1/0)",
		OneOf: []*jsonschema.Schema{
			{Type: "boolean"},
			{Type: "integer", Enum: []interface{}{0, 1}},
		},
	}
}

// Entries converts the modules list into navigation entries, preserving order.
func (c *Config) Entries() []nav.Entry {
	entries := make([]nav.Entry, len(c.Modules))
	for i, m := range c.Modules {
		entries[i] = nav.Entry{Name: m.Name, Active: bool(m.IsActive), Icon: m.Icon}
	}
	return entries
}

// MissPolicy returns the configured policy for selecting an unknown name.
// Values rejected by Validate fall back to nav.ClearOnMiss.
func (c *Config) MissPolicy() nav.MissPolicy {
	p, err := nav.ParseMissPolicy(c.Panel.OnUnknown)
	if err != nil {
		return nav.ClearOnMiss
	}
	return p
}

// MouseEnabled reports whether mouse selection is on. It defaults to true.
func (c *Config) MouseEnabled() bool {
	return c.TUI.Mouse == nil || *c.TUI.Mouse
}

// SetDefaults fills in every unset optional field.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1"
	}
	if c.Modules == nil {
		c.Modules = []Module{}
	}
	if c.Panel.Title == "" {
		c.Panel.Title = "Navigation"
	}
	if c.Panel.Logo == "" {
		c.Panel.Logo = "logo"
	}
	if c.Panel.Width == 0 {
		c.Panel.Width = DefaultPanelWidth
	}
	if c.Panel.OnUnknown == "" {
		c.Panel.OnUnknown = nav.ClearOnMiss.String()
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = "kanagawa"
	}
	if c.TUI.Icons == "" {
		c.TUI.Icons = "nerd"
	}
}

// DefaultPanelWidth is the card width used when panel.width is unset.
const DefaultPanelWidth = 28

// MinPanelWidth is the narrowest card that still fits a border, an icon and a label.
const MinPanelWidth = 8
