package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/navpanel/cli"
	"github.com/grovetools/navpanel/config"
	"github.com/grovetools/navpanel/nav"
	"github.com/grovetools/navpanel/tui"
	"github.com/grovetools/navpanel/tui/components/sidenav"
	"github.com/grovetools/navpanel/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// panelFlags override the panel and tui sections of the loaded config.
type panelFlags struct {
	selects   []string
	width     int
	onUnknown string
	theme     string
	icons     string
}

func (f *panelFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.selects, "select", "s", nil, "Select an entry by name, repeat to select in order")
	fs.IntVar(&f.width, "width", 0, "Card width in columns (overrides panel.width)")
	fs.StringVar(&f.onUnknown, "on-unknown", "", "Policy for names not in the list: clear, keep")
	fs.StringVar(&f.theme, "theme", "", "Colour theme: kanagawa, pos, terminal")
	fs.StringVar(&f.icons, "icons", "", "Icon set: nerd, ascii")
}

// apply writes the set flags into cfg and revalidates it.
func (f *panelFlags) apply(cfg *config.Config) error {
	if f.width > 0 {
		cfg.Panel.Width = f.width
	}
	if f.onUnknown != "" {
		cfg.Panel.OnUnknown = f.onUnknown
	}
	if f.theme != "" {
		cfg.TUI.Theme = f.theme
	}
	if f.icons != "" {
		cfg.TUI.Icons = f.icons
	}
	return cfg.Validate()
}

// loadPanelConfig loads the configuration for cmd, applies flag overrides
// and installs the configured theme and icon set.
func loadPanelConfig(cmd *cobra.Command, flags *panelFlags) (*config.Config, string, error) {
	cfg, path, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, path, err
	}
	if err := flags.apply(cfg); err != nil {
		return nil, path, err
	}

	tui.InitializeTUI()
	tui.ApplyAppearance(cfg.TUI.Theme, cfg.TUI.Icons)
	return cfg, path, nil
}

// selectAll replays names against the initial state in order.
func selectAll(cfg *config.Config, names []string) nav.State {
	state := nav.Initialize(cfg.Entries())
	policy := cfg.MissPolicy()
	for _, name := range names {
		state = nav.SelectWithPolicy(state, name, policy)
	}
	return state
}

// renderStatic draws the header and every card without help or focus.
func renderStatic(cfg *config.Config, state nav.State) (string, []sidenav.Item) {
	th := theme.DefaultTheme
	items := sidenav.Render(state, sidenav.Options{
		Theme: th,
		Width: cfg.Panel.Width,
		Focus: -1,
	})

	var sections []string
	if !cfg.Panel.HideHeader {
		sections = append(sections, sidenav.RenderHeader(cfg.Panel.Title, cfg.Panel.Logo, th))
	}
	for _, item := range items {
		sections = append(sections, item.View)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...), items
}
