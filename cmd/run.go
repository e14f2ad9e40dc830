package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grovetools/navpanel/config"
	"github.com/grovetools/navpanel/errors"
	"github.com/grovetools/navpanel/internal/watch"
	"github.com/grovetools/navpanel/logging"
	"github.com/grovetools/navpanel/pkg/paths"
	"github.com/grovetools/navpanel/tui/components/sidenav"
	"github.com/grovetools/navpanel/tui/keymap"
	"github.com/grovetools/navpanel/tui/theme"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type runFlags struct {
	panelFlags
	watch      bool
	noMouse    bool
	printFinal bool
}

func (f *runFlags) register(fs *pflag.FlagSet) {
	f.panelFlags.register(fs)
	fs.BoolVarP(&f.watch, "watch", "w", false, "Reload the modules when the config file changes")
	fs.BoolVar(&f.noMouse, "no-mouse", false, "Disable mouse selection")
	fs.BoolVar(&f.printFinal, "print", false, "Print the active module name on exit")
}

func runPanel(cmd *cobra.Command, flags *runFlags) error {
	cfg, path, err := loadPanelConfig(cmd, &flags.panelFlags)
	if err != nil {
		return err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.InvalidInput("terminal", "the panel needs an interactive terminal, use 'navpanel render' instead")
	}

	// The program owns the terminal from here on.
	cfg.Logging.Format.StructuredToStderr = "never"
	logging.Configure(cfg.Logging)
	logger := logging.NewLogger("sidenav")

	panel := newPanel(cfg, logger)
	for _, name := range flags.selects {
		panel, _ = panel.Select(name)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if cfg.MouseEnabled() && !flags.noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(panel, opts...)

	if flags.watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		w, err := watchConfig(path, flags, logger, program.Send)
		if err != nil {
			return err
		}
		defer w.Close()
		go w.Run(ctx)
	}

	final, err := program.Run()
	if err != nil {
		return err
	}

	if flags.printFinal {
		if m, ok := final.(sidenav.Model); ok {
			if active, ok := m.State().Active(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), active.Name)
			}
		}
	}
	return nil
}

func newPanel(cfg *config.Config, logger *logrus.Entry) sidenav.Model {
	keys := keymap.Load(cfg.TUI.Keybindings)

	panel := sidenav.New(sidenav.Config{
		Entries:    cfg.Entries(),
		Title:      cfg.Panel.Title,
		Logo:       cfg.Panel.Logo,
		Width:      cfg.Panel.Width,
		Policy:     cfg.MissPolicy(),
		Theme:      theme.DefaultTheme,
		Keys:       &keys,
		HideHeader: cfg.Panel.HideHeader,
		HideHelp:   cfg.Panel.HideHelp,
	})
	panel.OnSelect = func(msg sidenav.SelectedMsg) tea.Cmd {
		logger.WithFields(logrus.Fields{
			"entry": msg.Name,
			"found": msg.Found,
		}).Info("Module selected")
		return nil
	}
	return panel
}

// watchConfig reloads the project and global config files on change and
// hands the new entries to send.
func watchConfig(path string, flags *runFlags, logger *logrus.Entry, send func(tea.Msg)) (*watch.Watcher, error) {
	files := []string{path}
	if global := paths.GlobalConfigFile(); global != "" {
		if _, err := os.Stat(global); err == nil {
			files = append(files, global)
		}
	}

	return watch.New(files, watch.DefaultDebounce, func(changed string) {
		logger.WithField("path", changed).Debug("Config changed, reloading")
		cfg, err := config.LoadWithGlobal(path, logger)
		if err == nil {
			err = flags.apply(cfg)
		}
		if err != nil {
			send(sidenav.ModulesReloadedMsg{Err: err})
			return
		}
		send(sidenav.ModulesReloadedMsg{Entries: cfg.Entries()})
	})
}
