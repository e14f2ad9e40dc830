package cli

import (
	"os"

	"github.com/grovetools/navpanel/config"
	"github.com/grovetools/navpanel/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds the flags every navpanel command accepts.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command carrying the standard persistent flags.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a navpanel.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns the cli component logger adjusted for the command flags.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	entry := logging.NewLogger("cli")

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return entry
}

// GetOptions extracts the standard options from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadConfig resolves and loads the configuration for cmd, layered over
// the global file, then installs its logging section.
func LoadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	opts := GetOptions(cmd)
	path := opts.ConfigFile
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}
		path, err = config.FindConfigFile(cwd)
		if err != nil {
			return nil, "", err
		}
	}

	cfg, err := config.LoadWithGlobal(path, GetLogger(cmd))
	if err != nil {
		return nil, path, err
	}

	ApplyLoggingFlags(cmd, &cfg.Logging)
	logging.Configure(cfg.Logging)
	return cfg, path, nil
}

// ApplyLoggingFlags folds --verbose and --json into a logging section so
// every component logger follows them, not only the cli one.
func ApplyLoggingFlags(cmd *cobra.Command, cfg *logging.Config) {
	opts := GetOptions(cmd)
	if opts.Verbose {
		cfg.Level = "debug"
	}
	if opts.JSONOutput {
		cfg.Format.Preset = "json"
	}
}
