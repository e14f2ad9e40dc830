package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/navpanel/cli"
	"github.com/grovetools/navpanel/errors"
	"github.com/grovetools/navpanel/logging"
	"github.com/grovetools/navpanel/nav"
	"github.com/spf13/cobra"
)

type validateReport struct {
	Valid   bool        `json:"valid"`
	Path    string      `json:"path"`
	Modules int         `json:"modules"`
	Active  string      `json:"active,omitempty"`
	Issues  []nav.Issue `json:"issues,omitempty"`
}

func newValidateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration against the schema",
		Long: `Loads the configuration the panel would use and reports schema violations.
Entry lists that load but look suspicious (no active entry, duplicate
names) are reported as warnings; --strict turns them into a failure.

Examples:
  navpanel validate
  navpanel validate -c ./navpanel.json --strict`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}

			report := validateReport{
				Valid:   true,
				Path:    path,
				Modules: len(cfg.Modules),
				Issues:  cfg.Lint(),
			}
			if active, ok := nav.Initialize(cfg.Entries()).Active(); ok {
				report.Active = active.Name
			}
			if strict && len(report.Issues) > 0 {
				report.Valid = false
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				printReport(logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()), report)
			}

			if !report.Valid {
				return errors.InvalidInput("modules", fmt.Sprintf("%d lint issue(s) in strict mode", len(report.Issues)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the entry list has lint issues")
	return cmd
}

func printReport(pretty *logging.PrettyLogger, report validateReport) {
	if report.Valid {
		pretty.Success("Configuration is valid")
	} else {
		pretty.ErrorPretty("Configuration has lint issues", nil)
	}
	pretty.Field("path", report.Path)
	pretty.Field("modules", report.Modules)
	active := report.Active
	if active == "" {
		active = "none"
	}
	pretty.Field("active", active)
	for _, issue := range report.Issues {
		pretty.WarnPretty(issue.String())
	}
}
