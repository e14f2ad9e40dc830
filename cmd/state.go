package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/navpanel/cli"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newStateCmd() *cobra.Command {
	flags := &panelFlags{}
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Print the navigation state after the given selections",
		Long: `Prints the module list with its isActive flags, as YAML or with --json
as JSON. Nothing is drawn.

Examples:
  navpanel state
  navpanel state --select settings --json
  navpanel state --select missing --on-unknown keep`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cli.LoadConfig(cmd)
			if err != nil {
				return err
			}
			if err := flags.apply(cfg); err != nil {
				return err
			}

			state := selectAll(cfg, flags.selects)

			var data []byte
			if cli.GetOptions(cmd).JSONOutput {
				data, err = json.MarshalIndent(state, "", "  ")
				data = append(data, '\n')
			} else {
				data, err = yaml.Marshal(state)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
