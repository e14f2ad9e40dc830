package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/navpanel/cli"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	flags := &panelFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the panel once and exit",
		Long: `Draws the header and one card per module to stdout. Each --select is
applied in order, exactly as a click on that name would be.

Examples:
  navpanel render --select orders
  navpanel render --icons ascii --width 20
  navpanel render --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadPanelConfig(cmd, flags)
			if err != nil {
				return err
			}

			state := selectAll(cfg, flags.selects)
			view, items := renderStatic(cfg, state)

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), view)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
