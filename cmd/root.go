// Package cmd implements the navpanel command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/navpanel/cli"
	"github.com/grovetools/navpanel/version"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the navpanel command tree. Without a subcommand it
// runs the interactive panel.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"navpanel",
		"Side navigation panel for point-of-sale terminals",
	)
	root.Long = `Shows the configured modules as a column of cards. Clicking a card or
pressing enter on it makes that module the only active one.

Examples:
  # Open the panel for the nearest navpanel.yml
  navpanel

  # Reload the panel whenever the config file changes
  navpanel --watch

  # Print the panel with "orders" selected
  navpanel render --select orders`
	root.Args = cobra.NoArgs

	flags := &runFlags{}
	flags.register(root.Flags())
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return runPanel(cmd, flags)
	}

	info := version.GetInfo()
	cli.SetVersionTemplate(root, info)

	root.AddCommand(newRenderCmd())
	root.AddCommand(newStateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newLogsCmd())
	root.AddCommand(cli.NewVersionCommand("navpanel", info))

	cli.ApplyStyledHelpRecursive(root)
	return root
}

// Execute runs the command line and returns the process exit code.
// An interrupt or SIGTERM cancels the command context.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		verbose, _ := root.PersistentFlags().GetBool("verbose")
		cli.NewErrorHandler(verbose).Handle(err)
		return 1
	}
	return 0
}
