package cmd

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"time"

	"github.com/grovetools/navpanel/cli"
	"github.com/grovetools/navpanel/errors"
	"github.com/grovetools/navpanel/logging"
	"github.com/hpcloud/tail"
	"github.com/spf13/cobra"
)

func newLogsCmd() *cobra.Command {
	var (
		component string
		date      string
		follow    bool
		fromEnd   bool
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show a component log file",
		Long: `Prints the daily log file of a component. The panel logs to files only,
so this is the way to see what it did.

Examples:
  # Follow the panel log while clicking around
  navpanel logs -f

  # Config loading from yesterday
  navpanel logs --component config --date 2026-10-18`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A configured log path must be honoured even when the rest of the
			// config is broken, so load errors only fall back to defaults.
			if _, _, err := cli.LoadConfig(cmd); err != nil {
				cli.GetLogger(cmd).WithError(err).Debug("Using default log location")
			}

			day := time.Now()
			if date != "" {
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return errors.InvalidInput("date", "expected YYYY-MM-DD")
				}
				day = parsed
			}

			path := logging.LogFilePath(component, day)
			if path == "" {
				return errors.InvalidInput("component", "no log directory is available")
			}
			if _, err := os.Stat(path); err != nil && !follow {
				return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("no log file at %s", path)).
					WithDetail("path", path)
			}

			return tailLog(cmd, path, follow, fromEnd)
		},
	}
	cmd.Flags().StringVar(&component, "component", "sidenav", "Component log: sidenav, config, watch, cli")
	cmd.Flags().StringVar(&date, "date", "", "Day to show as YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing lines as they are written")
	cmd.Flags().BoolVar(&fromEnd, "new", false, "Skip existing lines")
	return cmd
}

func tailLog(cmd *cobra.Command, path string, follow, fromEnd bool) error {
	whence := io.SeekStart
	if fromEnd {
		whence = io.SeekEnd
	}
	t, err := tail.TailFile(path, tail.Config{
		Follow:    follow,
		ReOpen:    follow,
		MustExist: !follow,
		Location:  &tail.SeekInfo{Offset: 0, Whence: whence},
		Logger:    stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return err
	}
	defer t.Cleanup()

	done := cmd.Context().Done()
	out := cmd.OutOrStdout()
	for {
		select {
		case line, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				continue
			}
			fmt.Fprintln(out, line.Text)
		case <-done:
			return t.Stop()
		}
	}
}
