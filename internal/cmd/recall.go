package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/config"
	"github.com/harrison/pxhist/internal/recall"
	"github.com/harrison/pxhist/internal/search"
)

func newRecallCommand() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "recall [initial query]",
		Short: "Open the fuzzy history picker",
		Long: `Recall opens a full-screen picker over the terminal: type to fuzzy
filter, arrow keys or Ctrl-R/Ctrl-N to move the selection, Enter to print
the chosen command to stdout for the calling shell to run, Tab to print it
for the shell to drop onto the edit line instead, Esc/Ctrl-C to cancel.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initialQuery := ""
			if len(args) > 0 {
				initialQuery = args[0]
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			hostname, _ := os.Hostname()
			workingDirectory, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}

			engine := search.NewEngine(s, workingDirectory, hostname, cfg.Recall.ResultLimit)

			scope := search.ScopeDirectory
			if global {
				scope = search.ScopeGlobal
			}

			sess, err := recall.Open()
			if err != nil {
				return err
			}
			defer sess.Close()

			result, err := sess.Run(engine, scope, initialQuery, cfg, hostname, workingDirectory, time.Now().Unix())
			if err != nil {
				return err
			}

			// The picker draws only on /dev/tty, so printing here reaches
			// the calling shell's own stdout, not the alternate screen;
			// the deferred sess.Close restores the terminal afterwards.
			switch result.Outcome {
			case recall.OutcomeRun:
				fmt.Fprintln(cmd.OutOrStdout(), "RUN:"+result.Command)
			case recall.OutcomeEdit:
				fmt.Fprintln(cmd.OutOrStdout(), "EDIT:"+result.Command)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&global, "global", "g", false, "search the whole history instead of just the current directory")

	return cmd
}
