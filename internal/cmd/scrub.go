package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/fileedit"
	"github.com/harrison/pxhist/internal/query"
	"github.com/harrison/pxhist/internal/secrets"
)

func newScrubCommand() *cobra.Command {
	var (
		pattern  string
		histfile string
	)

	cmd := &cobra.Command{
		Use:   "scrub",
		Short: "Delete history rows that look like they contain a secret",
		Long: `Scrub deletes every row that "pxhist scan" would report from the
store. Pass --histfile to also strip matching lines from a live shell
history file on disk (the file is edited atomically: a lockfile guards
concurrent writers, and the rewritten file is renamed into place).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			patterns := secrets.DefaultPatterns()
			if pattern != "" {
				patterns = []query.SecretPattern{{Label: "custom", Pattern: pattern}}
			}

			log := newLogger()

			matches, err := query.ScanRows(cmd.Context(), s, patterns)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				log.Infof("no rows matched %d pattern(s)", len(patterns))
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to scrub")
				return nil
			}

			ids := make([]int64, len(matches))
			for i, m := range matches {
				ids[i] = m.Row.ID
			}
			if err := query.ScrubRows(cmd.Context(), s, ids); err != nil {
				log.Errorf("scrub failed: %v", err)
				return err
			}
			log.Infof("deleted %d row(s)", len(ids))
			fmt.Fprintf(cmd.OutOrStdout(), "scrubbed %d row(s) from the store\n", len(ids))

			if histfile != "" {
				for _, m := range matches {
					if err := fileedit.RemoveLinesContaining(histfile, m.Row.FullCommand.Bytes()); err != nil {
						return fmt.Errorf("scrub histfile %s: %w", histfile, err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "scrubbed matching lines from %s\n", histfile)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "run a single custom regexp instead of the built-in catalogue")
	cmd.Flags().StringVar(&histfile, "histfile", "", "also remove matching lines from this shell history file")

	return cmd
}
