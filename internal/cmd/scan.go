package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/query"
	"github.com/harrison/pxhist/internal/secrets"
)

func newScanCommand() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Report history rows that look like they contain a secret",
		Long: `Scan runs a catalogue of regexps (see internal/secrets) against every
stored command and prints one line per match: the row id, which pattern
fired, and the command text. It only reports; use "pxhist scrub" to
remove what it finds.`,
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

			matches, err := query.ScanRows(cmd.Context(), s, patterns)
			if err != nil {
				return err
			}

			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", m.Row.ID, m.Label, m.Row.FullCommand.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", "run a single custom regexp instead of the built-in catalogue")

	return cmd
}
