package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/query"
)

func newShowCommand() *cobra.Command {
	var (
		limit   int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:     "show [substring]",
		Aliases: []string{"s"},
		Short:   "List recent history, optionally filtered by a regex substring",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			substring := ""
			if len(args) == 1 {
				substring = args[0]
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			rows, err := query.Show(cmd.Context(), s, limit, substring)
			if err != nil {
				return err
			}

			return query.RenderHumanReadable(cmd.OutOrStdout(), rows, verbose)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows to show")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show duration, session, and working directory columns")

	return cmd
}
