package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/query"
)

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write every history row as JSON to stdout",
		Long: `Export dumps the entire store as a single JSON array, in insertion
order. The output is the format "pxhist import --shellname json" reads
back, so it doubles as a machine-to-machine transfer mechanism.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			rows, err := query.Export(cmd.Context(), s)
			if err != nil {
				return err
			}
			return query.WriteJSON(cmd.OutOrStdout(), rows)
		},
	}
}
