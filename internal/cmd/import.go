package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/display"
	"github.com/harrison/pxhist/internal/importers"
	"github.com/harrison/pxhist/internal/pxherr"
	"github.com/harrison/pxhist/internal/pxhist"
)

func newImportCommand() *cobra.Command {
	var (
		histfile  string
		shellname string
		hostname  string
		username  string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import an existing shell history file",
		Long: `Import parses histfile in the format named by --shellname (zsh, bash,
or json, pxhist's own export format), deduplicates adjacent repeats, and
appends the result to the store in a single transaction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			invs, err := importHistfile(shellname, histfile, hostname, username)
			malformed := errors.Is(err, pxherr.ErrImportMalformed)
			if err != nil && !malformed {
				return err
			}

			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			progress := display.NewProgressIndicator(cmd.OutOrStdout(), len(invs))
			progress.Start(fmt.Sprintf("Importing %s history from %s", shellname, histfile))

			if err := s.AppendBatch(cmd.Context(), invs); err != nil {
				return err
			}
			for _, inv := range invs {
				progress.Step(inv.Command.String())
			}
			progress.Complete()

			if malformed {
				display.Warning{
					Title:      "Skipped malformed history lines",
					Message:    histfile,
					Suggestion: "Lines that didn't match the expected format were left out of the import.",
				}.Display(cmd.ErrOrStderr())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&histfile, "histfile", "", "path to the history file to import")
	cmd.Flags().StringVar(&shellname, "shellname", "", "history file format: zsh, bash, or json")
	cmd.Flags().StringVar(&hostname, "hostname", "", "hostname override (default: $HOST)")
	cmd.Flags().StringVar(&username, "username", "", "username override (default: current user)")

	cmd.MarkFlagRequired("histfile")
	cmd.MarkFlagRequired("shellname")

	return cmd
}

// importHistfile dispatches to the importer named by shellname, mirroring
// original_source/src/main.rs's import_subcommand match.
func importHistfile(shellname, histfile, hostname, username string) ([]pxhist.Invocation, error) {
	switch shellname {
	case "zsh":
		return importers.ImportZsh(histfile, hostname, username)
	case "bash":
		return importers.ImportBash(histfile, hostname, username)
	case "json":
		return importers.ImportJSON(histfile)
	default:
		return nil, fmt.Errorf("unsupported shell %q (PRs welcome!)", shellname)
	}
}
