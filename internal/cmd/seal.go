package cmd

import (
	"github.com/spf13/cobra"
)

func newSealCommand() *cobra.Command {
	var (
		sessionID        int64
		exitStatus       int64
		endUnixTimestamp int64
	)

	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Fill in the exit status and end time of the session's most recent invocation",
		Long: `Seal is the second half of the insert/seal pair a shell's precmd hook
runs: it finds the most recently inserted row for session-id and, if that
row is still unsealed (exit_status and end_unix_timestamp both NULL),
fills in both fields. A session that seals twice in a row without an intervening insert
is a no-op the second time, since the WHERE clause no longer matches any
row.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			return s.Seal(cmd.Context(), sessionID, exitStatus, endUnixTimestamp)
		},
	}

	cmd.Flags().Int64Var(&sessionID, "session-id", 0, "session id to seal, shared with insert")
	cmd.Flags().Int64Var(&exitStatus, "exit-status", 0, "command's exit status")
	cmd.Flags().Int64Var(&endUnixTimestamp, "end-unix-timestamp", 0, "command end time, unix seconds")

	cmd.MarkFlagRequired("session-id")
	cmd.MarkFlagRequired("exit-status")
	cmd.MarkFlagRequired("end-unix-timestamp")

	return cmd
}
