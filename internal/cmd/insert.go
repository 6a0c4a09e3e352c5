package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/pxhist"
)

func newInsertCommand() *cobra.Command {
	var (
		shellname        string
		hostname         string
		username         string
		workingDirectory string
		exitStatus       int64
		hasExitStatus    bool
		sessionID        int64
		startTS          int64
		hasStartTS       bool
		endTS            int64
		hasEndTS         bool
	)

	cmd := &cobra.Command{
		Use:   "insert -- <command words...>",
		Short: "Record one invocation",
		Long: `Insert writes a single command_history row, the record a shell's
preexec hook appends at command start (before the exit status is known).
A later "pxhist seal" fills in exit_status and end_unix_timestamp once the
command finishes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			inv := pxhist.Invocation{
				Command:          pxhist.NewBinaryString(pxhist.JoinCommandWords(args)),
				ShellName:        shellname,
				Hostname:         optionalBinaryString(hostname),
				Username:         optionalBinaryString(username),
				WorkingDirectory: optionalBinaryString(workingDirectory),
				SessionID:        sessionID,
			}
			if hasExitStatus {
				inv.ExitStatus = &exitStatus
			}
			if hasStartTS {
				inv.StartUnixTime = &startTS
			}
			if hasEndTS {
				inv.EndUnixTime = &endTS
			}

			return s.Append(cmd.Context(), inv)
		},
	}

	cmd.Flags().StringVar(&shellname, "shellname", "", "shell that ran the command")
	cmd.Flags().StringVar(&hostname, "hostname", "", "hostname the command ran on")
	cmd.Flags().StringVar(&username, "username", "", "user that ran the command")
	cmd.Flags().StringVar(&workingDirectory, "working-directory", "", "directory the command ran in")
	cmd.Flags().Int64Var(&sessionID, "session-id", 0, "shell session id, shared by insert and seal")
	cmd.Flags().Var(newOptionalInt64Flag(&exitStatus, &hasExitStatus), "exit-status", "exit status, when already known")
	cmd.Flags().Var(newOptionalInt64Flag(&startTS, &hasStartTS), "start-unix-timestamp", "command start time, unix seconds")
	cmd.Flags().Var(newOptionalInt64Flag(&endTS, &hasEndTS), "end-unix-timestamp", "command end time, unix seconds")

	cmd.MarkFlagRequired("shellname")
	cmd.MarkFlagRequired("session-id")

	return cmd
}

func optionalBinaryString(s string) *pxhist.BinaryString {
	if s == "" {
		return nil
	}
	b := pxhist.TextBinaryString(s)
	return &b
}
