package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newSyncCommand() *cobra.Command {
	var (
		remote string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy the local history store to a remote machine",
		Long: `Sync shells out to rsync over ssh to replicate the history store
file, the same approach pxhist's own multi-machine setups use: no custom
wire protocol, just "rsync -e ssh" from the resolved local --db path to the
--remote destination. --remote takes the same form rsync does:
[user@]host:path. Copying goes one way only, local to remote; sync does not
fetch a remote store, and it does not merge the two stores' rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if remote == "" {
				return fmt.Errorf("--remote is required, e.g. --remote host:~/.pxh/history.db")
			}

			localPath, err := resolveDBPath()
			if err != nil {
				return err
			}

			rsyncArgs := []string{"-az", "-e", "ssh", localPath, remote}
			if dryRun {
				rsyncArgs = append([]string{"--dry-run"}, rsyncArgs...)
			}

			log := newLogger()
			log.Infof("syncing %s to %s", localPath, remote)

			rsync := exec.CommandContext(cmd.Context(), "rsync", rsyncArgs...)
			rsync.Stdout = cmd.OutOrStdout()
			rsync.Stderr = cmd.ErrOrStderr()
			rsync.Stdin = os.Stdin

			if err := rsync.Run(); err != nil {
				log.Errorf("rsync failed: %v", err)
				return fmt.Errorf("rsync %s to %s: %w", localPath, remote, err)
			}
			log.Infof("sync complete")
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "remote destination, rsync syntax: [user@]host:path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "pass --dry-run through to rsync")

	return cmd
}
