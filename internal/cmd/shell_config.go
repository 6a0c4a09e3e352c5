package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/shellconfig"
)

func newShellConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell-config <zsh|bash>",
		Short: "Print the shell integration snippet for shellname",
		Long: `Shell-config writes the preexec/precmd hooks and Ctrl-R keybinding
for the named shell to stdout. Add it to your rc file with:

    echo 'eval "$(pxhist shell-config zsh)"' >> ~/.zshrc

bash additionally requires bash-preexec (https://github.com/rcaloras/bash-preexec)
sourced ahead of this snippet, since stock bash has no preexec hook.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, err := shellconfig.Config(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), contents)
			return err
		},
	}
}
