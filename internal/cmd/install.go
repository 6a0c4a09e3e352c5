package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newInstallCommand() *cobra.Command {
	var shellname string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Append the shell integration snippet to the current shell's rc file",
		Long: `Install is shell-config's one-step counterpart: it appends
'eval "$(pxhist shell-config <shellname>)"' to ~/.zshrc or ~/.bashrc,
skipping the append if a pxhist line is already present. Run shell-config
directly if you'd rather review or place the snippet by hand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shellname == "" {
				shellname = filepath.Base(os.Getenv("SHELL"))
			}

			rcFile, err := rcFileFor(shellname)
			if err != nil {
				return err
			}

			line := fmt.Sprintf(`eval "$(pxhist shell-config %s)"`, shellname)

			existing, err := os.ReadFile(rcFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("read %s: %w", rcFile, err)
			}
			if strings.Contains(string(existing), "pxhist shell-config") {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already integrates pxhist, nothing to do\n", rcFile)
				return nil
			}

			f, err := os.OpenFile(rcFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return fmt.Errorf("open %s: %w", rcFile, err)
			}
			defer f.Close()

			if _, err := fmt.Fprintf(f, "\n# added by pxhist install\n%s\n", line); err != nil {
				return fmt.Errorf("write %s: %w", rcFile, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "added pxhist integration to %s, restart your shell to pick it up\n", rcFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&shellname, "shellname", "", "shell to install for (default: $SHELL)")

	return cmd
}

func rcFileFor(shellname string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch shellname {
	case "zsh":
		return filepath.Join(home, ".zshrc"), nil
	case "bash":
		return filepath.Join(home, ".bashrc"), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (PRs welcome!)", shellname)
	}
}
