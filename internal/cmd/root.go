// Package cmd wires the cobra command tree: one thin subcommand per
// operation, each calling straight into store/importers/query/search/recall.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/pxhist/internal/config"
	"github.com/harrison/pxhist/internal/logger"
	"github.com/harrison/pxhist/internal/store"
)

// Version is set by cmd/pxhist's main from its Version constant before
// Execute runs.
var Version = "dev"

var (
	dbPath   string
	logLevel string
)

// newLogger builds the diagnostic logger a subcommand's RunE reaches for,
// filtered at the level the --log-level persistent flag resolved to.
func newLogger() *logger.ConsoleLogger {
	return logger.New(os.Stderr, logLevel)
}

// NewRootCommand builds the pxhist root command and registers every
// subcommand.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pxhist",
		Short: "Cross-shell, cross-machine command history",
		Long: `pxhist records every command a shell runs into a shared sqlite
store, keyed by session, host, and working directory, and gives it back
to you through "show", "export", and the "recall" fuzzy picker.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the history store (default: $PXH_HOME/history.db, or $PXH_DB_PATH)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "diagnostic log verbosity: trace, debug, info, warn, error")

	cmd.AddCommand(
		newInsertCommand(),
		newImportCommand(),
		newExportCommand(),
		newSealCommand(),
		newShowCommand(),
		newRecallCommand(),
		newShellConfigCommand(),
		newInstallCommand(),
		newScanCommand(),
		newScrubCommand(),
		newSyncCommand(),
	)

	return cmd
}

// resolveDBPath honors --db first, then PXH_DB_PATH / $PXH_HOME/history.db
// via config.GetStorePath.
func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return config.GetStorePath()
}

// openStore resolves the configured db path and opens it, the setup every
// subcommand except shell-config/install needs.
func openStore() (*store.Store, error) {
	path, err := resolveDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}
	return store.Open(path)
}

// Execute runs the root command and handles top-level error reporting.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
