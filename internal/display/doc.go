// Package display provides terminal output utilities shared by the non-interactive
// CLI commands (import, scan, scrub). It centralizes ANSI color codes and
// user-facing formatting so the recall TUI (internal/recall) remains the only
// place that manages raw terminal mode.
//
// # Progress
//
//	progress := display.NewProgressIndicator(os.Stdout, len(files))
//	progress.Start("Importing")
//	for _, f := range files {
//	    progress.Step(f)
//	}
//	progress.Complete()
//
// # Warnings
//
//	display.Warning{
//	    Title:   "Skipped malformed line",
//	    Message: "line 42 did not match the zsh extended history format",
//	}.Display(os.Stderr)
package display
