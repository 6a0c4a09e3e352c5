package display

import (
	"fmt"
	"io"
)

// ProgressIndicator reports progress of a multi-record import or scan pass.
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
	label   string
}

// NewProgressIndicator creates a new progress indicator for total records.
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{writer: w, total: total}
}

// Start displays the header message.
func (p *ProgressIndicator) Start(label string) {
	p.label = label
	fmt.Fprintf(p.writer, "%s %d record(s)...\n", label, p.total)
}

// Step advances and displays progress for the current record.
func (p *ProgressIndicator) Step(description string) {
	p.current++
	fmt.Fprintf(p.writer, "\x1b[34m  [%d/%d] %s\x1b[0m\n", p.current, p.total, description)
}

// Complete displays a success message with a green checkmark.
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m %s complete: %d record(s)\n", p.label, p.current)
}
