package query

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// RenderHumanReadable writes rows as a plain-text table. The non-verbose
// form is two columns (start time, command); verbose adds duration,
// session, and working directory, matching
// original_source's show_subcommand_human_readable column sets
// ("start_time","command") and
// ("start_time","duration","session","context","command").
func RenderHumanReadable(w io.Writer, rows []Row, verbose bool) error {
	successColor := color.New(color.FgGreen)
	failColor := color.New(color.FgRed)

	for _, r := range rows {
		startTime := "?"
		if r.StartUnixTime != nil {
			startTime = time.Unix(*r.StartUnixTime, 0).Format("2006-01-02 15:04:05")
		}

		if !verbose {
			if _, err := fmt.Fprintf(w, "%s  %s\n", startTime, r.FullCommand.String()); err != nil {
				return err
			}
			continue
		}

		duration := "?"
		if r.StartUnixTime != nil && r.EndUnixTime != nil {
			duration = (time.Duration(*r.EndUnixTime-*r.StartUnixTime) * time.Second).String()
		}

		exitStatus := ""
		if r.ExitStatus != nil {
			if *r.ExitStatus == 0 {
				exitStatus = successColor.Sprintf("[%d]", *r.ExitStatus)
			} else {
				exitStatus = failColor.Sprintf("[%d]", *r.ExitStatus)
			}
		}

		context := ""
		if r.WorkingDirectory != nil {
			context = r.WorkingDirectory.String()
		}

		if _, err := fmt.Fprintf(w, "%s  %-8s  session=%d  %s %s  %s\n",
			startTime, duration, r.SessionID, context, exitStatus, r.FullCommand.String()); err != nil {
			return err
		}
	}

	return nil
}
