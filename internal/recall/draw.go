package recall

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/harrison/pxhist/internal/search"
)

const previewHeight = 5

const (
	ansiReset     = "\x1b[0m"
	ansiFgYellow  = "\x1b[33m"
	ansiFgMagenta = "\x1b[35m"
	ansiFgCyan    = "\x1b[36m"
	ansiFgGrey    = "\x1b[90m"
	ansiBgGrey    = "\x1b[100m"
)

func moveTo(w io.Writer, col, row int) {
	fmt.Fprintf(w, "\x1b[%d;%dH", row+1, col+1)
}

func clearLine(w io.Writer) {
	io.WriteString(w, "\x1b[2K")
}

// draw renders one full frame: the results list (newest at the bottom),
// the preview pane, the input line, and the help line. Layout mirrors
// original_source/src/recall/tui.rs's draw: row 0 is the oldest visible
// entry, the bottom results row holds scrollOffset, and line-wrap is
// disabled for the duration of the render to avoid long commands
// wrapping mid-draw.
func (s *state) draw(w io.Writer, termWidth, termHeight int, nowUnix int64) {
	s.termHeight = termHeight
	resultsHeight := s.resultsHeight()
	previewStartY := resultsHeight
	inputY := termHeight - 2
	helpY := termHeight - 1

	io.WriteString(w, "\x1b[?7l")

	for row := 0; row < resultsHeight; row++ {
		moveTo(w, 0, row)
		clearLine(w)

		offsetFromBottom := resultsHeight - 1 - row
		entryIndex := s.scrollOffset + offsetFromBottom
		if entryIndex >= len(s.results) {
			continue
		}

		result := s.results[entryIndex]
		isSelected := entryIndex == s.selectedIndex
		s.drawResultRow(w, result, entryIndex, isSelected, termWidth, nowUnix)
	}

	if s.showPreview {
		s.drawPreview(w, previewStartY, termWidth)
	}

	moveTo(w, 0, inputY)
	clearLine(w)
	fmt.Fprintf(w, "> %s", s.queryString())

	modeStr := s.modeIndicator()
	modeX := termWidth - len(modeStr) - 1
	if modeX < 0 {
		modeX = 0
	}
	moveTo(w, modeX, inputY)
	io.WriteString(w, ansiFgCyan)
	io.WriteString(w, modeStr)
	io.WriteString(w, ansiReset)

	moveTo(w, 0, helpY)
	clearLine(w)
	io.WriteString(w, ansiFgGrey)
	io.WriteString(w, "up/down,^R Nav  Enter Run  Tab Edit  ^H Host  Alt-1-9 Quick")
	io.WriteString(w, ansiReset)

	moveTo(w, 2+s.cursorPosition, inputY)
	io.WriteString(w, "\x1b[?7h")
}

func (s *state) drawResultRow(w io.Writer, result search.Result, entryIndex int, isSelected bool, termWidth int, nowUnix int64) {
	timeStr := search.FormatRelativeTime(nowUnix, result.Entry.Timestamp)

	quickNum := 0
	if entryIndex >= s.selectedIndex && entryIndex < s.selectedIndex+9 {
		quickNum = entryIndex - s.selectedIndex + 1
	}

	if isSelected {
		io.WriteString(w, ansiBgGrey)
	}

	switch {
	case quickNum > 0:
		io.WriteString(w, ansiFgYellow)
		fmt.Fprintf(w, "%d", quickNum)
		io.WriteString(w, ansiReset)
		if isSelected {
			io.WriteString(w, ansiBgGrey)
			io.WriteString(w, ">")
		} else {
			io.WriteString(w, " ")
		}
	case isSelected:
		io.WriteString(w, " >")
	default:
		io.WriteString(w, "  ")
	}

	io.WriteString(w, ansiFgGrey)
	fmt.Fprintf(w, "%s  ", timeStr)
	io.WriteString(w, ansiReset)

	if isSelected {
		io.WriteString(w, ansiBgGrey)
	}

	hostPrefix := ""
	if s.hostFilter == search.HostFilterAny && result.Entry.Hostname != nil && *result.Entry.Hostname != s.currentHostname {
		hostPrefix = fmt.Sprintf("@%s: ", firstLabel(*result.Entry.Hostname))
	}
	if hostPrefix != "" {
		io.WriteString(w, ansiFgMagenta)
		io.WriteString(w, hostPrefix)
		io.WriteString(w, ansiReset)
		if isSelected {
			io.WriteString(w, ansiBgGrey)
		}
	}

	safeCmd := SanitizeForDisplay(result.Entry.Command)
	prefixLen := 9 + len([]rune(hostPrefix))
	maxCmdLen := termWidth - prefixLen
	if maxCmdLen < 0 {
		maxCmdLen = 0
	}
	io.WriteString(w, truncateRunes(safeCmd, maxCmdLen))
	io.WriteString(w, ansiReset)
}

func firstLabel(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncateRunes clips s to at most maxLen terminal display columns,
// accounting for double-width CJK/emoji runes so the frame stays aligned
// even when a recorded command contains wide characters.
func truncateRunes(s string, maxLen int) string {
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

func (s *state) modeIndicator() string {
	var hostStr string
	if s.hostFilter == search.HostFilterThisHost {
		hostStr = fmt.Sprintf("[%s]", firstLabel(s.currentHostname))
	} else {
		hostStr = "[All Hosts]"
	}

	var dirStr string
	if s.filterMode == search.ScopeDirectory {
		dirStr = fmt.Sprintf("[Dir: %s]", baseName(s.workingDirectory))
	} else {
		dirStr = "[Global]"
	}

	return hostStr + " " + dirStr
}

func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 && i+1 < len(path) {
		return path[i+1:]
	}
	if path == "" {
		return "?"
	}
	return path
}

func (s *state) drawPreview(w io.Writer, startY, width int) {
	moveTo(w, 0, startY)
	clearLine(w)
	io.WriteString(w, ansiFgGrey)
	io.WriteString(w, strings.Repeat("-", width))
	io.WriteString(w, ansiReset)

	result := s.selectedResult()
	if result == nil {
		for row := 1; row < previewHeight; row++ {
			moveTo(w, 0, startY+row)
			clearLine(w)
		}
		return
	}

	moveTo(w, 0, startY+1)
	clearLine(w)
	safeCmd := SanitizeForDisplay(result.Entry.Command)
	cmdDisplay := truncateRunes(safeCmd, width-2)
	fmt.Fprintf(w, "  %s", cmdDisplay)

	moveTo(w, 0, startY+2)
	clearLine(w)
	var infoParts []string
	if s.previewConfig.ShowDirectory && result.Entry.WorkingDirectory != nil {
		infoParts = append(infoParts, "Dir: "+*result.Entry.WorkingDirectory)
	}
	if s.previewConfig.ShowTimestamp && result.Entry.Timestamp != nil {
		t := time.Unix(*result.Entry.Timestamp, 0)
		infoParts = append(infoParts, "Time: "+t.Format("2006-01-02 15:04:05"))
	}
	io.WriteString(w, ansiFgGrey)
	fmt.Fprintf(w, "  %s", strings.Join(infoParts, "  "))
	io.WriteString(w, ansiReset)

	moveTo(w, 0, startY+3)
	clearLine(w)
	var statusParts []string
	if s.previewConfig.ShowExitStatus && result.Entry.ExitStatus != nil {
		if *result.Entry.ExitStatus == 0 {
			statusParts = append(statusParts, "Status: 0 (ok)")
		} else {
			statusParts = append(statusParts, fmt.Sprintf("Status: %d (error)", *result.Entry.ExitStatus))
		}
	}
	if s.previewConfig.ShowDuration && result.Entry.DurationSecs != nil {
		statusParts = append(statusParts, formatDuration(*result.Entry.DurationSecs))
	}
	if s.previewConfig.ShowHostname && result.Entry.Hostname != nil {
		statusParts = append(statusParts, "Host: "+*result.Entry.Hostname)
	}
	io.WriteString(w, ansiFgGrey)
	fmt.Fprintf(w, "  %s", strings.Join(statusParts, "  "))
	io.WriteString(w, ansiReset)

	moveTo(w, 0, startY+4)
	clearLine(w)
}

func formatDuration(secs int64) string {
	switch {
	case secs < 60:
		return fmt.Sprintf("Duration: %ds", secs)
	case secs < 3600:
		return fmt.Sprintf("Duration: %dm %ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("Duration: %dh %dm", secs/3600, (secs%3600)/60)
	}
}
