package search

import "fmt"

// FormatRelativeTime renders the age of a timestamp as a fixed
// width-3 string for the recall picker's result rows: a nil or
// future timestamp is three spaces, otherwise a right-aligned 2-digit
// number plus a unit letter (s/m/h/d/w/M/y). Bucket boundaries match
// original_source/src/recall/engine.rs's format_relative_time exactly.
func FormatRelativeTime(nowUnix int64, ts *int64) string {
	if ts == nil {
		return "   "
	}

	delta := nowUnix - *ts
	if delta < 0 {
		return "   "
	}

	switch {
	case delta < 60:
		return fmt.Sprintf("%2ds", delta)
	case delta < 60*60:
		return fmt.Sprintf("%2dm", delta/60)
	case delta < 60*60*24:
		return fmt.Sprintf("%2dh", delta/(60*60))
	case delta < 60*60*24*7:
		return fmt.Sprintf("%2dd", delta/(60*60*24))
	case delta < 60*60*24*30:
		return fmt.Sprintf("%2dw", delta/(60*60*24*7))
	case delta < 60*60*24*365:
		return fmt.Sprintf("%2dM", delta/(60*60*24*30))
	default:
		return fmt.Sprintf("%2dy", delta/(60*60*24*365))
	}
}
