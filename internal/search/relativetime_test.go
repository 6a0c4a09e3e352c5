package search

import "testing"

func TestFormatRelativeTimeNone(t *testing.T) {
	if got := FormatRelativeTime(1000, nil); got != "   " {
		t.Errorf("FormatRelativeTime(nil) = %q, want 3 spaces", got)
	}
}

func TestFormatRelativeTimeFuture(t *testing.T) {
	now := int64(1000)
	ts := now + 30
	if got := FormatRelativeTime(now, &ts); got != "   " {
		t.Errorf("FormatRelativeTime(+30s) = %q, want 3 spaces", got)
	}
}

func TestFormatRelativeTimeSeconds(t *testing.T) {
	now := int64(1000)
	ts := now - 30
	if got := FormatRelativeTime(now, &ts); got != "30s" {
		t.Errorf("FormatRelativeTime(-30s) = %q, want %q", got, "30s")
	}

	ts = now - 5
	if got := FormatRelativeTime(now, &ts); got != " 5s" {
		t.Errorf("FormatRelativeTime(-5s) = %q, want %q", got, " 5s")
	}
}

func TestFormatRelativeTimeMinutes(t *testing.T) {
	now := int64(10000)
	ts := now - 120
	if got := FormatRelativeTime(now, &ts); got != " 2m" {
		t.Errorf("FormatRelativeTime(-120s) = %q, want %q", got, " 2m")
	}

	ts = now - 59*60
	if got := FormatRelativeTime(now, &ts); got != "59m" {
		t.Errorf("FormatRelativeTime(-59m) = %q, want %q", got, "59m")
	}
}

func TestFormatRelativeTimeHours(t *testing.T) {
	now := int64(100000)
	ts := now - 7200
	if got := FormatRelativeTime(now, &ts); got != " 2h" {
		t.Errorf("FormatRelativeTime(-7200s) = %q, want %q", got, " 2h")
	}

	ts = now - 23*60*60
	if got := FormatRelativeTime(now, &ts); got != "23h" {
		t.Errorf("FormatRelativeTime(-23h) = %q, want %q", got, "23h")
	}
}

func TestFormatRelativeTimeDays(t *testing.T) {
	now := int64(1000000)
	ts := now - 2*86400
	if got := FormatRelativeTime(now, &ts); got != " 2d" {
		t.Errorf("FormatRelativeTime(-2d) = %q, want %q", got, " 2d")
	}

	ts = now - 6*86400
	if got := FormatRelativeTime(now, &ts); got != " 6d" {
		t.Errorf("FormatRelativeTime(-6d) = %q, want %q", got, " 6d")
	}
}

func TestFormatRelativeTimeWeeksMonthsYears(t *testing.T) {
	now := int64(100000000)

	ts := now - 10*86400
	if got := FormatRelativeTime(now, &ts); got != " 1w" {
		t.Errorf("FormatRelativeTime(-10d) = %q, want %q", got, " 1w")
	}

	ts = now - 60*86400
	if got := FormatRelativeTime(now, &ts); got != " 2M" {
		t.Errorf("FormatRelativeTime(-60d) = %q, want %q", got, " 2M")
	}

	ts = now - 400*86400
	if got := FormatRelativeTime(now, &ts); got != " 1y" {
		t.Errorf("FormatRelativeTime(-400d) = %q, want %q", got, " 1y")
	}
}
