package warnlog

import (
	"testing"
	"time"
)

func TestParseTimestampDayFirstPriority(t *testing.T) {
	// Ambiguous value: valid as both day/month and month/day. Day-first must win.
	ts, ok := ParseTimestamp("03/04/2024 10:00:00")
	if !ok {
		t.Fatalf("expected parse success")
	}
	if ts.Day() != 3 || ts.Month() != time.April || ts.Year() != 2024 {
		t.Fatalf("expected day=3 month=4, got %v", ts)
	}
}

func TestParseTimestampDayFirstUnambiguous(t *testing.T) {
	// 31 cannot be a month; must still parse via the day-first layout, not fail.
	ts, ok := ParseTimestamp("31/12/2023 23:59:59")
	if !ok {
		t.Fatalf("expected parse success")
	}
	want := time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v want %v", ts, want)
	}
}

func TestParseTimestampYearFirst(t *testing.T) {
	ts, ok := ParseTimestamp("2024-01-01 10:00:30")
	if !ok {
		t.Fatalf("expected parse success")
	}
	want := time.Date(2024, time.January, 1, 10, 0, 30, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v want %v", ts, want)
	}
}

func TestParseTimestampPermissiveFallback(t *testing.T) {
	// Neither exact layout matches; the general-purpose parser should cope.
	if _, ok := ParseTimestamp("2024-01-02T10:00:00Z"); !ok {
		t.Fatalf("expected fallback to parse RFC3339")
	}
	if _, ok := ParseTimestamp("Jan 2, 2024 10:00:00"); !ok {
		t.Fatalf("expected fallback to parse long form")
	}
}

func TestParseTimestampFailure(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-time", "99/99/9999 99:99:99"} {
		if ts, ok := ParseTimestamp(in); ok {
			t.Fatalf("expected failure for %q, got %v", in, ts)
		}
	}
}

func TestParseTimestampTrimsWhitespace(t *testing.T) {
	if _, ok := ParseTimestamp("  2024-01-01 10:00:00  "); !ok {
		t.Fatalf("expected surrounding whitespace to be tolerated")
	}
}
