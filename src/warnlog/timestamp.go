package warnlog

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Exact layouts tried in priority order. Day-first deliberately comes before any
// permissive parse so "03/04/2024" always means day 3, month 4, even when the
// value would also be a valid month-first date.
var exactLayouts = []string{
	"02/01/2006 15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp converts a raw timestamp field into an instant. ok=false means
// the value matched none of the accepted forms; callers drop such rows rather
// than treating them as errors.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range exactLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
