package uihelpers

import (
	"testing"
	"time"
)

func TestComputeChartDimensions(t *testing.T) {
	w, h := ComputeChartDimensions(100)
	if w != 800 {
		t.Fatalf("small widths must clamp to 800, got %d", w)
	}
	if h < 300 || h > 560 {
		t.Fatalf("height out of clamp range: %d", h)
	}
	w, h = ComputeChartDimensions(3000)
	if w != 3000 {
		t.Fatalf("large width should pass through, got %d", w)
	}
	if h != 560 {
		t.Fatalf("height must cap at 560, got %d", h)
	}
}

func TestSummaryColumnWidths(t *testing.T) {
	narrow := SummaryColumnWidths(500)
	wide := SummaryColumnWidths(1200)
	for i := range narrow {
		if narrow[i] <= 0 || wide[i] <= 0 {
			t.Fatalf("column %d has non-positive width", i)
		}
		if narrow[i] > wide[i] {
			t.Fatalf("column %d narrower layout wider than wide layout", i)
		}
	}
}

func TestClampIndexRange(t *testing.T) {
	cases := []struct {
		start, end, n, wantStart, wantEnd int
	}{
		{0, 5, 6, 0, 5},
		{-3, 99, 6, 0, 5},
		{4, 1, 6, 1, 4}, // inverted pair swaps
		{2, 2, 6, 2, 2},
		{1, 3, 0, 0, 0},
	}
	for _, c := range cases {
		s, e := ClampIndexRange(c.start, c.end, c.n)
		if s != c.wantStart || e != c.wantEnd {
			t.Fatalf("ClampIndexRange(%d,%d,%d)=(%d,%d) want (%d,%d)",
				c.start, c.end, c.n, s, e, c.wantStart, c.wantEnd)
		}
	}
}

func TestMinuteSliderLabel(t *testing.T) {
	minutes := []time.Time{time.Date(2024, time.January, 1, 10, 4, 0, 0, time.UTC)}
	if got := MinuteSliderLabel(minutes, 0); got != "2024-01-01 10:04" {
		t.Fatalf("label: %q", got)
	}
	if got := MinuteSliderLabel(minutes, 1); got != "" {
		t.Fatalf("out-of-range label must be empty, got %q", got)
	}
	if got := MinuteSliderLabel(nil, 0); got != "" {
		t.Fatalf("empty axis label must be empty, got %q", got)
	}
}

func TestParseTopN(t *testing.T) {
	if ParseTopN("7") != 7 {
		t.Fatalf("plain number")
	}
	if ParseTopN("default") != 0 {
		t.Fatalf("unparseable must fall back to 0")
	}
	if ParseTopN("-3") != 0 {
		t.Fatalf("negative must fall back to 0")
	}
}
