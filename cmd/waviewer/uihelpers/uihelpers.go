// Package uihelpers holds pure layout helpers for the viewer so they stay
// testable without a fyne context.
package uihelpers

import (
	"strconv"
	"time"
)

// ComputeChartDimensions applies the width/height clamp rules used for charts.
// Input: desired raw width (e.g. canvas width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.36)
	if h < 300 {
		h = 300
	}
	if h > 560 {
		h = 560
	}
	return w, h
}

// SummaryColumnWidths returns the 5 column widths for the summary table given a
// window width. Order: Subsystem, Total, Mean/min, Peak minute, Peak count.
func SummaryColumnWidths(winW float32) [5]int {
	const compactBreakpoint = 760
	if winW < compactBreakpoint {
		return [5]int{150, 60, 80, 130, 60}
	}
	return [5]int{240, 80, 110, 170, 90}
}

// ClampIndexRange bounds a start/end index pair to [0, n-1] and swaps the pair
// when it is inverted. n<=0 yields (0,0).
func ClampIndexRange(start, end, n int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v >= n {
			return n - 1
		}
		return v
	}
	start, end = clamp(start), clamp(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}

// MinuteSliderLabel formats the minute at idx for display next to a slider.
// Out-of-range indexes return an empty label.
func MinuteSliderLabel(minutes []time.Time, idx int) string {
	if idx < 0 || idx >= len(minutes) {
		return ""
	}
	return minutes[idx].Format("2006-01-02 15:04")
}

// ParseTopN converts the Top-N selector text to an int; anything unparseable
// falls back to 0, which selects the aggregation default.
func ParseTopN(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
