// Package aggregate derives minute-bucketed tables from a parsed warnings dataset.
// Every function is a pure transform of its inputs; callers recompute on each
// parameter change instead of mutating earlier results.
package aggregate

import (
	"sort"
	"time"

	"github.com/akoelman/WarningsAnalyzer/src/warnlog"
)

// MinutePoint is one bucket of the total-per-minute series.
type MinutePoint struct {
	Minute time.Time
	Count  int
}

// PerMinuteTotal groups records by minute and counts them, minute-ascending.
// The sum over all buckets equals the record count of the input.
func PerMinuteTotal(ds *warnlog.Dataset) []MinutePoint {
	counts := map[time.Time]int{}
	for _, r := range ds.Records {
		counts[r.Minute]++
	}
	out := make([]MinutePoint, 0, len(counts))
	for m, c := range counts {
		out = append(out, MinutePoint{Minute: m, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Minute.Before(out[j].Minute) })
	return out
}

// SubsystemTable is the dense per-minute-per-subsystem count table: one row per
// observed minute (ascending), one column per subsystem, zero where a subsystem
// logged nothing during a minute another one did. Gap minutes between observed
// ones are never synthesized; sparse data keeps a sparse minute axis.
type SubsystemTable struct {
	Minutes    []time.Time
	Subsystems []string
	Counts     [][]int // indexed [minute][subsystem]
}

// PerMinuteBySubsystem builds the dense table from records that carry a Subsystem
// column. Rows too short to reach it are left out of the table (they still count
// in PerMinuteTotal). Column order follows first occurrence in the input.
func PerMinuteBySubsystem(ds *warnlog.Dataset) *SubsystemTable {
	type cell struct {
		minute    time.Time
		subsystem string
	}
	counts := map[cell]int{}
	minuteSet := map[time.Time]bool{}
	seen := map[string]bool{}
	var subsystems []string
	for _, r := range ds.Records {
		sub, ok := r.Subsystem()
		if !ok {
			continue
		}
		if !seen[sub] {
			seen[sub] = true
			subsystems = append(subsystems, sub)
		}
		minuteSet[r.Minute] = true
		counts[cell{r.Minute, sub}]++
	}
	minutes := make([]time.Time, 0, len(minuteSet))
	for m := range minuteSet {
		minutes = append(minutes, m)
	}
	sort.Slice(minutes, func(i, j int) bool { return minutes[i].Before(minutes[j]) })
	t := &SubsystemTable{Minutes: minutes, Subsystems: subsystems, Counts: make([][]int, len(minutes))}
	for i, m := range minutes {
		row := make([]int, len(subsystems))
		for j, s := range subsystems {
			row[j] = counts[cell{m, s}]
		}
		t.Counts[i] = row
	}
	return t
}

// Column returns a copy of the named subsystem's counts in minute order, or nil
// when the table has no such column.
func (t *SubsystemTable) Column(name string) []int {
	for j, s := range t.Subsystems {
		if s != name {
			continue
		}
		col := make([]int, len(t.Minutes))
		for i := range t.Minutes {
			col[i] = t.Counts[i][j]
		}
		return col
	}
	return nil
}

// Restrict returns a table with only the requested subsystems, keeping the
// requested column order and the full minute axis. Unknown names are skipped.
func (t *SubsystemTable) Restrict(subsystems []string) *SubsystemTable {
	var idx []int
	var names []string
	for _, want := range subsystems {
		for j, s := range t.Subsystems {
			if s == want {
				idx = append(idx, j)
				names = append(names, s)
				break
			}
		}
	}
	out := &SubsystemTable{Minutes: t.Minutes, Subsystems: names, Counts: make([][]int, len(t.Minutes))}
	for i := range t.Minutes {
		row := make([]int, len(idx))
		for k, j := range idx {
			row[k] = t.Counts[i][j]
		}
		out.Counts[i] = row
	}
	return out
}

// Cumulative returns the column-wise running sum of the table in minute order.
// The last row of each column equals that subsystem's total over the period.
func (t *SubsystemTable) Cumulative() *SubsystemTable {
	out := &SubsystemTable{Minutes: t.Minutes, Subsystems: t.Subsystems, Counts: make([][]int, len(t.Minutes))}
	run := make([]int, len(t.Subsystems))
	for i := range t.Minutes {
		row := make([]int, len(t.Subsystems))
		for j := range t.Subsystems {
			run[j] += t.Counts[i][j]
			row[j] = run[j]
		}
		out.Counts[i] = row
	}
	return out
}

// Peak returns the earliest minute at which the named subsystem's count is
// maximal, and the count there. A missing or all-zero column yields (zero time, 0).
func (t *SubsystemTable) Peak(name string) (time.Time, int) {
	best, bestIdx := 0, -1
	for i, v := range t.Column(name) {
		if v > best {
			best, bestIdx = v, i
		}
	}
	if bestIdx < 0 {
		return time.Time{}, 0
	}
	return t.Minutes[bestIdx], best
}

// SubsystemCount pairs a subsystem with its total record count.
type SubsystemCount struct {
	Subsystem string
	Count     int
}

// SubsystemTotals counts records per subsystem, descending by count. Ties keep
// first-occurrence order (stable sort).
func SubsystemTotals(ds *warnlog.Dataset) []SubsystemCount {
	counts := map[string]int{}
	var order []string
	for _, r := range ds.Records {
		sub, ok := r.Subsystem()
		if !ok {
			continue
		}
		if _, known := counts[sub]; !known {
			order = append(order, sub)
		}
		counts[sub]++
	}
	out := make([]SubsystemCount, 0, len(order))
	for _, s := range order {
		out = append(out, SubsystemCount{Subsystem: s, Count: counts[s]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

const maxTopN = 20

// DefaultTopN is min(5, distinct).
func DefaultTopN(distinct int) int {
	if distinct < 5 {
		return distinct
	}
	return 5
}

// ClampTopN bounds a requested N to [1, min(20, distinct)]. n<=0 selects the
// default. A zero distinct count yields 0.
func ClampTopN(n, distinct int) int {
	if distinct <= 0 {
		return 0
	}
	if n <= 0 {
		n = DefaultTopN(distinct)
	}
	limit := maxTopN
	if distinct < limit {
		limit = distinct
	}
	if n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// TopN selects the n highest-ranked subsystem names from a totals ranking.
func TopN(totals []SubsystemCount, n int) []string {
	n = ClampTopN(n, len(totals))
	names := make([]string, 0, n)
	for _, t := range totals[:n] {
		names = append(names, t.Subsystem)
	}
	return names
}
