package aggregate

import (
	"time"

	"github.com/akoelman/WarningsAnalyzer/src/warnlog"
)

// SummaryRow describes one subsystem over the analyzed period. MeanPerMinute is
// the arithmetic mean over every minute present in the dense table, so minutes
// where this subsystem logged nothing but another one did count as zeros.
type SummaryRow struct {
	Subsystem     string
	Total         int
	MeanPerMinute float64
	PeakMinute    time.Time
	PeakCount     int
}

// Summary builds one row per subsystem, in totals order (descending count,
// stable ties). Returns nil when the dataset's layout has no Subsystem column;
// that is the reduced-feature mode, not an error.
func Summary(ds *warnlog.Dataset) []SummaryRow {
	if !ds.Layout.HasSubsystem() {
		return nil
	}
	return summaryFromTable(SubsystemTotals(ds), PerMinuteBySubsystem(ds))
}

func summaryFromTable(totals []SubsystemCount, table *SubsystemTable) []SummaryRow {
	rows := make([]SummaryRow, 0, len(totals))
	for _, tc := range totals {
		row := SummaryRow{Subsystem: tc.Subsystem, Total: tc.Count}
		if n := len(table.Minutes); n > 0 {
			sum := 0
			for _, v := range table.Column(tc.Subsystem) {
				sum += v
			}
			row.MeanPerMinute = float64(sum) / float64(n)
		}
		row.PeakMinute, row.PeakCount = table.Peak(tc.Subsystem)
		rows = append(rows, row)
	}
	return rows
}
