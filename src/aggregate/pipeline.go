package aggregate

import (
	"errors"
	"time"

	"github.com/akoelman/WarningsAnalyzer/src/warnlog"
)

var (
	// ErrEmptyDataset signals that parsing produced no records at all.
	ErrEmptyDataset = errors.New("no records after parsing")
	// ErrEmptyRange signals that the time filter excluded every record.
	// Callers adjust the bounds and recompute; nothing partial is produced.
	ErrEmptyRange = errors.New("no records in selected time range")
)

// Options is the caller-facing configuration surface: time filtering and Top-N.
type Options struct {
	FilterEnabled bool
	Start, End    time.Time // inclusive; zero values fall back to the data bounds
	TopN          int       // 0 selects the default min(5, distinct)
}

// Result carries every aggregate table one interaction needs. Subsystem-keyed
// fields stay nil in reduced-feature mode (layout without a Subsystem column);
// the total-per-minute series is always present.
type Result struct {
	Rows        int
	Dropped     int
	Total       []MinutePoint
	BySubsystem *SubsystemTable
	Totals      []SubsystemCount
	Top         []string
	TopTable    *SubsystemTable
	Cumulative  *SubsystemTable
	Summary     []SummaryRow
}

// Compute runs the whole pipeline Dataset -> filter -> aggregates for the given
// options. Everything is derived from scratch; callers re-invoke it on every
// parameter change.
func Compute(ds *warnlog.Dataset, opts Options) (*Result, error) {
	if len(ds.Records) == 0 {
		return nil, ErrEmptyDataset
	}
	view := ds
	if opts.FilterEnabled {
		start, end := opts.Start, opts.End
		min, max, _ := ds.TimeBounds()
		if start.IsZero() {
			start = min
		}
		if end.IsZero() {
			end = max
		}
		view = ds.FilterRange(start, end)
		if len(view.Records) == 0 {
			return nil, ErrEmptyRange
		}
	}
	res := &Result{Rows: len(view.Records), Dropped: ds.Dropped, Total: PerMinuteTotal(view)}
	if !ds.Layout.HasSubsystem() {
		return res, nil
	}
	res.Totals = SubsystemTotals(view)
	if len(res.Totals) == 0 {
		// Layout has the column but no surviving row reaches it; same reduced mode.
		return res, nil
	}
	res.BySubsystem = PerMinuteBySubsystem(view)
	res.Top = TopN(res.Totals, opts.TopN)
	res.TopTable = res.BySubsystem.Restrict(res.Top)
	res.Cumulative = res.TopTable.Cumulative()
	res.Summary = summaryFromTable(res.Totals, res.BySubsystem)
	return res, nil
}
