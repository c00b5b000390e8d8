package aggregate

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestSummaryScenario(t *testing.T) {
	rows := Summary(scenario(t))
	if len(rows) != 2 {
		t.Fatalf("expected 2 summary rows, got %d", len(rows))
	}
	a, b := rows[0], rows[1]
	if a.Subsystem != "SubA" || a.Total != 2 {
		t.Fatalf("row 0: %+v", a)
	}
	if math.Abs(a.MeanPerMinute-1.0) > 1e-9 {
		t.Fatalf("SubA mean: got %v want 1.0", a.MeanPerMinute)
	}
	if !a.PeakMinute.Equal(minute(t, 10, 0)) || a.PeakCount != 2 {
		t.Fatalf("SubA peak: %+v", a)
	}
	if b.Subsystem != "SubB" || b.Total != 1 {
		t.Fatalf("row 1: %+v", b)
	}
	// mean over the dense minute axis: 1 hit across 2 observed minutes
	if math.Abs(b.MeanPerMinute-0.5) > 1e-9 {
		t.Fatalf("SubB mean: got %v want 0.5", b.MeanPerMinute)
	}
	if !b.PeakMinute.Equal(minute(t, 10, 1)) || b.PeakCount != 1 {
		t.Fatalf("SubB peak: %+v", b)
	}
}

func TestSummaryReducedMode(t *testing.T) {
	// Three columns only: the layout never reaches Subsystem.
	ds := mkDataset(t,
		"2024-01-01 10:00:00,E1,OK",
		"2024-01-01 10:01:00,E2,OK",
	)
	if rows := Summary(ds); rows != nil {
		t.Fatalf("expected nil summary without a Subsystem column, got %v", rows)
	}
}

func TestComputeFullPipeline(t *testing.T) {
	res, err := Compute(scenario(t), Options{})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Rows != 3 {
		t.Fatalf("rows: %d", res.Rows)
	}
	if len(res.Total) != 2 || len(res.Summary) != 2 {
		t.Fatalf("unexpected result shape: %+v", res)
	}
	if len(res.Top) != 2 { // default N clamps to the 2 distinct subsystems
		t.Fatalf("top: %v", res.Top)
	}
	if res.Cumulative == nil || len(res.Cumulative.Minutes) != 2 {
		t.Fatalf("cumulative missing")
	}
}

func TestComputeReducedMode(t *testing.T) {
	ds := mkDataset(t,
		"2024-01-01 10:00:00,E1,OK",
		"2024-01-01 10:01:00,E2,OK",
	)
	res, err := Compute(ds, Options{})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(res.Total) != 2 {
		t.Fatalf("total series: %v", res.Total)
	}
	if res.Summary != nil || res.BySubsystem != nil || res.Top != nil {
		t.Fatalf("reduced mode must skip subsystem aggregates: %+v", res)
	}
}

func TestComputeEmptyDataset(t *testing.T) {
	ds := mkDataset(t, "not-a-time,E1,OK") // the only row gets dropped
	if ds.Dropped != 1 {
		t.Fatalf("expected one dropped row, got %d", ds.Dropped)
	}
	if _, err := Compute(ds, Options{}); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestComputeEmptyRange(t *testing.T) {
	opts := Options{
		FilterEnabled: true,
		Start:         time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2030, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	if _, err := Compute(scenario(t), opts); !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("expected ErrEmptyRange, got %v", err)
	}
}

func TestComputeFilterDefaultsToIdentity(t *testing.T) {
	// Enabled filter with zero bounds falls back to the data's own range.
	res, err := Compute(scenario(t), Options{FilterEnabled: true})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Rows != 3 {
		t.Fatalf("identity filter changed row count: %d", res.Rows)
	}
}

func TestComputeFilterBounds(t *testing.T) {
	opts := Options{
		FilterEnabled: true,
		Start:         minute(t, 10, 1),
		End:           minute(t, 10, 1),
	}
	res, err := Compute(scenario(t), opts)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Rows != 1 {
		t.Fatalf("expected 1 record in 10:01, got %d", res.Rows)
	}
	if len(res.Totals) != 1 || res.Totals[0].Subsystem != "SubB" {
		t.Fatalf("totals after filter: %+v", res.Totals)
	}
}
