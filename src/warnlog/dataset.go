package warnlog

import "time"

// Record is one parsed log line. Fields holds the raw columns truncated to the
// file's layout width, with the unparsed timestamp text still at ColTimestamp.
// Short rows simply lack their trailing columns; nothing is null-filled.
type Record struct {
	Timestamp time.Time
	Minute    time.Time
	Fields    []string
}

// Field returns the raw column at index i and whether the row actually has it.
func (r Record) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.Fields) {
		return "", false
	}
	return r.Fields[i], true
}

// Subsystem returns the Subsystem column when the row carries a non-empty one.
// A blank field means the source line left the column empty; such rows count in
// the per-minute totals but never form a subsystem of their own.
func (r Record) Subsystem() (string, bool) {
	s, ok := r.Field(ColSubsystem)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Dataset is an immutable parse result: records in original line order plus the
// layout they were read under. Dropped counts lines whose timestamp failed to
// parse; they are excluded silently, the counter exists for observability only.
type Dataset struct {
	Layout  Layout
	Records []Record
	Dropped int
}

// TimeBounds returns the minimum and maximum record timestamps.
// ok=false on an empty dataset.
func (d *Dataset) TimeBounds() (min, max time.Time, ok bool) {
	for i, r := range d.Records {
		if i == 0 || r.Timestamp.Before(min) {
			min = r.Timestamp
		}
		if i == 0 || r.Timestamp.After(max) {
			max = r.Timestamp
		}
	}
	return min, max, len(d.Records) > 0
}

// FilterRange returns the records whose timestamp lies in [start, end] inclusive,
// preserving original relative order. Bounds are compared at full precision, so a
// record inside the boundary minute stays in only while its precise instant does.
// Filtering with the dataset's own bounds is the identity.
func (d *Dataset) FilterRange(start, end time.Time) *Dataset {
	out := &Dataset{Layout: d.Layout, Dropped: d.Dropped}
	for _, r := range d.Records {
		if r.Timestamp.Before(start) || r.Timestamp.After(end) {
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out
}
