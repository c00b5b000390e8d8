package warnlog

// Column indexes into Record.Fields. Valid for a given row only when both the
// layout and the row itself are wide enough.
const (
	ColTimestamp = iota
	ColCode
	ColStatus
	ColSubsystem
	ColCategory
	ColDetail1
	ColMessage
	ColFlag1
	ColDetail2
	ColValue1
	ColValue2
	ColValue3
	ColFlag2
)

var fullNames = []string{
	"Timestamp", "Code", "Status", "Subsystem", "Category", "Detail1", "Message",
	"Flag1", "Detail2", "Value1", "Value2", "Value3", "Flag2",
}

const (
	fullWidth  = 13
	basicWidth = 7
)

// Layout is the named-field schema selected once per parsed file from the widest
// row. Full keeps the first 13 columns; Basic keeps at most the first 7, narrowed
// to however many the file actually has.
type Layout struct {
	Full  bool
	Width int
}

// InferLayout maps the measured column count of a parse to a layout. No per-row
// re-inference happens: every record of one parse shares the result.
func InferLayout(maxFields int) Layout {
	if maxFields >= fullWidth {
		return Layout{Full: true, Width: fullWidth}
	}
	w := maxFields
	if w > basicWidth {
		w = basicWidth
	}
	if w < 0 {
		w = 0
	}
	return Layout{Width: w}
}

// Names returns the named columns this layout keeps, in fixed order.
func (l Layout) Names() []string { return fullNames[:l.Width] }

// HasSubsystem reports whether the Subsystem column exists under this layout.
// Without it the per-subsystem aggregates and the summary are skipped entirely.
func (l Layout) HasSubsystem() bool { return l.Width > ColSubsystem }
