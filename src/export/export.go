// Package export serializes aggregation results for the download affordances:
// the summary table as delimited text and the chart set as a ZIP archive.
package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/akoelman/WarningsAnalyzer/src/aggregate"
	"github.com/akoelman/WarningsAnalyzer/src/charts"
)

const minuteFormat = "2006-01-02 15:04"

// SummaryCSV renders summary rows as a flat comma-delimited table with a header
// line. A subsystem that never peaked (guard case) gets an empty peak minute.
func SummaryCSV(rows []aggregate.SummaryRow) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"Subsystem", "Total", "MeanPerMinute", "PeakMinute", "PeakCount"})
	for _, r := range rows {
		peak := ""
		if !r.PeakMinute.IsZero() {
			peak = r.PeakMinute.Format(minuteFormat)
		}
		w.Write([]string{
			r.Subsystem,
			strconv.Itoa(r.Total),
			strconv.FormatFloat(r.MeanPerMinute, 'f', 3, 64),
			peak,
			strconv.Itoa(r.PeakCount),
		})
	}
	w.Flush()
	return buf.Bytes()
}

// ChartArchive packs named chart images into a ZIP buffer.
func ChartArchive(images []charts.NamedImage) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, img := range images {
		f, err := zw.Create(img.Name)
		if err != nil {
			return nil, fmt.Errorf("archive %s: %w", img.Name, err)
		}
		if _, err := f.Write(img.PNG); err != nil {
			return nil, fmt.Errorf("archive %s: %w", img.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
