// Warnings Analyzer headless reader.
//
// Loads one headerless warnings log, runs the minute-bucketed aggregation
// pipeline and prints the per-subsystem summary table. With -out it also writes
// the chart PNGs, summary.csv and a charts.zip archive to a directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akoelman/WarningsAnalyzer/src/aggregate"
	"github.com/akoelman/WarningsAnalyzer/src/charts"
	"github.com/akoelman/WarningsAnalyzer/src/export"
	"github.com/akoelman/WarningsAnalyzer/src/warnlog"
)

const minuteFormat = "2006-01-02 15:04"

func fatalf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", a...)
	os.Exit(1)
}

func main() {
	var file, outDir, from, to, logLevel string
	var topN, width, height int
	flag.StringVar(&file, "file", "WarningsLog.txt", "Path to headerless warnings log (CSV/TXT)")
	flag.StringVar(&outDir, "out", "", "Directory to write summary.csv, chart PNGs and charts.zip (optional)")
	flag.StringVar(&from, "from", "", "Start of time filter, e.g. \"01/02/2024 10:00:00\" or \"2024-02-01 10:00:00\"")
	flag.StringVar(&to, "to", "", "End of time filter (inclusive)")
	flag.IntVar(&topN, "top", 0, "Top-N subsystems for charts (0 = default of min(5, distinct count))")
	flag.IntVar(&width, "width", 1000, "Chart width in pixels")
	flag.IntVar(&height, "height", 400, "Chart height in pixels")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	warnlog.SetLogLevel(logLevel)

	data, err := os.ReadFile(file)
	if err != nil {
		fatalf("%v", err)
	}
	ds, err := warnlog.Parse(data)
	if err != nil {
		fatalf("%v", err)
	}

	opts := aggregate.Options{TopN: topN}
	if from != "" || to != "" {
		opts.FilterEnabled = true
		if from != "" {
			t, ok := warnlog.ParseTimestamp(from)
			if !ok {
				fatalf("cannot parse -from value %q", from)
			}
			opts.Start = t
		}
		if to != "" {
			t, ok := warnlog.ParseTimestamp(to)
			if !ok {
				fatalf("cannot parse -to value %q", to)
			}
			opts.End = t
		}
	}

	res, err := aggregate.Compute(ds, opts)
	switch {
	case errors.Is(err, aggregate.ErrEmptyDataset):
		fmt.Println("No parseable records in the file. Check the input format.")
		return
	case errors.Is(err, aggregate.ErrEmptyRange):
		fmt.Println("No records in the selected time range. Widen -from/-to and retry.")
		return
	case err != nil:
		fatalf("%v", err)
	}

	fmt.Printf("Records: %d (dropped %d unparseable)\n", res.Rows, res.Dropped)
	if res.Summary == nil {
		fmt.Println("No Subsystem column in this file; per-minute totals only.")
		for _, p := range res.Total {
			fmt.Printf("  %s  %d\n", p.Minute.Format(minuteFormat), p.Count)
		}
	} else {
		fmt.Printf("%-24s %8s %10s %18s %6s\n", "Subsystem", "Total", "Mean/min", "Peak minute", "Peak")
		for _, r := range res.Summary {
			peak := "-"
			if !r.PeakMinute.IsZero() {
				peak = r.PeakMinute.Format(minuteFormat)
			}
			fmt.Printf("%-24s %8d %10.3f %18s %6d\n", r.Subsystem, r.Total, r.MeanPerMinute, peak, r.PeakCount)
		}
	}

	if outDir == "" {
		return
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fatalf("%v", err)
	}
	images, err := charts.RenderAll(res, width, height)
	if err != nil {
		fatalf("render charts: %v", err)
	}
	for _, img := range images {
		path := filepath.Join(outDir, img.Name)
		if err := os.WriteFile(path, img.PNG, 0o644); err != nil {
			fatalf("write %s: %v", path, err)
		}
		warnlog.Infof("wrote %s (%d bytes)", path, len(img.PNG))
	}
	if res.Summary != nil {
		path := filepath.Join(outDir, "summary.csv")
		if err := os.WriteFile(path, export.SummaryCSV(res.Summary), 0o644); err != nil {
			fatalf("write %s: %v", path, err)
		}
		warnlog.Infof("wrote %s", path)
	}
	blob, err := export.ChartArchive(images)
	if err != nil {
		fatalf("build archive: %v", err)
	}
	zipPath := filepath.Join(outDir, "charts.zip")
	if err := os.WriteFile(zipPath, blob, 0o644); err != nil {
		fatalf("write %s: %v", zipPath, err)
	}
	warnlog.Infof("wrote %s (%d images)", zipPath, len(images))
}
