// Package charts renders aggregate tables into PNG buffers. It is the rendering
// sink of the pipeline: callers decide where the bytes go (viewer canvas, files,
// a download archive) and the package knows nothing about the UI.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/akoelman/WarningsAnalyzer/src/aggregate"
)

// ErrNoData means there is nothing to plot; callers should surface the empty
// condition instead of rendering a blank chart.
var ErrNoData = errors.New("no data points to render")

// NamedImage pairs an export file name with rendered PNG bytes.
type NamedImage struct {
	Name string
	PNG  []byte
}

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorCyan,
	chart.ColorAlternateGray,
}

func seriesStyle(i int) chart.Style {
	col := palette[i%len(palette)]
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotColor:    col,
		DotWidth:    3,
	}
}

// padSeries widens a single-point series to two X values; go-chart refuses to
// render a lone point.
func padSeries(times []time.Time, ys []float64) ([]time.Time, []float64) {
	if len(times) != 1 {
		return times, ys
	}
	return []time.Time{times[0], times[0].Add(time.Minute)}, []float64{ys[0], ys[0]}
}

// yAxisRange anchors the count axis at zero and pads the top so flat series
// (all buckets equal) never collapse the range to a zero span.
func yAxisRange(series []chart.Series) *chart.ContinuousRange {
	maxY := 0.0
	for _, s := range series {
		if ts, ok := s.(chart.TimeSeries); ok {
			for _, v := range ts.YValues {
				if v > maxY {
					maxY = v
				}
			}
		}
	}
	if maxY <= 0 {
		maxY = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: maxY * 1.1}
}

func render(title, yName string, series []chart.Series, width, height int) ([]byte, error) {
	ch := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 28, Left: 16, Right: 16, Bottom: 24},
		},
		XAxis:  chart.XAxis{ValueFormatter: chart.TimeValueFormatterWithFormat("01-02 15:04")},
		YAxis:  chart.YAxis{Name: yName, Range: yAxisRange(series)},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// PerMinutePNG renders the total-per-minute series as a line chart.
func PerMinutePNG(points []aggregate.MinutePoint, width, height int) ([]byte, error) {
	if len(points) == 0 {
		return nil, ErrNoData
	}
	times := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		times[i], ys[i] = p.Minute, float64(p.Count)
	}
	times, ys = padSeries(times, ys)
	s := chart.TimeSeries{Name: "Total", XValues: times, YValues: ys, Style: seriesStyle(0)}
	return render("Warnings per minute", "count", []chart.Series{s}, width, height)
}

func tableSeries(t *aggregate.SubsystemTable) []chart.Series {
	series := make([]chart.Series, 0, len(t.Subsystems))
	for j, name := range t.Subsystems {
		ys := make([]float64, len(t.Minutes))
		for i := range t.Minutes {
			ys[i] = float64(t.Counts[i][j])
		}
		times, padded := padSeries(t.Minutes, ys)
		series = append(series, chart.TimeSeries{
			Name: name, XValues: times, YValues: padded, Style: seriesStyle(j),
		})
	}
	return series
}

// SubsystemLinesPNG renders one line per subsystem column of the table.
func SubsystemLinesPNG(t *aggregate.SubsystemTable, width, height int) ([]byte, error) {
	if t == nil || len(t.Minutes) == 0 || len(t.Subsystems) == 0 {
		return nil, ErrNoData
	}
	return render("Warnings per minute by subsystem", "count", tableSeries(t), width, height)
}

// CumulativePNG renders the running-sum table, one line per subsystem.
func CumulativePNG(t *aggregate.SubsystemTable, width, height int) ([]byte, error) {
	if t == nil || len(t.Minutes) == 0 || len(t.Subsystems) == 0 {
		return nil, ErrNoData
	}
	return render("Cumulative warnings by subsystem", "running total", tableSeries(t), width, height)
}

// RenderAll produces the named chart set for one computed result: the total
// series always, the Top-N and cumulative charts when subsystem data exists.
func RenderAll(res *aggregate.Result, width, height int) ([]NamedImage, error) {
	total, err := PerMinutePNG(res.Total, width, height)
	if err != nil {
		return nil, err
	}
	images := []NamedImage{{Name: "per_minute.png", PNG: total}}
	if res.TopTable != nil && len(res.TopTable.Minutes) > 0 {
		top, err := SubsystemLinesPNG(res.TopTable, width, height)
		if err != nil {
			return nil, err
		}
		images = append(images, NamedImage{Name: "top_subsystems.png", PNG: top})
	}
	if res.Cumulative != nil && len(res.Cumulative.Minutes) > 0 {
		cum, err := CumulativePNG(res.Cumulative, width, height)
		if err != nil {
			return nil, err
		}
		images = append(images, NamedImage{Name: "cumulative.png", PNG: cum})
	}
	return images, nil
}
