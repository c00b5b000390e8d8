// Warnings Analyzer viewer.
//
// Desktop shell around the minute-bucketed aggregation pipeline: open a
// headerless warnings log, pick a time range on minute sliders, choose how many
// subsystems to chart, and export the summary table or the chart set.
//
// Design notes:
// - The core stays pure: every control change rebuilds aggregate.Options and
//   re-runs aggregate.Compute from scratch; nothing incremental is kept.
// - Byte-identical re-opens hit the warnlog.Cache instead of re-parsing.
// - Empty parse results and empty filter ranges are user-facing status text,
//   never dialogs or partial charts.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	png "image/png"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/akoelman/WarningsAnalyzer/cmd/waviewer/uihelpers"
	"github.com/akoelman/WarningsAnalyzer/src/aggregate"
	"github.com/akoelman/WarningsAnalyzer/src/charts"
	"github.com/akoelman/WarningsAnalyzer/src/export"
	"github.com/akoelman/WarningsAnalyzer/src/warnlog"
)

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath string
	cache    *warnlog.Cache
	dataset  *warnlog.Dataset
	minutes  []time.Time // observed minute axis backing the sliders

	filterEnabled bool
	startIdx      int
	endIdx        int
	topN          int

	// widgets
	status      *widget.Label
	startSlider *widget.Slider
	endSlider   *widget.Slider
	startLabel  *widget.Label
	endLabel    *widget.Label
	table       *widget.Table
	totalImg    *canvas.Image
	topImg      *canvas.Image
	cumImg      *canvas.Image

	// last successful computation, backing the table and the export menu
	result *aggregate.Result
	images []charts.NamedImage
}

func main() {
	var fileFlag, logLevel string
	flag.StringVar(&fileFlag, "file", "", "Path to a headerless warnings log (CSV/TXT)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	flag.Parse()
	warnlog.SetLogLevel(logLevel)

	a := app.NewWithID("com.warningsanalyzer.viewer")
	w := a.NewWindow("Warnings Analyzer")
	w.Resize(fyne.NewSize(1100, 800))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: fileFlag,
		cache:    warnlog.NewCache(),
	}
	state.filterEnabled = a.Preferences().BoolWithFallback("filterEnabled", false)
	state.topN = a.Preferences().IntWithFallback("topN", 0)

	fileLabel := widget.NewLabel(truncatePath(state.filePath, 60))
	state.status = widget.NewLabel("Open a warnings log to begin.")

	filterChk := widget.NewCheck("Time filter", nil)
	filterChk.SetChecked(state.filterEnabled)

	state.startLabel = widget.NewLabel("")
	state.endLabel = widget.NewLabel("")
	state.startSlider = widget.NewSlider(0, 0)
	state.startSlider.Step = 1
	state.endSlider = widget.NewSlider(0, 0)
	state.endSlider.Step = 1

	topNOptions := []string{"default", "1", "2", "3", "5", "8", "10", "15", "20"}
	topNSelect := widget.NewSelect(topNOptions, nil)
	if state.topN > 0 {
		topNSelect.Selected = fmt.Sprintf("%d", state.topN)
	} else {
		topNSelect.Selected = "default"
	}

	// chart canvases; placeholders until the first load
	state.totalImg = newChartCanvas()
	state.topImg = newChartCanvas()
	state.cumImg = newChartCanvas()

	state.table = buildSummaryTable(state)

	// wire callbacks after every widget exists
	filterChk.OnChanged = func(on bool) {
		state.filterEnabled = on
		savePrefs(state)
		recompute(state)
	}
	state.startSlider.OnChanged = func(v float64) {
		state.startIdx = int(v)
		syncSliderLabels(state)
		recompute(state)
	}
	state.endSlider.OnChanged = func(v float64) {
		state.endIdx = int(v)
		syncSliderLabels(state)
		recompute(state)
	}
	topNSelect.OnChanged = func(v string) {
		state.topN = uihelpers.ParseTopN(v)
		savePrefs(state)
		recompute(state)
	}

	openBtn := widget.NewButton("Open…", func() { openFileDialog(state, fileLabel) })

	controls := container.NewVBox(
		container.NewHBox(openBtn, fileLabel),
		container.NewHBox(filterChk, widget.NewLabel("Top-N:"), topNSelect, state.status),
		container.NewHBox(widget.NewLabel("From:"), state.startLabel),
		state.startSlider,
		container.NewHBox(widget.NewLabel("To:"), state.endLabel),
		state.endSlider,
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Per minute", container.NewVScroll(state.totalImg)),
		container.NewTabItem("Top subsystems", container.NewVScroll(state.topImg)),
		container.NewTabItem("Cumulative", container.NewVScroll(state.cumImg)),
		container.NewTabItem("Summary", state.table),
	)

	buildMenus(state, fileLabel)
	w.SetContent(container.NewBorder(controls, nil, nil, nil, tabs))

	if state.filePath != "" {
		loadFile(state, state.filePath, fileLabel)
	}
	w.ShowAndRun()
}

func newChartCanvas() *canvas.Image {
	img := canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(900, 320))
	return img
}

func buildMenus(state *uiState, fileLabel *widget.Label) {
	openItem := fyne.NewMenuItem("Open…", func() { openFileDialog(state, fileLabel) })
	exportCSV := fyne.NewMenuItem("Export Summary CSV…", func() { exportSummaryCSV(state) })
	exportZip := fyne.NewMenuItem("Export Charts ZIP…", func() { exportChartsZip(state) })
	fileMenu := fyne.NewMenu("File", openItem, fyne.NewMenuItemSeparator(), exportCSV, exportZip)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func openFileDialog(state *uiState, fileLabel *widget.Label) {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, state.window)
			return
		}
		if rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		loadFile(state, path, fileLabel)
	}, state.window)
}

func loadFile(state *uiState, path string, fileLabel *widget.Label) {
	data, err := os.ReadFile(path)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	ds, err := state.cache.Load(data)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	state.filePath = path
	state.dataset = ds
	state.minutes = minuteAxis(ds)
	fileLabel.SetText(truncatePath(path, 60))
	warnlog.Infof("loaded %s: %d records, %d dropped", path, len(ds.Records), ds.Dropped)

	// reset the sliders to the full observed range
	n := len(state.minutes)
	maxIdx := 0
	if n > 0 {
		maxIdx = n - 1
	}
	state.startIdx, state.endIdx = 0, maxIdx
	state.startSlider.Max = float64(maxIdx)
	state.endSlider.Max = float64(maxIdx)
	state.startSlider.SetValue(0)
	state.endSlider.SetValue(float64(maxIdx))
	syncSliderLabels(state)
	recompute(state)
}

// minuteAxis returns the distinct observed minutes in ascending order; it backs
// the minute-granularity sliders.
func minuteAxis(ds *warnlog.Dataset) []time.Time {
	points := aggregate.PerMinuteTotal(ds)
	out := make([]time.Time, len(points))
	for i, p := range points {
		out[i] = p.Minute
	}
	return out
}

func syncSliderLabels(state *uiState) {
	state.startLabel.SetText(uihelpers.MinuteSliderLabel(state.minutes, state.startIdx))
	state.endLabel.SetText(uihelpers.MinuteSliderLabel(state.minutes, state.endIdx))
}

func currentOptions(state *uiState) aggregate.Options {
	opts := aggregate.Options{FilterEnabled: state.filterEnabled, TopN: state.topN}
	if state.filterEnabled && len(state.minutes) > 0 {
		s, e := uihelpers.ClampIndexRange(state.startIdx, state.endIdx, len(state.minutes))
		opts.Start = state.minutes[s]
		opts.End = state.minutes[e]
	}
	return opts
}

func recompute(state *uiState) {
	if state.dataset == nil {
		return
	}
	res, err := aggregate.Compute(state.dataset, currentOptions(state))
	switch err {
	case nil:
	case aggregate.ErrEmptyDataset:
		state.result, state.images = nil, nil
		state.status.SetText("No parseable records in this file.")
		clearCharts(state)
		state.table.Refresh()
		return
	case aggregate.ErrEmptyRange:
		state.result, state.images = nil, nil
		state.status.SetText("No records in the selected range — widen it and retry.")
		clearCharts(state)
		state.table.Refresh()
		return
	default:
		dialog.ShowError(err, state.window)
		return
	}
	state.result = res
	state.status.SetText(fmt.Sprintf("Records: %d (dropped %d)", res.Rows, res.Dropped))
	redrawCharts(state)
	state.table.Refresh()
}

// clearCharts resets the three canvases to the load-time placeholder so stale
// images never outlive the parameters that produced them.
func clearCharts(state *uiState) {
	for _, img := range []*canvas.Image{state.totalImg, state.topImg, state.cumImg} {
		img.Image = image.NewRGBA(image.Rect(0, 0, 100, 60))
		img.Refresh()
	}
}

func redrawCharts(state *uiState) {
	cw, chh := chartSize(state)
	images, err := charts.RenderAll(state.result, cw, chh)
	if err != nil {
		warnlog.Errorf("chart rendering failed: %v", err)
		return
	}
	state.images = images
	caption := fmt.Sprintf("%d records / %d minutes", state.result.Rows, len(state.result.Total))
	byName := map[string]*canvas.Image{
		"per_minute.png":     state.totalImg,
		"top_subsystems.png": state.topImg,
		"cumulative.png":     state.cumImg,
	}
	for _, img := range images {
		target := byName[img.Name]
		if target == nil {
			continue
		}
		decoded, err := png.Decode(bytes.NewReader(img.PNG))
		if err != nil {
			warnlog.Errorf("decode %s: %v", img.Name, err)
			continue
		}
		target.Image = annotateImage(decoded, caption)
		target.SetMinSize(fyne.NewSize(float32(cw), float32(chh)))
		target.Refresh()
	}
}

// chartSize derives chart pixel dimensions from the current window width.
func chartSize(state *uiState) (int, int) {
	if state.window == nil || state.window.Canvas() == nil {
		return uihelpers.ComputeChartDimensions(1000)
	}
	return uihelpers.ComputeChartDimensions(int(state.window.Canvas().Size().Width * 0.95))
}

var summaryHeaders = [5]string{"Subsystem", "Total", "Mean/min", "Peak minute", "Peak"}

func buildSummaryTable(state *uiState) *widget.Table {
	table := widget.NewTable(
		func() (int, int) {
			rows := 1
			if state.result != nil {
				rows += len(state.result.Summary)
			}
			return rows, len(summaryHeaders)
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row == 0 {
				label.TextStyle = fyne.TextStyle{Bold: true}
				label.SetText(summaryHeaders[id.Col])
				return
			}
			label.TextStyle = fyne.TextStyle{}
			if state.result == nil || id.Row-1 >= len(state.result.Summary) {
				label.SetText("")
				return
			}
			r := state.result.Summary[id.Row-1]
			switch id.Col {
			case 0:
				label.SetText(r.Subsystem)
			case 1:
				label.SetText(fmt.Sprintf("%d", r.Total))
			case 2:
				label.SetText(fmt.Sprintf("%.3f", r.MeanPerMinute))
			case 3:
				if r.PeakMinute.IsZero() {
					label.SetText("-")
				} else {
					label.SetText(r.PeakMinute.Format("2006-01-02 15:04"))
				}
			case 4:
				label.SetText(fmt.Sprintf("%d", r.PeakCount))
			}
		},
	)
	widths := uihelpers.SummaryColumnWidths(1100)
	for i, w := range widths {
		table.SetColumnWidth(i, float32(w))
	}
	return table
}

func exportSummaryCSV(state *uiState) {
	if state.result == nil || state.result.Summary == nil {
		dialog.ShowInformation("Export", "No summary to export yet.", state.window)
		return
	}
	data := export.SummaryCSV(state.result.Summary)
	dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if _, werr := wc.Write(data); werr != nil {
			dialog.ShowError(werr, state.window)
		}
	}, state.window)
}

func exportChartsZip(state *uiState) {
	if len(state.images) == 0 {
		dialog.ShowInformation("Export", "No charts to export yet.", state.window)
		return
	}
	blob, err := export.ChartArchive(state.images)
	if err != nil {
		dialog.ShowError(err, state.window)
		return
	}
	dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if _, werr := wc.Write(blob); werr != nil {
			dialog.ShowError(werr, state.window)
		}
	}, state.window)
}

func savePrefs(state *uiState) {
	prefs := state.app.Preferences()
	prefs.SetBool("filterEnabled", state.filterEnabled)
	prefs.SetInt("topN", state.topN)
}

func truncatePath(p string, n int) string {
	if p == "" {
		return "(no file)"
	}
	if len(p) <= n {
		return p
	}
	return "…" + p[len(p)-n:]
}
