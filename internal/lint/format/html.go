package format

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/extlint/extlint/internal/lint"
)

// Chart dimensions.
const (
	chartWidth  = "1100px"
	chartHeight = "500px"
	xAxisRotate = 45
)

// htmlFormatter renders a standalone HTML report with a diagnostics-per-file
// bar chart.
type htmlFormatter struct{}

func (htmlFormatter) Format(w io.Writer, result *lint.Result) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "extlint report",
			Width:     chartWidth,
			Height:    chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Import extension diagnostics",
			Subtitle: fmt.Sprintf("%d diagnostics in %d of %d files", result.TotalDiagnostics(), len(result.Files), result.FilesScanned),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: xAxisRotate, Interval: "0"},
		}),
	)

	labels := make([]string, 0, len(result.Files))
	data := make([]opts.BarData, 0, len(result.Files))

	for _, file := range result.Files {
		labels = append(labels, file.File)
		data = append(data, opts.BarData{Value: len(file.Diagnostics)})
	}

	bar.SetXAxis(labels)
	bar.AddSeries("diagnostics", data)

	err := bar.Render(w)
	if err != nil {
		return fmt.Errorf("render html report: %w", err)
	}

	return nil
}
