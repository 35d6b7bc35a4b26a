// Package chart renders the monthly emissions series as a line chart.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"emissioni/internal/core"
)

const monthLayout = "2006-01"

// RenderLine writes a self-contained line chart page of the monthly
// buckets to w: x is the month, y the CO₂ total for that month.
func RenderLine(w io.Writer, title string, buckets []core.MonthlyBucket) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "100%",
			Height:    "420px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Mese"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "CO₂"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	months := make([]string, 0, len(buckets))
	values := make([]opts.LineData, 0, len(buckets))
	for _, b := range buckets {
		months = append(months, b.Month.Format(monthLayout))
		values = append(values, opts.LineData{Value: b.Total})
	}

	line.SetXAxis(months).
		AddSeries("CO2", values, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line.Render(w)
}
