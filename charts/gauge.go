/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/glucolens/glucolens/risk"
)

// The gauge is a doughnut whose lower half is a transparent slice as large as
// the visible part, so the drawn arc spans the top 180 degrees.
const gaugeTooltip = `function (params) {
	if (params.dataIndex > 1) {
		return '';
	}
	return 'Risk Score: ' + params.value + '%';
}`

// The arc starts at the left end of the horizontal diameter.
const gaugeStartAngle = 180

// GaugeData returns the two visible gauge segments, [p, 100-p].
func GaugeData(probability float64) []float64 {
	return []float64{probability, 100 - probability}
}

// GaugeOverlay is the text shown in the middle of the gauge.
type GaugeOverlay struct {
	Percent string
	Label   string
	Color   string
}

func (o *GaugeOverlay) update(probability float64) {
	level := risk.Classify(probability)

	o.Percent = FormatNumber(probability) + "%"
	o.Label = level.Label
	o.Color = level.Color
}

// FormatNumber prints a value with as few digits as needed.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func gaugeChart(probability float64, size Size, assetsHost string) *charts.Pie {
	level := risk.Classify(probability)
	data := GaugeData(probability)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initialization(SurfaceGauge, size, assetsHost)),
		charts.WithTitleOpts(opts.Title{Show: opts.Bool(false)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(gaugeTooltip),
		}),
	)

	items := []opts.PieData{
		{Name: "Risk", Value: data[0], ItemStyle: &opts.ItemStyle{Color: level.Color}},
		{Name: "Remaining", Value: data[1], ItemStyle: &opts.ItemStyle{Color: risk.ColorTrack}},
		{Name: "", Value: data[0] + data[1], ItemStyle: &opts.ItemStyle{Color: "transparent"}},
	}

	pie.AddSeries("Risk Score", items).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"75%", "100%"},
				Center: []string{"50%", "80%"},
			}),
			charts.WithSeriesOpts(func(s *charts.SingleSeries) {
				s.StartAngle = gaugeStartAngle
			}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)

	return pie
}
