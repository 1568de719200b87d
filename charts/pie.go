/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/glucolens/glucolens/risk"
)

// BandSlice is one slice of the risk-category pie.
type BandSlice struct {
	Name  string
	Value float64
	Color string
}

// BandSlices returns the pie slices for a band split, low to high.
func BandSlices(b risk.Bands) []BandSlice {
	return []BandSlice{
		{Name: "Low Risk", Value: b.Low, Color: risk.ColorLow},
		{Name: "Medium Risk", Value: b.Medium, Color: risk.ColorModerate},
		{Name: "High Risk", Value: b.High, Color: risk.ColorHigh},
	}
}

func riskPieChart(b risk.Bands, size Size, assetsHost string) *charts.Pie {
	slices := BandSlices(b)
	items := make([]opts.PieData, 0, len(slices))

	for _, s := range slices {
		items = append(items, opts.PieData{
			Name:      s.Name,
			Value:     s.Value,
			ItemStyle: &opts.ItemStyle{Color: s.Color, BorderColor: "#fff"},
		})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initialization(SurfacePie, size, assetsHost)),
		charts.WithTitleOpts(opts.Title{Show: opts.Bool(false)}),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Orient: "vertical",
			Right:  "0",
			Top:    "middle",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	pie.AddSeries("Risk Category", items).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{
				Radius: "70%",
				Center: []string{"40%", "50%"},
			}),
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}),
		)

	return pie
}
