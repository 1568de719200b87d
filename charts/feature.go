/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"fmt"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/goccy/go-json"

	"github.com/glucolens/glucolens/risk"
)

// Series names on the feature chart.
const (
	PatientSeries   = "Patient Values"
	ReferenceSeries = "Normal Range"

	referenceLineColor = "#34495e"
)

// FeatureRow is one measurement compared against its reference range.
type FeatureRow struct {
	Measurement risk.Measurement     `json:"measurement"`
	Value       float64              `json:"value"`
	Unit        string               `json:"unit"`
	Range       *risk.ReferenceRange `json:"range,omitempty"`
	Status      risk.Status          `json:"status"`
	Color       string               `json:"color"`
}

// FeatureRows classifies every measurement in chart order.
func FeatureRows(m risk.Measurements) []FeatureRow {
	rows := make([]FeatureRow, 0, len(risk.MeasurementOrder))

	for _, name := range risk.MeasurementOrder {
		value, _ := m.Value(name)
		status := risk.ClassifyMeasurement(name, value)

		row := FeatureRow{
			Measurement: name,
			Value:       value,
			Unit:        risk.Unit(name),
			Status:      status,
			Color:       status.Color(),
		}
		if r, ok := risk.LookupReference(name); ok {
			row.Range = &r
		}

		rows = append(rows, row)
	}

	return rows
}

// Optimal is the reference line value, or 0 when the measurement has no range.
func (r FeatureRow) Optimal() float64 {
	if r.Range == nil {
		return 0
	}

	return r.Range.Optimal
}

func (r FeatureRow) withUnit(v float64) string {
	if r.Unit == "" {
		return FormatNumber(v)
	}

	return FormatNumber(v) + " " + r.Unit
}

// PatientTooltip returns the tooltip lines for the patient bar.
func (r FeatureRow) PatientTooltip() []string {
	lines := []string{fmt.Sprintf("%s: %s", PatientSeries, r.withUnit(r.Value))}
	if r.Range == nil {
		return lines
	}

	normal := FormatNumber(r.Range.Min) + "-" + r.withUnit(r.Range.Max)

	return append(lines,
		"Normal: "+normal,
		"Optimal: "+r.withUnit(r.Range.Optimal),
	)
}

// ReferenceTooltip returns the tooltip for the reference line point.
func (r FeatureRow) ReferenceTooltip() string {
	return fmt.Sprintf("%s: %s", ReferenceSeries, r.withUnit(r.Optimal()))
}

// featureTooltip builds an echarts formatter that looks the text up by series
// and data index. The text is computed here so the browser only indexes.
func featureTooltip(rows []FeatureRow) string {
	patient := make([]string, 0, len(rows))
	reference := make([]string, 0, len(rows))

	for _, row := range rows {
		patient = append(patient, strings.Join(row.PatientTooltip(), "<br/>"))
		reference = append(reference, row.ReferenceTooltip())
	}

	table, err := json.Marshal([][]string{patient, reference})
	if err != nil {
		// [][]string always encodes
		table = []byte("[]")
	}

	return fmt.Sprintf(`function (params) {
	var rows = %s;
	var series = rows[params.seriesIndex] || [];
	return series[params.dataIndex] || '';
}`, table)
}

func featureChart(rows []FeatureRow, size Size, assetsHost string) *charts.Bar {
	labels := make([]string, 0, len(rows))
	bars := make([]opts.BarData, 0, len(rows))
	optimal := make([]opts.LineData, 0, len(rows))

	for _, row := range rows {
		labels = append(labels, string(row.Measurement))
		bars = append(bars, opts.BarData{
			Name:  string(row.Measurement),
			Value: row.Value,
			ItemStyle: &opts.ItemStyle{
				Color:       row.Color,
				BorderColor: row.Color,
			},
		})
		optimal = append(optimal, opts.LineData{Name: string(row.Measurement), Value: row.Optimal()})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initialization(SurfaceFeatures, size, assetsHost)),
		charts.WithTitleOpts(opts.Title{Show: opts.Bool(false)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "top"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(featureTooltip(rows)),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Value"}),
	)
	bar.SetXAxis(labels).AddSeries(PatientSeries, bars)

	line := charts.NewLine()
	line.SetXAxis(labels).
		AddSeries(ReferenceSeries, optimal).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(false),
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: referenceLineColor, Width: 2}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: referenceLineColor, BorderColor: "#fff"}),
		)

	bar.Overlap(line)

	return bar
}
