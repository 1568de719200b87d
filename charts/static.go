/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"fmt"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/glucolens/glucolens/risk"
)

// The print view embeds PNG renditions because canvas output prints poorly.

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func sliceStyle(hex string) chart.Style {
	return chart.Style{
		FillColor:   hexColor(hex),
		StrokeColor: drawing.ColorWhite,
		StrokeWidth: 2,
	}
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// WriteGaugePNG renders the gauge as a two-slice ring for print.
func WriteGaugePNG(w io.Writer, probability float64, size Size) error {
	level := risk.Classify(probability)
	p := clampPercent(probability)

	graph := chart.PieChart{
		Title:  fmt.Sprintf("%s%% %s", FormatNumber(probability), level.Label),
		Width:  size.Width,
		Height: size.Height,
		Values: []chart.Value{
			{Value: p, Label: "Risk", Style: sliceStyle(level.Color)},
			{Value: 100 - p, Label: " ", Style: sliceStyle(risk.ColorTrack)},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render gauge png: %w", err)
	}

	return nil
}

// WriteFeaturesPNG renders the patient measurements as colored bars with the
// optimal values drawn as a reference line across them.
func WriteFeaturesPNG(w io.Writer, m risk.Measurements, size Size) error {
	rows := FeatureRows(m)
	bars := make([]chart.Value, 0, len(rows))

	for _, row := range rows {
		label := string(row.Measurement)
		if row.Range != nil {
			label = fmt.Sprintf("%s (opt %s)", row.Measurement, FormatNumber(row.Range.Optimal))
		}

		bars = append(bars, chart.Value{
			Value: row.Value,
			Label: label,
			Style: chart.Style{
				FillColor:   hexColor(row.Color),
				StrokeColor: hexColor(row.Color),
				StrokeWidth: 1,
			},
		})
	}

	yr := featuresRange(rows)

	graph := chart.BarChart{
		Title:    PatientSeries,
		Width:    size.Width,
		Height:   size.Height,
		BarWidth: barWidth(size.Width, len(bars)),
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{Range: yr},
		Bars:  bars,
	}
	graph.Elements = []chart.Renderable{referenceLine(graph, rows, *yr)}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render features png: %w", err)
	}

	return nil
}

// featuresRange spans zero, every value and every optimal value. go-chart
// refuses a range of zero height, so the maximum is at least one above the
// minimum.
func featuresRange(rows []FeatureRow) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0

	for _, row := range rows {
		lo = math.Min(lo, math.Min(row.Value, row.Optimal()))
		hi = math.Max(hi, math.Max(row.Value, row.Optimal()))
	}

	return &chart.ContinuousRange{Min: lo, Max: math.Max(hi, lo+1)}
}

// referenceLine draws the optimal values through the centre of each bar slot.
// The slot layout follows BarChart's own spacing rules.
func referenceLine(graph chart.BarChart, rows []FeatureRow, yr chart.ContinuousRange) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, _ chart.Style) {
		n := len(rows)
		if n == 0 {
			return
		}

		width, spacing := barSlots(canvasBox.Width(), n, graph.GetBarWidth(), graph.GetBarSpacing())
		yr.SetDomain(canvasBox.Height())

		style := chart.Style{
			StrokeColor: hexColor(referenceLineColor),
			StrokeWidth: 2,
			FillColor:   hexColor(referenceLineColor),
		}

		points := make([][2]int, 0, n)
		for i, row := range rows {
			x := canvasBox.Left + i*(width+spacing) + spacing>>1 + width/2
			y := canvasBox.Bottom - yr.Translate(row.Optimal())
			points = append(points, [2]int{x, y})
		}

		style.WriteToRenderer(r)
		r.MoveTo(points[0][0], points[0][1])
		for _, p := range points[1:] {
			r.LineTo(p[0], p[1])
		}
		r.Stroke()

		for _, p := range points {
			style.WriteToRenderer(r)
			r.Circle(4, p[0], p[1])
			r.FillStroke()
		}
	}
}

// barSlots shrinks spacing, then bar width, until n bars fit in total.
func barSlots(total, n, width, spacing int) (int, int) {
	if n*(width+spacing) > total {
		spacing = 0
		if less := total - n*width; less > 0 {
			spacing = int(math.Ceil(float64(less) / float64(n)))
		}
	}

	if n*(width+spacing) > total {
		width = 0
		if less := total - n*spacing; less > 0 {
			width = int(math.Ceil(float64(less) / float64(n)))
		}
	}

	return width, spacing
}

// WriteRiskPiePNG renders the risk-category split.
func WriteRiskPiePNG(w io.Writer, probability float64, size Size) error {
	slices := BandSlices(risk.SplitBands(clampPercent(probability)))
	values := make([]chart.Value, 0, len(slices))

	for _, s := range slices {
		values = append(values, chart.Value{Value: s.Value, Label: s.Name, Style: sliceStyle(s.Color)})
	}

	graph := chart.PieChart{
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render risk pie png: %w", err)
	}

	return nil
}

func barWidth(width, count int) int {
	if count == 0 {
		return 0
	}

	return int(float64(width) / float64(count) * 0.6)
}
