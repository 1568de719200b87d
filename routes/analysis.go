/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/goccy/go-json"

	"github.com/glucolens/glucolens/charts"
	"github.com/glucolens/glucolens/db"
	"github.com/glucolens/glucolens/risk"
)

// Largest PNG edge accepted from the w and h query parameters.
const maxPNGEdge = 2000

// Analysis renders the dashboard for the assessment in the query string.
func Analysis(d *charts.Dashboard, a risk.Assessment, t template.Template, data template.Data) {
	mountLayout(d)

	setPublicSiteTitle(data)
	setAnalysisData(data, d, a)

	data["PrintURL"] = analysisSubURL("print", a)
	data["HistoryEnabled"] = db.Enabled()
	data["Query"] = AssessmentValues(a)

	t.HTML(http.StatusOK, "analysis")
}

func setAnalysisData(data template.Data, d *charts.Dashboard, a risk.Assessment) {
	data["Assessment"] = a
	data["Level"] = risk.Classify(a.Probability)
	data["Category"] = risk.Categorize(a.Probability)
	data["Rows"] = charts.FeatureRows(a.Measurements)
	data["Gauge"] = d.Chart(charts.SurfaceGauge)
	data["Overlay"] = d.Overlay(charts.SurfaceGauge)
	data["Features"] = d.Chart(charts.SurfaceFeatures)
	data["Pie"] = d.Chart(charts.SurfacePie)
	data["Charts"] = d.Charts()
	data["EChartsURL"] = d.ScriptURL()
}

// GaugePNG serves the gauge as an image.
func GaugePNG(c flamego.Context, d *charts.Dashboard, a risk.Assessment) {
	servePNG(c, d, charts.KindGauge, a)
}

// FeaturesPNG serves the feature comparison as an image.
func FeaturesPNG(c flamego.Context, d *charts.Dashboard, a risk.Assessment) {
	servePNG(c, d, charts.KindFeatures, a)
}

// RiskPiePNG serves the risk-category pie as an image.
func RiskPiePNG(c flamego.Context, d *charts.Dashboard, a risk.Assessment) {
	servePNG(c, d, charts.KindRiskPie, a)
}

func servePNG(c flamego.Context, d *charts.Dashboard, kind charts.Kind, a risk.Assessment) {
	size := d.Options().Sizes.For(kind)
	query := c.Request().URL.Query()
	size.Width = pngEdge(queryFloat(query, "w", float64(size.Width)), size.Width)
	size.Height = pngEdge(queryFloat(query, "h", float64(size.Height)), size.Height)

	var buf bytes.Buffer
	if err := writePNG(&buf, kind, a, size); err != nil {
		webLogger.Error("Failed to render chart image", "kind", kind, "error", err)
		http.Error(c.ResponseWriter(), "failed to render chart", http.StatusInternalServerError)

		return
	}

	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)

	if _, err := buf.WriteTo(w); err != nil {
		webLogger.Warn("Failed to write chart image", "kind", kind, "error", err)
	}
}

func pngEdge(v float64, def int) int {
	if v < 1 || v > maxPNGEdge {
		return def
	}

	return int(v)
}

func writePNG(w io.Writer, kind charts.Kind, a risk.Assessment, size charts.Size) error {
	switch kind {
	case charts.KindGauge:
		return charts.WriteGaugePNG(w, a.Probability, size)
	case charts.KindFeatures:
		return charts.WriteFeaturesPNG(w, a.Measurements, size)
	case charts.KindRiskPie:
		return charts.WriteRiskPiePNG(w, a.Probability, size)
	default:
		return fmt.Errorf("%w: %s", errUnknownChart, kind)
	}
}

type analysisResponse struct {
	Assessment risk.Assessment     `json:"assessment"`
	Level      risk.Level          `json:"level"`
	Category   risk.Category       `json:"category"`
	Features   []charts.FeatureRow `json:"features"`
	Bands      risk.Bands          `json:"bands"`
	Gauge      []float64           `json:"gauge"`
}

// AnalysisJSON returns the computed dashboard data without markup.
func AnalysisJSON(c flamego.Context, a risk.Assessment) {
	resp := analysisResponse{
		Assessment: a,
		Level:      risk.Classify(a.Probability),
		Category:   risk.Categorize(a.Probability),
		Features:   charts.FeatureRows(a.Measurements),
		Bands:      risk.SplitBands(a.Probability),
		Gauge:      charts.GaugeData(a.Probability),
	}

	body, err := json.Marshal(resp)
	if err != nil {
		webLogger.Error("Failed to encode analysis", "error", err)
		http.Error(c.ResponseWriter(), "failed to encode analysis", http.StatusInternalServerError)

		return
	}

	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		webLogger.Warn("Failed to write analysis response", "error", err)
	}
}
