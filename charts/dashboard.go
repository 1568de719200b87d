/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"github.com/go-echarts/go-echarts/v2/render"

	"github.com/glucolens/glucolens/logging"
	"github.com/glucolens/glucolens/risk"
)

var logger = logging.Logger(logging.SourceCharts)

// Options configures a Dashboard.
type Options struct {
	// IncludeRiskPie adds the risk-category pie to RenderAll.
	IncludeRiskPie bool
	// AssetsHost overrides where the echarts script is loaded from.
	AssetsHost string
	Sizes      Sizes
}

// Dashboard owns the charts of one analysis page. It is not safe for
// concurrent use; each request builds its own.
type Dashboard struct {
	opts     Options
	surfaces *Surfaces
	charts   map[SurfaceID]*Chart
	overlays map[SurfaceID]*GaugeOverlay
}

// NewDashboard creates a dashboard drawing into surfaces.
func NewDashboard(surfaces *Surfaces, options Options) *Dashboard {
	if surfaces == nil {
		surfaces = NewSurfaces()
	}

	if options.Sizes == (Sizes{}) {
		options.Sizes = DefaultSizes()
	}

	return &Dashboard{
		opts:     options,
		surfaces: surfaces,
		charts:   make(map[SurfaceID]*Chart),
		overlays: make(map[SurfaceID]*GaugeOverlay),
	}
}

// Surfaces returns the surface set the dashboard draws into.
func (d *Dashboard) Surfaces() *Surfaces {
	return d.surfaces
}

// Options returns the dashboard configuration.
func (d *Dashboard) Options() Options {
	return d.opts
}

// ScriptURL is the echarts library the rendered snippets depend on.
func (d *Dashboard) ScriptURL() string {
	return ScriptURL(d.opts.AssetsHost)
}

// RenderAll draws the gauge and then the feature chart, plus the risk pie when
// enabled.
func (d *Dashboard) RenderAll(a risk.Assessment) {
	d.RenderGauge(a.Probability)
	d.RenderFeatureBar(a.Measurements)

	if d.opts.IncludeRiskPie {
		d.RenderRiskPie(a.Probability)
	}
}

// RenderGauge draws the risk gauge and updates its centre overlay. It returns
// nil when the gauge surface is not mounted.
func (d *Dashboard) RenderGauge(probability float64) *Chart {
	c := d.replace(SurfaceGauge, KindGauge, func(size Size) render.ChartSnippet {
		return gaugeChart(probability, size, d.opts.AssetsHost).RenderSnippet()
	})
	if c == nil {
		return nil
	}

	overlay, ok := d.overlays[SurfaceGauge]
	if !ok {
		overlay = &GaugeOverlay{}
		d.overlays[SurfaceGauge] = overlay
	}

	overlay.update(probability)

	return c
}

// RenderFeatureBar draws patient measurements against their reference ranges.
func (d *Dashboard) RenderFeatureBar(m risk.Measurements) *Chart {
	return d.replace(SurfaceFeatures, KindFeatures, func(size Size) render.ChartSnippet {
		return featureChart(FeatureRows(m), size, d.opts.AssetsHost).RenderSnippet()
	})
}

// RenderRiskPie draws the low/medium/high split of the probability.
func (d *Dashboard) RenderRiskPie(probability float64) *Chart {
	return d.replace(SurfacePie, KindRiskPie, func(size Size) render.ChartSnippet {
		return riskPieChart(risk.SplitBands(probability), size, d.opts.AssetsHost).RenderSnippet()
	})
}

// Chart returns the live chart for a surface, or nil.
func (d *Dashboard) Chart(id SurfaceID) *Chart {
	return d.charts[id]
}

// Overlay returns the gauge overlay for a surface, or nil.
func (d *Dashboard) Overlay(id SurfaceID) *GaugeOverlay {
	return d.overlays[id]
}

// Charts returns the live charts in page order.
func (d *Dashboard) Charts() []*Chart {
	var out []*Chart

	for _, id := range []SurfaceID{SurfaceGauge, SurfaceFeatures, SurfacePie} {
		if c, ok := d.charts[id]; ok {
			out = append(out, c)
		}
	}

	return out
}

// Resize redraws every live chart at the given sizes.
func (d *Dashboard) Resize(sizes Sizes) {
	d.opts.Sizes = sizes

	for _, c := range d.charts {
		c.Resize(sizes.For(c.Kind))
	}
}

// Dispose destroys the chart and overlay on a surface.
func (d *Dashboard) Dispose(id SurfaceID) {
	if c, ok := d.charts[id]; ok {
		c.Destroy()
		delete(d.charts, id)
	}

	delete(d.overlays, id)
}

// DisposeAll destroys every chart.
func (d *Dashboard) DisposeAll() {
	for id := range d.charts {
		d.Dispose(id)
	}
}

func (d *Dashboard) replace(id SurfaceID, kind Kind, build buildFunc) *Chart {
	if !d.surfaces.Mounted(id) {
		logger.Debug("surface not mounted, skipping render", "surface", id, "kind", kind)
		return nil
	}

	c := newChart(id, kind, d.opts.Sizes.For(kind), build)

	if prev, ok := d.charts[id]; ok {
		prev.Destroy()
	}

	d.charts[id] = c

	logger.Debug("rendered chart", "surface", id, "kind", kind)

	return c
}
