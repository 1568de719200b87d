// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/flamego/flamego"

	"github.com/glucolens/glucolens/charts"
	"github.com/glucolens/glucolens/risk"
)

func TestChartBootstrapIgnoresOtherPaths(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	f.Use(ChartBootstrap(DashboardConfig{}))

	var mapped bool

	f.Get("/choice", func(c flamego.Context) {
		mapped = c.Value(reflect.TypeOf((*charts.Dashboard)(nil))).IsValid()
		c.ResponseWriter().WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/choice?probability=90", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	if mapped {
		t.Fatalf("expected no dashboard outside the analysis pages")
	}
}

func TestChartBootstrapRendersOnMount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		includePie bool
		wantCharts []charts.SurfaceID
	}{
		{
			name:       "default layout",
			wantCharts: []charts.SurfaceID{charts.SurfaceGauge, charts.SurfaceFeatures},
		},
		{
			name:       "with pie",
			includePie: true,
			wantCharts: []charts.SurfaceID{charts.SurfaceGauge, charts.SurfaceFeatures, charts.SurfacePie},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				beforeMount int
				rendered    []charts.SurfaceID
				overlay     charts.GaugeOverlay
				got         risk.Assessment
			)

			f := flamego.New()
			f.Use(ChartBootstrap(DashboardConfig{IncludeRiskPie: tt.includePie}))
			f.Get("/analysis", func(d *charts.Dashboard, a risk.Assessment) {
				beforeMount = len(d.Charts())

				mountLayout(d)

				for _, c := range d.Charts() {
					rendered = append(rendered, c.Surface)
				}

				if o := d.Overlay(charts.SurfaceGauge); o != nil {
					overlay = *o
				}

				got = a
			})

			rec := httptest.NewRecorder()
			f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analysis?probability=75&bmi=31", nil))

			if beforeMount != 0 {
				t.Fatalf("expected no charts before the layout is mounted, got %d", beforeMount)
			}

			if len(rendered) != len(tt.wantCharts) {
				t.Fatalf("expected charts %v, got %v", tt.wantCharts, rendered)
			}

			for i := range rendered {
				if rendered[i] != tt.wantCharts[i] {
					t.Fatalf("expected charts %v, got %v", tt.wantCharts, rendered)
				}
			}

			if overlay.Percent != "75%" || overlay.Label != "High Risk" || overlay.Color != risk.ColorHigh {
				t.Fatalf("unexpected overlay: %+v", overlay)
			}

			if got.Probability != 75 || got.Measurements.BMI != 31 || got.Measurements.Glucose != risk.DefaultGlucose {
				t.Fatalf("unexpected assessment: %+v", got)
			}
		})
	}
}

func TestChartBootstrapDisposesAfterRequest(t *testing.T) {
	t.Parallel()

	var gauge *charts.Chart

	f := flamego.New()
	f.Use(ChartBootstrap(DashboardConfig{}))
	f.Get("/analysis", func(d *charts.Dashboard) {
		mountLayout(d)
		gauge = d.Chart(charts.SurfaceGauge)
	})

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analysis", nil))

	if gauge == nil {
		t.Fatalf("expected gauge to be rendered")
	}

	if !gauge.Destroyed() {
		t.Fatalf("expected gauge to be destroyed after the request")
	}
}
