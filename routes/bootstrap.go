/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"strings"

	"github.com/flamego/flamego"

	"github.com/glucolens/glucolens/charts"
	"github.com/glucolens/glucolens/logging"
)

var webLogger = logging.Logger(logging.SourceWeb)

// DashboardConfig holds the server-wide chart settings.
type DashboardConfig struct {
	IncludeRiskPie bool
	AssetsHost     string
}

// ChartBootstrap prepares the charts for pages under the analysis section.
// It maps the parsed risk.Assessment and a *charts.Dashboard whose charts
// are drawn once the handler mounts the page layout. Other paths pass through
// untouched.
func ChartBootstrap(cfg DashboardConfig) flamego.Handler {
	return func(c flamego.Context) {
		if !strings.Contains(c.Request().URL.Path, "analysis") {
			c.Next()
			return
		}

		a := ParseAssessment(c.Request().URL.Query())

		d := charts.NewDashboard(charts.NewSurfaces(), charts.Options{
			IncludeRiskPie: cfg.IncludeRiskPie,
			AssetsHost:     cfg.AssetsHost,
		})
		d.Surfaces().WhenMounted(func() {
			d.RenderAll(a)
		}, charts.Layout(cfg.IncludeRiskPie)...)

		c.Map(d, a)
		c.Next()

		d.DisposeAll()
	}
}

// mountLayout attaches the surfaces the analysis templates provide, which
// triggers the pending render.
func mountLayout(d *charts.Dashboard) {
	d.Surfaces().Mount(charts.Layout(d.Options().IncludeRiskPie)...)
}
