/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package charts

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
)

// Kind identifies which renderer produced a chart.
type Kind string

// Chart kinds.
const (
	KindGauge    Kind = "gauge"
	KindFeatures Kind = "features"
	KindRiskPie  Kind = "risk_pie"
)

// Size is a chart's pixel dimensions.
type Size struct {
	Width  int
	Height int
}

func (s Size) width() string {
	return strconv.Itoa(s.Width) + "px"
}

func (s Size) height() string {
	return strconv.Itoa(s.Height) + "px"
}

// Sizes holds the dimensions for each chart kind.
type Sizes struct {
	Gauge    Size
	Features Size
	Pie      Size
}

// For returns the size configured for a kind.
func (s Sizes) For(kind Kind) Size {
	switch kind {
	case KindGauge:
		return s.Gauge
	case KindFeatures:
		return s.Features
	default:
		return s.Pie
	}
}

// DefaultSizes are the on-screen dimensions.
func DefaultSizes() Sizes {
	return Sizes{
		Gauge:    Size{Width: 400, Height: 260},
		Features: Size{Width: 820, Height: 400},
		Pie:      Size{Width: 420, Height: 300},
	}
}

// PrintSizes are larger dimensions used when the page is printed.
func PrintSizes() Sizes {
	return Sizes{
		Gauge:    Size{Width: 640, Height: 400},
		Features: Size{Width: 1040, Height: 520},
		Pie:      Size{Width: 640, Height: 440},
	}
}

type buildFunc func(Size) render.ChartSnippet

// Chart is a rendered chart bound to a surface. It stays valid until it is
// destroyed by a re-render of the same surface or by Dashboard.Dispose.
type Chart struct {
	Surface SurfaceID
	Kind    Kind
	Size    Size

	build     buildFunc
	snippet   render.ChartSnippet
	destroyed bool
}

func newChart(surface SurfaceID, kind Kind, size Size, build buildFunc) *Chart {
	c := &Chart{Surface: surface, Kind: kind, Size: size, build: build}
	c.snippet = build(size)

	return c
}

// Element is the chart container markup.
func (c *Chart) Element() template.HTML {
	if c.destroyed {
		return ""
	}

	return template.HTML(c.snippet.Element) //nolint:gosec // generated by go-echarts
}

// Script is the chart initialisation script.
func (c *Chart) Script() template.HTML {
	if c.destroyed {
		return ""
	}

	return template.HTML(c.snippet.Script) //nolint:gosec // generated by go-echarts
}

// Option is the raw echarts option JSON.
func (c *Chart) Option() string {
	return c.snippet.Option
}

// Destroyed reports whether the chart has been torn down.
func (c *Chart) Destroyed() bool {
	return c.destroyed
}

// Destroy releases the chart. Calling it twice is harmless.
func (c *Chart) Destroy() {
	if c.destroyed {
		return
	}

	c.destroyed = true
	c.snippet = render.ChartSnippet{}
	c.build = nil
}

// Resize redraws the chart at a new size.
func (c *Chart) Resize(size Size) {
	if c.destroyed || size == c.Size {
		return
	}

	c.Size = size
	c.snippet = c.build(size)
}

// DefaultAssetsHost is where the echarts library is loaded from unless
// configured otherwise.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// ScriptURL returns the echarts library URL served by assetsHost.
func ScriptURL(assetsHost string) string {
	if assetsHost == "" {
		assetsHost = DefaultAssetsHost
	}

	if !strings.HasSuffix(assetsHost, "/") {
		assetsHost += "/"
	}

	return assetsHost + "echarts.min.js"
}

func initialization(id SurfaceID, size Size, assetsHost string) opts.Initialization {
	init := opts.Initialization{
		ChartID: string(id),
		Width:   size.width(),
		Height:  size.height(),
	}
	if assetsHost != "" {
		init.AssetsHost = assetsHost
	}

	return init
}
