/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"encoding/base64"
	"fmt"
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/skip2/go-qrcode"

	"github.com/glucolens/glucolens/charts"
	"github.com/glucolens/glucolens/risk"
)

const qrCodeSize = 256

// PrintImage is a chart embedded in the print view.
type PrintImage struct {
	Surface charts.SurfaceID
	Kind    charts.Kind
	Width   int
	Height  int
	Src     htmltemplate.URL
}

// PrintAnalysis renders the printable report. The charts are resized to print
// dimensions and embedded as images so the browser can print them once the
// page has loaded.
func PrintAnalysis(c flamego.Context, d *charts.Dashboard, a risk.Assessment, t template.Template, data template.Data) {
	mountLayout(d)
	d.Resize(charts.PrintSizes())

	images, err := printImages(d, a)
	if err != nil {
		webLogger.Error("Failed to render print charts", "error", err)
		renderServerError(t, data)

		return
	}

	analysisURL := externalURL(c.Request(), AnalysisURL(a))

	qr, err := qrcode.Encode(analysisURL, qrcode.Medium, qrCodeSize)
	if err != nil {
		// The report is still useful without the link.
		webLogger.Warn("Failed to encode analysis QR code", "error", err)
	} else {
		data["QRCode"] = pngDataURL(qr)
	}

	setPublicSiteTitle(data)
	setAnalysisData(data, d, a)

	data["Images"] = images
	data["AnalysisURL"] = analysisURL

	t.HTML(http.StatusOK, "analysis_print")
}

func printImages(d *charts.Dashboard, a risk.Assessment) ([]PrintImage, error) {
	live := d.Charts()
	images := make([]PrintImage, 0, len(live))

	for _, c := range live {
		var buf bytes.Buffer
		if err := writePNG(&buf, c.Kind, a, c.Size); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", c.Kind, err)
		}

		images = append(images, PrintImage{
			Surface: c.Surface,
			Kind:    c.Kind,
			Width:   c.Size.Width,
			Height:  c.Size.Height,
			Src:     pngDataURL(buf.Bytes()),
		})
	}

	return images, nil
}

func pngDataURL(png []byte) htmltemplate.URL {
	//nolint:gosec // base64 PNG produced by this package
	return htmltemplate.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
