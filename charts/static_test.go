// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package charts

import (
	"bytes"
	"testing"

	"github.com/glucolens/glucolens/risk"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestStaticRenderersWritePNG(t *testing.T) {
	t.Parallel()

	sizes := PrintSizes()

	tests := []struct {
		name   string
		render func(*bytes.Buffer) error
	}{
		{name: "gauge", render: func(b *bytes.Buffer) error { return WriteGaugePNG(b, 85, sizes.Gauge) }},
		{name: "features", render: func(b *bytes.Buffer) error {
			return WriteFeaturesPNG(b, risk.DefaultMeasurements(), sizes.Features)
		}},
		{name: "pie", render: func(b *bytes.Buffer) error { return WriteRiskPiePNG(b, 45, sizes.Pie) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := tt.render(&buf); err != nil {
				t.Fatalf("render failed: %v", err)
			}

			if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
				t.Fatalf("expected PNG output")
			}
		})
	}
}

func TestBarWidth(t *testing.T) {
	t.Parallel()

	if barWidth(700, 7) != 60 {
		t.Fatalf("unexpected bar width %d", barWidth(700, 7))
	}
	if barWidth(700, 0) != 0 {
		t.Fatalf("expected zero width without bars")
	}
}

func TestWriteFeaturesPNGFlatMeasurements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    risk.Measurements
	}{
		{name: "all zero", m: risk.Measurements{}},
		{name: "all equal", m: risk.Measurements{
			Pregnancies: 5, Glucose: 5, BloodPressure: 5, SkinThickness: 5,
			Insulin: 5, BMI: 5, Age: 5,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteFeaturesPNG(&buf, tt.m, PrintSizes().Features); err != nil {
				t.Fatalf("render failed: %v", err)
			}

			if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
				t.Fatalf("expected PNG output")
			}
		})
	}
}

func TestFeaturesRange(t *testing.T) {
	t.Parallel()

	zero := featuresRange(FeatureRows(risk.Measurements{}))
	if zero.Min != 0 || zero.Max < 1 {
		t.Fatalf("expected a non-empty range from zero, got %v..%v", zero.Min, zero.Max)
	}

	// The glucose optimal value lies above every measurement here.
	low := featuresRange(FeatureRows(risk.Measurements{Glucose: 10, BMI: -3}))
	glucose, _ := risk.LookupReference(risk.MeasureGlucose)

	if low.Min != -3 {
		t.Fatalf("expected range to include negative values, got min %v", low.Min)
	}
	if low.Max < glucose.Optimal {
		t.Fatalf("expected range to include optimal %v, got max %v", glucose.Optimal, low.Max)
	}
}

func TestBarSlots(t *testing.T) {
	t.Parallel()

	if w, s := barSlots(1200, 7, 60, 100); w != 60 || s != 100 {
		t.Fatalf("expected configured slots to fit, got %d/%d", w, s)
	}
	if w, s := barSlots(700, 7, 60, 100); w != 60 || s != 40 {
		t.Fatalf("expected spacing to shrink first, got %d/%d", w, s)
	}
	if w, s := barSlots(350, 7, 60, 100); w != 50 || s != 0 {
		t.Fatalf("expected bar width to shrink without spacing, got %d/%d", w, s)
	}
}
