// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package risk

import "testing"

func TestClassifyMeasurement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		m     Measurement
		value float64
		want  Status
	}{
		{name: "bmi above max", m: MeasureBMI, value: 30, want: StatusOutOfRange},
		{name: "glucose near optimum", m: MeasureGlucose, value: 105, want: StatusNormal},
		{name: "glucose below min", m: MeasureGlucose, value: 60, want: StatusOutOfRange},
		{name: "bp borderline", m: MeasureBloodPressure, value: 90, want: StatusBorderline},
		{name: "pregnancies at min", m: MeasurePregnancies, value: 0, want: StatusBorderline},
		{name: "skin at max", m: MeasureSkinThickness, value: 30, want: StatusBorderline},
		{name: "age at optimum", m: MeasureAge, value: 40, want: StatusNormal},
		{name: "unknown measurement", m: Measurement("DPF"), value: 0.5, want: StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ClassifyMeasurement(tt.m, tt.value); got != tt.want {
				t.Fatalf("ClassifyMeasurement(%s, %v) = %s, want %s", tt.m, tt.value, got, tt.want)
			}
		})
	}
}

func TestClassifyValueBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	r := ReferenceRange{Min: 10, Max: 20, Optimal: 15}

	for _, v := range []float64{10, 20} {
		if got := ClassifyValue(v, r); got == StatusOutOfRange {
			t.Fatalf("value %v at boundary reported out of range", v)
		}
	}

	if got := ClassifyValue(9.999, r); got != StatusOutOfRange {
		t.Fatalf("expected out of range below min, got %s", got)
	}

	if got := ClassifyValue(20.001, r); got != StatusOutOfRange {
		t.Fatalf("expected out of range above max, got %s", got)
	}
}

func TestStatusColor(t *testing.T) {
	t.Parallel()

	if StatusOutOfRange.Color() != ColorHigh {
		t.Fatalf("out of range should be red")
	}
	if StatusBorderline.Color() != ColorModerate {
		t.Fatalf("borderline should be orange")
	}
	if StatusNormal.Color() != ColorLow {
		t.Fatalf("normal should be green")
	}
	if StatusUnknown.Color() != ColorNeutral {
		t.Fatalf("unknown should be blue")
	}
}

func TestEveryChartMeasurementHasRangeAndUnitEntry(t *testing.T) {
	t.Parallel()

	for _, name := range MeasurementOrder {
		if _, ok := LookupReference(name); !ok {
			t.Fatalf("missing reference range for %s", name)
		}
		if _, ok := units[name]; !ok {
			t.Fatalf("missing unit for %s", name)
		}
	}

	if Unit(MeasurePregnancies) != "" {
		t.Fatalf("pregnancies should have no unit")
	}
	if Unit(MeasureBMI) != "kg/m²" {
		t.Fatalf("unexpected BMI unit %q", Unit(MeasureBMI))
	}
}
