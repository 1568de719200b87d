/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

import "math"

// borderlineFraction is the share of the range width a value may sit away from
// the optimum before it is reported as borderline.
const borderlineFraction = 0.3

// ReferenceRange is the normal interval and optimal point for a measurement.
type ReferenceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Optimal float64 `json:"optimal"`
}

// Width returns the size of the normal interval.
func (r ReferenceRange) Width() float64 {
	return r.Max - r.Min
}

var referenceRanges = map[Measurement]ReferenceRange{
	MeasureBMI:           {Min: 18.5, Max: 24.9, Optimal: 22},
	MeasureGlucose:       {Min: 70, Max: 140, Optimal: 100},
	MeasureAge:           {Min: 20, Max: 60, Optimal: 40},
	MeasureInsulin:       {Min: 16, Max: 166, Optimal: 100},
	MeasurePregnancies:   {Min: 0, Max: 4, Optimal: 2},
	MeasureBloodPressure: {Min: 90, Max: 120, Optimal: 110},
	MeasureSkinThickness: {Min: 10, Max: 30, Optimal: 20},
}

var units = map[Measurement]string{
	MeasureBMI:           "kg/m²",
	MeasureGlucose:       "mg/dL",
	MeasureAge:           "years",
	MeasureInsulin:       "μU/mL",
	MeasurePregnancies:   "",
	MeasureBloodPressure: "mmHg",
	MeasureSkinThickness: "mm",
}

// LookupReference returns the reference range for a measurement.
func LookupReference(name Measurement) (ReferenceRange, bool) {
	r, ok := referenceRanges[name]
	return r, ok
}

// Unit returns the display unit for a measurement, or "" when it has none.
func Unit(name Measurement) string {
	return units[name]
}

// Status describes how a value compares to its reference range.
type Status string

// Status values.
const (
	StatusNormal     Status = "normal"
	StatusBorderline Status = "borderline"
	StatusOutOfRange Status = "out_of_range"
	StatusUnknown    Status = "unknown"
)

// Color returns the bar color for a status.
func (s Status) Color() string {
	switch s {
	case StatusOutOfRange:
		return ColorHigh
	case StatusBorderline:
		return ColorModerate
	case StatusNormal:
		return ColorLow
	default:
		return ColorNeutral
	}
}

// ClassifyValue compares a value against a range. Both bounds are inclusive.
func ClassifyValue(value float64, r ReferenceRange) Status {
	if value < r.Min || value > r.Max {
		return StatusOutOfRange
	}

	if math.Abs(value-r.Optimal) > r.Width()*borderlineFraction {
		return StatusBorderline
	}

	return StatusNormal
}

// ClassifyMeasurement looks up the range for name and classifies value against it.
// Measurements without a range are StatusUnknown.
func ClassifyMeasurement(name Measurement, value float64) Status {
	r, ok := LookupReference(name)
	if !ok {
		return StatusUnknown
	}

	return ClassifyValue(value, r)
}
