/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Measurement names a physiological value shown on the feature chart.
type Measurement string

// Measurement values, in chart order.
const (
	MeasureBMI           Measurement = "BMI"
	MeasureGlucose       Measurement = "Glucose"
	MeasureAge           Measurement = "Age"
	MeasureInsulin       Measurement = "Insulin"
	MeasurePregnancies   Measurement = "Pregnancies"
	MeasureBloodPressure Measurement = "BP"
	MeasureSkinThickness Measurement = "Skin"
)

// MeasurementOrder is the fixed x-axis order of the feature chart.
var MeasurementOrder = []Measurement{
	MeasureBMI,
	MeasureGlucose,
	MeasureAge,
	MeasureInsulin,
	MeasurePregnancies,
	MeasureBloodPressure,
	MeasureSkinThickness,
}

// Defaults used when a value is absent from the request.
const (
	DefaultProbability   = 50.0
	DefaultBMI           = 25.0
	DefaultGlucose       = 100.0
	DefaultAge           = 40.0
	DefaultInsulin       = 100.0
	DefaultPregnancies   = 0.0
	DefaultBloodPressure = 120.0
	DefaultSkinThickness = 20.0
	DefaultDPF           = 0.5
)

// Measurements holds the seven patient values compared against reference ranges.
type Measurements struct {
	BMI           float64 `json:"bmi"`
	Glucose       float64 `json:"glucose"`
	Age           float64 `json:"age"`
	Insulin       float64 `json:"insulin"`
	Pregnancies   float64 `json:"pregnancies"`
	BloodPressure float64 `json:"blood_pressure"`
	SkinThickness float64 `json:"skin_thickness"`
}

// DefaultMeasurements returns the measurement set used when nothing was supplied.
func DefaultMeasurements() Measurements {
	return Measurements{
		BMI:           DefaultBMI,
		Glucose:       DefaultGlucose,
		Age:           DefaultAge,
		Insulin:       DefaultInsulin,
		Pregnancies:   DefaultPregnancies,
		BloodPressure: DefaultBloodPressure,
		SkinThickness: DefaultSkinThickness,
	}
}

// Value returns the value recorded for a measurement.
func (m Measurements) Value(name Measurement) (float64, bool) {
	switch name {
	case MeasureBMI:
		return m.BMI, true
	case MeasureGlucose:
		return m.Glucose, true
	case MeasureAge:
		return m.Age, true
	case MeasureInsulin:
		return m.Insulin, true
	case MeasurePregnancies:
		return m.Pregnancies, true
	case MeasureBloodPressure:
		return m.BloodPressure, true
	case MeasureSkinThickness:
		return m.SkinThickness, true
	default:
		return 0, false
	}
}

// Values returns the measurements in chart order.
func (m Measurements) Values() []float64 {
	values := make([]float64, 0, len(MeasurementOrder))
	for _, name := range MeasurementOrder {
		v, _ := m.Value(name)
		values = append(values, v)
	}

	return values
}

// Assessment is everything the dashboard needs to draw its charts.
type Assessment struct {
	Probability  float64      `json:"probability"`
	Measurements Measurements `json:"measurements"`
	DPF          float64      `json:"dpf"`
}

// DefaultAssessment returns the assessment shown when the request carries no values.
func DefaultAssessment() Assessment {
	return Assessment{
		Probability:  DefaultProbability,
		Measurements: DefaultMeasurements(),
		DPF:          DefaultDPF,
	}
}
