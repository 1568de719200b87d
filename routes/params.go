/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/glucolens/glucolens/charts"
	"github.com/glucolens/glucolens/risk"
)

// Query parameters carrying an assessment between pages.
const (
	paramProbability   = "probability"
	paramBMI           = "bmi"
	paramGlucose       = "glucose"
	paramAge           = "age"
	paramInsulin       = "insulin"
	paramPregnancies   = "pregnancies"
	paramBloodPressure = "blood_pressure"
	paramSkinThickness = "skin_thickness"
	paramDPF           = "dpf"
)

// Short names used by the prediction forms.
const (
	formPregnancies   = "preg"
	formBloodPressure = "bp"
	formSkinThickness = "skin"
)

// queryFloat returns the numeric value of key, or def when it is absent,
// empty or not a finite number. An explicit 0 is kept.
func queryFloat(values url.Values, key string, def float64) float64 {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// ParseAssessment reads the dashboard values, falling back to the defaults
// for anything missing or malformed.
func ParseAssessment(values url.Values) risk.Assessment {
	return risk.Assessment{
		Probability: queryFloat(values, paramProbability, risk.DefaultProbability),
		Measurements: risk.Measurements{
			BMI:           queryFloat(values, paramBMI, risk.DefaultBMI),
			Glucose:       queryFloat(values, paramGlucose, risk.DefaultGlucose),
			Age:           queryFloat(values, paramAge, risk.DefaultAge),
			Insulin:       queryFloat(values, paramInsulin, risk.DefaultInsulin),
			Pregnancies:   queryFloat(values, paramPregnancies, risk.DefaultPregnancies),
			BloodPressure: queryFloat(values, paramBloodPressure, risk.DefaultBloodPressure),
			SkinThickness: queryFloat(values, paramSkinThickness, risk.DefaultSkinThickness),
		},
		DPF: queryFloat(values, paramDPF, risk.DefaultDPF),
	}
}

// ParseInput reads a prediction form. Absent values are zero, which also
// selects the quick prediction when none of the extended fields are set.
func ParseInput(values url.Values) risk.Input {
	return risk.Input{
		BMI:           queryFloat(values, paramBMI, 0),
		Glucose:       queryFloat(values, paramGlucose, 0),
		Age:           queryFloat(values, paramAge, 0),
		Pregnancies:   queryFloat(values, formPregnancies, 0),
		BloodPressure: queryFloat(values, formBloodPressure, 0),
		SkinThickness: queryFloat(values, formSkinThickness, 0),
		Insulin:       queryFloat(values, paramInsulin, 0),
		DPF:           queryFloat(values, paramDPF, 0),
	}
}

// AssessmentValues encodes an assessment as query parameters.
func AssessmentValues(a risk.Assessment) url.Values {
	m := a.Measurements

	values := url.Values{}
	values.Set(paramProbability, charts.FormatNumber(a.Probability))
	values.Set(paramBMI, charts.FormatNumber(m.BMI))
	values.Set(paramGlucose, charts.FormatNumber(m.Glucose))
	values.Set(paramAge, charts.FormatNumber(m.Age))
	values.Set(paramInsulin, charts.FormatNumber(m.Insulin))
	values.Set(paramPregnancies, charts.FormatNumber(m.Pregnancies))
	values.Set(paramBloodPressure, charts.FormatNumber(m.BloodPressure))
	values.Set(paramSkinThickness, charts.FormatNumber(m.SkinThickness))
	values.Set(paramDPF, charts.FormatNumber(a.DPF))

	return values
}

// AnalysisURL links to the dashboard for an assessment.
func AnalysisURL(a risk.Assessment) string {
	return "/analysis?" + AssessmentValues(a).Encode()
}

func analysisSubURL(page string, a risk.Assessment) string {
	return "/analysis/" + page + "?" + AssessmentValues(a).Encode()
}
