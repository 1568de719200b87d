/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

import (
	"context"
	"math"
)

// Input is the form data submitted for a prediction.
type Input struct {
	BMI           float64
	Glucose       float64
	Age           float64
	Pregnancies   float64
	BloodPressure float64
	SkinThickness float64
	Insulin       float64
	DPF           float64
}

// IsFull reports whether the extended form was used.
func (in Input) IsFull() bool {
	return in.Pregnancies > 0 || in.BloodPressure > 0 || in.SkinThickness > 0 ||
		in.Insulin > 0 || in.DPF > 0
}

// Features returns the model feature vector. Full predictions use the
// Pima column order; quick predictions use BMI, glucose and age.
func (in Input) Features() []float64 {
	if in.IsFull() {
		return []float64{
			in.Pregnancies, in.Glucose, in.BloodPressure, in.SkinThickness,
			in.Insulin, in.BMI, in.DPF, in.Age,
		}
	}

	return []float64{in.BMI, in.Glucose, in.Age}
}

// Measurements returns the chartable subset of the input.
func (in Input) Measurements() Measurements {
	return Measurements{
		BMI:           in.BMI,
		Glucose:       in.Glucose,
		Age:           in.Age,
		Insulin:       in.Insulin,
		Pregnancies:   in.Pregnancies,
		BloodPressure: in.BloodPressure,
		SkinThickness: in.SkinThickness,
	}
}

// Predictor estimates the probability, in percent, that the patient is diabetic.
type Predictor interface {
	Predict(ctx context.Context, in Input) (float64, error)
}

// HeuristicPredictor is the weighted-sum fallback used when no trained model
// is configured.
type HeuristicPredictor struct{}

// Predict implements Predictor.
func (HeuristicPredictor) Predict(_ context.Context, in Input) (float64, error) {
	var score float64
	if in.IsFull() {
		score = (in.Pregnancies*5 + in.Glucose*0.3 + in.BMI*0.8 + in.Age*0.5 + in.Insulin*0.1) / 2
	} else {
		score = in.BMI*0.8 + in.Glucose*0.4 + in.Age*0.2
	}

	return math.Min(100, round2(score)), nil
}

// Category is the coarse outcome shown on the result page.
type Category struct {
	Risk       string `json:"risk"`
	Level      string `json:"risk_level"`
	ResultText string `json:"result_text"`
	RiskText   string `json:"risk_text"`
}

// Categorize buckets a probability at 30 and 70 percent.
func Categorize(probability float64) Category {
	switch {
	case probability < 30:
		return Category{Risk: "Low", Level: "low", ResultText: "Non-Diabetic", RiskText: "Low Risk"}
	case probability < 70:
		return Category{Risk: "Medium", Level: "medium", ResultText: "Pre-Diabetic", RiskText: "Medium Risk"}
	default:
		return Category{Risk: "High", Level: "high", ResultText: "Diabetic", RiskText: "High Risk"}
	}
}

// Prediction is the outcome of a single prediction request.
type Prediction struct {
	Input       Input
	Probability float64
	Outcome     int
	Category    Category
}

// Assessment converts the prediction into the dashboard DTO.
func (p Prediction) Assessment() Assessment {
	return Assessment{
		Probability:  p.Probability,
		Measurements: p.Input.Measurements(),
		DPF:          p.Input.DPF,
	}
}

// Predict runs the predictor and derives outcome and category.
func Predict(ctx context.Context, predictor Predictor, in Input) (Prediction, error) {
	probability, err := predictor.Predict(ctx, in)
	if err != nil {
		return Prediction{}, err
	}

	probability = round2(probability)

	outcome := 0
	if probability > 50 {
		outcome = 1
	}

	return Prediction{
		Input:       in,
		Probability: probability,
		Outcome:     outcome,
		Category:    Categorize(probability),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
