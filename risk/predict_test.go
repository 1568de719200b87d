// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"context"
	"errors"
	"testing"
)

type stubPredictor struct {
	probability float64
	err         error
}

func (s stubPredictor) Predict(context.Context, Input) (float64, error) {
	return s.probability, s.err
}

func TestHeuristicPredictorQuick(t *testing.T) {
	t.Parallel()

	in := Input{BMI: 30, Glucose: 120, Age: 50}
	if in.IsFull() {
		t.Fatalf("expected quick input")
	}

	got, err := HeuristicPredictor{}.Predict(context.Background(), in)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	// 30*0.8 + 120*0.4 + 50*0.2 = 24 + 48 + 10
	assertClose(t, got, 82)
}

func TestHeuristicPredictorFull(t *testing.T) {
	t.Parallel()

	in := Input{BMI: 30, Glucose: 120, Age: 50, Pregnancies: 2, Insulin: 80}
	if !in.IsFull() {
		t.Fatalf("expected full input")
	}

	got, err := HeuristicPredictor{}.Predict(context.Background(), in)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	// (10 + 36 + 24 + 25 + 8) / 2
	assertClose(t, got, 51.5)

	if len(in.Features()) != 8 {
		t.Fatalf("expected 8 features for full input, got %d", len(in.Features()))
	}
}

func TestHeuristicPredictorCapsAtHundred(t *testing.T) {
	t.Parallel()

	got, _ := HeuristicPredictor{}.Predict(context.Background(), Input{BMI: 60, Glucose: 300, Age: 90})
	assertClose(t, got, 100)
}

func TestPredictDerivesOutcomeAndCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		probability float64
		outcome     int
		result      string
		level       string
	}{
		{probability: 12.345, outcome: 0, result: "Non-Diabetic", level: "low"},
		{probability: 50, outcome: 0, result: "Pre-Diabetic", level: "medium"},
		{probability: 50.01, outcome: 1, result: "Pre-Diabetic", level: "medium"},
		{probability: 70, outcome: 1, result: "Diabetic", level: "high"},
	}

	for _, tt := range tests {
		got, err := Predict(context.Background(), stubPredictor{probability: tt.probability}, Input{BMI: 22})
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}

		if got.Outcome != tt.outcome {
			t.Fatalf("p=%v: expected outcome %d, got %d", tt.probability, tt.outcome, got.Outcome)
		}
		if got.Category.ResultText != tt.result || got.Category.Level != tt.level {
			t.Fatalf("p=%v: unexpected category %+v", tt.probability, got.Category)
		}
	}
}

func TestPredictPropagatesErrors(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("model unavailable")
	if _, err := Predict(context.Background(), stubPredictor{err: wantErr}, Input{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}

func TestPredictionAssessmentCarriesMeasurements(t *testing.T) {
	t.Parallel()

	p, err := Predict(context.Background(), stubPredictor{probability: 33}, Input{BMI: 27, Glucose: 90, Age: 31, DPF: 0.4})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	a := p.Assessment()
	if a.Probability != 33 || a.Measurements.BMI != 27 || a.Measurements.Glucose != 90 || a.DPF != 0.4 {
		t.Fatalf("unexpected assessment %+v", a)
	}
}
