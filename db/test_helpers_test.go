// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/glucolens/glucolens/risk"
)

func testContext() context.Context {
	return context.Background()
}

func sampleAssessment(probability float64) risk.Assessment {
	a := risk.DefaultAssessment()
	a.Probability = probability
	a.Measurements.BMI = 31.2
	a.Measurements.Glucose = 148

	return a
}

func mustCreateAssessment(t *testing.T, label string, probability float64) uuid.UUID {
	t.Helper()

	id, err := CreateAssessment(testContext(), label, sampleAssessment(probability))
	if err != nil {
		t.Fatalf("failed to create assessment: %v", err)
	}

	return id
}
