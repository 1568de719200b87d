/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Band breakpoints and the split of the unused percentage across bands.
const (
	lowBandLimit    = 30.0
	mediumBandLimit = 60.0

	lowShare    = 0.3
	mediumShare = 0.4
	highShare   = 0.3
)

// Bands splits a probability into low, medium and high risk slices.
type Bands struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// Total returns the sum of all three slices.
func (b Bands) Total() float64 {
	return b.Low + b.Medium + b.High
}

// SplitBands fills the bands up to the probability using the fixed breakpoints,
// then spreads the remaining 100-p across low/medium/high as 30/40/30.
func SplitBands(probability float64) Bands {
	var b Bands

	switch {
	case probability < lowBandLimit:
		b.Low = probability
	case probability < mediumBandLimit:
		b.Low = lowBandLimit
		b.Medium = probability - lowBandLimit
	default:
		b.Low = lowBandLimit
		b.Medium = mediumBandLimit - lowBandLimit
		b.High = probability - mediumBandLimit
	}

	remaining := 100 - probability
	b.Low += remaining * lowShare
	b.Medium += remaining * mediumShare
	b.High += remaining * highShare

	return b
}
