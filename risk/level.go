/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Chart palette shared by the dashboard renderers.
const (
	ColorHigh     = "#e74c3c"
	ColorModerate = "#f39c12"
	ColorLow      = "#2ecc71"
	ColorNeutral  = "#3498db"
	ColorTrack    = "#f0f2f5"
	ColorMuted    = "#666666"
)

// Gauge level thresholds.
const (
	HighRiskThreshold     = 70.0
	ModerateRiskThreshold = 40.0
)

// Level is the label and color used to present a risk probability.
type Level struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Classify maps a probability in percent to its display level. Values outside
// [0,100] are not rejected; they fall into the low or high bucket.
func Classify(probability float64) Level {
	switch {
	case probability >= HighRiskThreshold:
		return Level{Label: "High Risk", Color: ColorHigh}
	case probability >= ModerateRiskThreshold:
		return Level{Label: "Moderate Risk", Color: ColorModerate}
	default:
		return Level{Label: "Low Risk", Color: ColorLow}
	}
}
