/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package risk computes a heuristic, rule-based health risk score from a
// set of scalar health metrics. Scoring is a pure function over a fixed
// band table; see factors.go for the authoritative rule definitions.
package risk

// HealthMetrics holds one person's readings for a single assessment.
// Values are taken at face value; no cross-field invariant is enforced
// (a diastolic reading above the systolic one is scored as given).
type HealthMetrics struct {
	BMI         float64
	SystolicBP  int
	DiastolicBP int
	Cholesterol float64
	Glucose     float64
	IsSmoker    bool
	Age         int
}

// Severity classifies how strongly a matched band contributes to the score.
type Severity string

const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Score weights per severity. These are policy values, not clinically
// derived; they are declared here so the scoring table stays tunable.
const (
	WeightMedium = 1
	WeightHigh   = 2
)

// Category is the overall risk level derived from the total score.
type Category string

const (
	CategoryLow      Category = "low"
	CategoryModerate Category = "moderate"
	CategoryHigh     Category = "high"
)

// Score cutoffs for category derivation, inclusive on the lower bound
// of each higher band.
const (
	ModerateScoreCutoff = 3
	HighScoreCutoff     = 6
)

// Label returns the display name for a risk category.
func (c Category) Label() string {
	switch c {
	case CategoryLow:
		return "Low Risk"
	case CategoryModerate:
		return "Moderate Risk"
	case CategoryHigh:
		return "High Risk"
	}
	return "Unknown"
}

// Color returns the hex color used to present a risk category.
func (c Category) Color() string {
	switch c {
	case CategoryLow:
		return "#27AE60"
	case CategoryModerate:
		return "#F39C12"
	case CategoryHigh:
		return "#E74C3C"
	}
	return "#7F8C8D"
}

// RiskAssessment is the result of scoring one HealthMetrics record.
// It has no identity beyond its values: two assessments of identical
// metrics are identical.
type RiskAssessment struct {
	Score           int
	Category        Category
	Recommendations []string
}

// FactorResult describes one triggered risk factor band.
type FactorResult struct {
	Factor         Factor
	Label          string
	Severity       Severity
	Weight         int
	Recommendation string
}

// Evaluate returns the triggered band for each risk factor, in the fixed
// factor evaluation order. For each factor at most one band matches: bands
// are checked highest severity first and the first match wins. Factors
// whose readings fall in no band are omitted.
func Evaluate(m HealthMetrics) []FactorResult {
	defs := GetRiskFactorDefinitions()
	results := make([]FactorResult, 0, len(defs))

	for _, def := range defs {
		band, ok := matchBand(m, def)
		if !ok {
			continue
		}

		results = append(results, FactorResult{
			Factor:         def.Factor,
			Label:          def.Label,
			Severity:       band.Severity,
			Weight:         band.Weight,
			Recommendation: band.Recommendation,
		})
	}

	return results
}

// Assess scores a HealthMetrics record. It is pure and total: any numeric
// input is accepted, and values outside every band simply contribute
// nothing. The score is the sum of the triggered band weights, so it is
// never negative, and recommendations are collected in factor evaluation
// order (one per triggered factor).
func Assess(m HealthMetrics) RiskAssessment {
	var score int
	var recommendations []string

	for _, result := range Evaluate(m) {
		score += result.Weight
		recommendations = append(recommendations, result.Recommendation)
	}

	return RiskAssessment{
		Score:           score,
		Category:        CategoryForScore(score),
		Recommendations: recommendations,
	}
}

// CategoryForScore maps a total score to its risk category.
func CategoryForScore(score int) Category {
	switch {
	case score >= HighScoreCutoff:
		return CategoryHigh
	case score >= ModerateScoreCutoff:
		return CategoryModerate
	default:
		return CategoryLow
	}
}
