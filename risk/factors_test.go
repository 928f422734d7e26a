// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package risk

import "testing"

func TestRiskFactorDefinitionOrder(t *testing.T) {
	t.Parallel()

	defs := GetRiskFactorDefinitions()

	wantOrder := []Factor{
		FactorBMI,
		FactorBloodPressure,
		FactorCholesterol,
		FactorGlucose,
		FactorSmoking,
		FactorAge,
	}

	if len(defs) != len(wantOrder) {
		t.Fatalf("expected %d factor definitions, got %d", len(wantOrder), len(defs))
	}

	for i, def := range defs {
		if def.Factor != wantOrder[i] {
			t.Fatalf("expected factor %q at position %d, got %q", wantOrder[i], i, def.Factor)
		}
	}
}

func TestRiskFactorBandsDeclaredHighestFirst(t *testing.T) {
	t.Parallel()

	severityRank := map[Severity]int{
		SeverityHigh:   2,
		SeverityMedium: 1,
	}

	for _, def := range GetRiskFactorDefinitions() {
		if len(def.Bands) == 0 {
			t.Fatalf("expected bands for factor %q", def.Factor)
		}

		for i := 1; i < len(def.Bands); i++ {
			if severityRank[def.Bands[i].Severity] >= severityRank[def.Bands[i-1].Severity] {
				t.Fatalf("expected descending severity for factor %q", def.Factor)
			}
		}
	}
}

func TestAdjacentBandsShareBoundary(t *testing.T) {
	t.Parallel()

	for _, def := range GetRiskFactorDefinitions() {
		for i := 1; i < len(def.Bands); i++ {
			upper := def.Bands[i-1]
			lower := def.Bands[i]

			if upper.Min == nil || lower.Max == nil {
				continue
			}

			if *lower.Max != *upper.Min {
				t.Fatalf("expected band boundary of factor %q to align, got max %v and min %v",
					def.Factor, *lower.Max, *upper.Min)
			}
		}
	}
}

func TestBloodPressureEitherReadingTriggers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		systolic  int
		diastolic int
		severity  Severity
		triggered bool
	}{
		{"high systolic alone", 150, 70, SeverityHigh, true},
		{"high diastolic alone", 110, 95, SeverityHigh, true},
		{"elevated systolic alone", 132, 70, SeverityMedium, true},
		{"elevated diastolic alone", 110, 86, SeverityMedium, true},
		{"boundary systolic high", 140, 70, SeverityHigh, true},
		{"boundary diastolic elevated", 110, 85, SeverityMedium, true},
		{"normal readings", 118, 76, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := healthyMetrics()
			m.SystolicBP = tt.systolic
			m.DiastolicBP = tt.diastolic

			var triggered *FactorResult
			for _, result := range Evaluate(m) {
				if result.Factor == FactorBloodPressure {
					r := result
					triggered = &r
				}
			}

			if !tt.triggered {
				if triggered != nil {
					t.Fatalf("expected no blood pressure band for %d/%d", tt.systolic, tt.diastolic)
				}
				return
			}

			if triggered == nil {
				t.Fatalf("expected blood pressure band for %d/%d", tt.systolic, tt.diastolic)
			}

			if triggered.Severity != tt.severity {
				t.Fatalf("expected severity %q, got %q", tt.severity, triggered.Severity)
			}
		})
	}
}

func TestFactorBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*HealthMetrics)
		factor   Factor
		severity Severity
	}{
		{"bmi at overweight threshold", func(m *HealthMetrics) { m.BMI = BMIOverweightMin }, FactorBMI, SeverityMedium},
		{"bmi at obese threshold", func(m *HealthMetrics) { m.BMI = BMIObeseMin }, FactorBMI, SeverityHigh},
		{"cholesterol at borderline threshold", func(m *HealthMetrics) { m.Cholesterol = CholesterolBorderlineMin }, FactorCholesterol, SeverityMedium},
		{"cholesterol at high threshold", func(m *HealthMetrics) { m.Cholesterol = CholesterolHighMin }, FactorCholesterol, SeverityHigh},
		{"glucose at prediabetes threshold", func(m *HealthMetrics) { m.Glucose = GlucosePrediabetesMin }, FactorGlucose, SeverityMedium},
		{"glucose at diabetes threshold", func(m *HealthMetrics) { m.Glucose = GlucoseDiabetesMin }, FactorGlucose, SeverityHigh},
		{"smoker", func(m *HealthMetrics) { m.IsSmoker = true }, FactorSmoking, SeverityHigh},
		{"age at screening threshold", func(m *HealthMetrics) { m.Age = int(ScreeningAgeMin) }, FactorAge, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := healthyMetrics()
			tt.mutate(&m)

			results := Evaluate(m)
			if len(results) != 1 {
				t.Fatalf("expected exactly one triggered factor, got %d", len(results))
			}

			if results[0].Factor != tt.factor {
				t.Fatalf("expected factor %q, got %q", tt.factor, results[0].Factor)
			}

			if results[0].Severity != tt.severity {
				t.Fatalf("expected severity %q, got %q", tt.severity, results[0].Severity)
			}
		})
	}
}

func TestFactorJustBelowBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*HealthMetrics)
	}{
		{"bmi just below overweight", func(m *HealthMetrics) { m.BMI = BMIOverweightMin - 0.1 }},
		{"cholesterol just below borderline", func(m *HealthMetrics) { m.Cholesterol = CholesterolBorderlineMin - 0.1 }},
		{"glucose just below prediabetes", func(m *HealthMetrics) { m.Glucose = GlucosePrediabetesMin - 0.1 }},
		{"age just below screening", func(m *HealthMetrics) { m.Age = int(ScreeningAgeMin) - 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := healthyMetrics()
			tt.mutate(&m)

			if results := Evaluate(m); len(results) != 0 {
				t.Fatalf("expected no triggered factors, got %d", len(results))
			}
		})
	}
}
