// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package risk

import "testing"

func TestBMICategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bmi  float64
		want string
	}{
		{16, "Underweight"},
		{18.5, "Normal Weight"},
		{24.9, "Normal Weight"},
		{25, "Overweight"},
		{30, "Obese Class I"},
		{35, "Obese Class II"},
		{40, "Obese Class III"},
	}

	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Fatalf("expected %q for bmi %v, got %q", tt.want, tt.bmi, got)
		}
	}
}

func TestBloodPressureCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		systolic  int
		diastolic int
		want      string
	}{
		{85, 55, "Low"},
		{110, 70, "Normal"},
		{122, 78, "Elevated"},
		{132, 78, "High (Stage 1)"},
		{118, 86, "High (Stage 1)"},
		{145, 80, "High (Stage 2)"},
		{118, 92, "High (Stage 2)"},
		{185, 90, "Hypertensive Crisis"},
		{140, 125, "Hypertensive Crisis"},
	}

	for _, tt := range tests {
		if got := BloodPressureCategory(tt.systolic, tt.diastolic); got != tt.want {
			t.Fatalf("expected %q for %d/%d, got %q", tt.want, tt.systolic, tt.diastolic, got)
		}
	}
}

func TestCholesterolCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{150, "Desirable"},
		{199.9, "Desirable"},
		{200, "Borderline High"},
		{239.9, "Borderline High"},
		{240, "High"},
	}

	for _, tt := range tests {
		if got := CholesterolCategory(tt.value); got != tt.want {
			t.Fatalf("expected %q for cholesterol %v, got %q", tt.want, tt.value, got)
		}
	}
}

func TestGlucoseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  string
	}{
		{60, "Low"},
		{70, "Normal"},
		{99.9, "Normal"},
		{100, "Prediabetes"},
		{125.9, "Prediabetes"},
		{126, "Diabetes Range"},
	}

	for _, tt := range tests {
		if got := GlucoseCategory(tt.value); got != tt.want {
			t.Fatalf("expected %q for glucose %v, got %q", tt.want, tt.value, got)
		}
	}
}

func TestInterpretationPerCategory(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, c := range []Category{CategoryLow, CategoryModerate, CategoryHigh} {
		text := Interpretation(c)
		if text == "" {
			t.Fatalf("expected interpretation for category %q", c)
		}

		if seen[text] {
			t.Fatalf("expected distinct interpretation for category %q", c)
		}
		seen[text] = true
	}

	if Interpretation(Category("bogus")) == "" {
		t.Fatalf("expected fallback interpretation for unknown category")
	}
}

func TestGeneralAdvice(t *testing.T) {
	t.Parallel()

	advice := GeneralAdvice()
	if len(advice) != 5 {
		t.Fatalf("expected 5 general advice entries, got %d", len(advice))
	}

	for i, entry := range advice {
		if entry == "" {
			t.Fatalf("expected non-empty advice at position %d", i)
		}
	}
}
