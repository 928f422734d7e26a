/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Display helpers for individual readings. These label a single metric
// for presentation and have no effect on scoring.

// BMICategory returns the descriptive weight category for a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal Weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obese Class I"
	case bmi < 40:
		return "Obese Class II"
	default:
		return "Obese Class III"
	}
}

// BloodPressureCategory returns the descriptive stage for a blood
// pressure reading. Either value can raise the stage.
func BloodPressureCategory(systolic, diastolic int) string {
	switch {
	case systolic >= 180 || diastolic >= 120:
		return "Hypertensive Crisis"
	case float64(systolic) >= SystolicHighMin || float64(diastolic) >= DiastolicHighMin:
		return "High (Stage 2)"
	case float64(systolic) >= SystolicElevatedMin || float64(diastolic) >= DiastolicElevatedMin:
		return "High (Stage 1)"
	case systolic >= 120:
		return "Elevated"
	case systolic < 90:
		return "Low"
	default:
		return "Normal"
	}
}

// CholesterolCategory returns the descriptive category for a total
// cholesterol reading in mg/dL.
func CholesterolCategory(cholesterol float64) string {
	switch {
	case cholesterol < CholesterolBorderlineMin:
		return "Desirable"
	case cholesterol < CholesterolHighMin:
		return "Borderline High"
	default:
		return "High"
	}
}

// GlucoseCategory returns the descriptive category for a fasting glucose
// reading in mg/dL.
func GlucoseCategory(glucose float64) string {
	switch {
	case glucose < 70:
		return "Low"
	case glucose < GlucosePrediabetesMin:
		return "Normal"
	case glucose < GlucoseDiabetesMin:
		return "Prediabetes"
	default:
		return "Diabetes Range"
	}
}

// Interpretation returns an explanatory paragraph for a risk category.
func Interpretation(c Category) string {
	switch c {
	case CategoryLow:
		return "Your current health metrics indicate a low risk profile. Continue maintaining healthy lifestyle habits and regular check-ups."
	case CategoryModerate:
		return "Your health metrics indicate moderate risk factors. It's important to address these through lifestyle changes and possibly medical consultation."
	case CategoryHigh:
		return "Your health metrics indicate significant risk factors. We strongly recommend consulting with a healthcare professional for a comprehensive evaluation and treatment plan."
	}

	return "Please consult a healthcare professional for interpretation."
}

// GeneralAdvice returns wellness recommendations that apply regardless of
// the assessment outcome. They are presented separately and are never
// part of RiskAssessment.Recommendations.
func GeneralAdvice() []string {
	return []string{
		"Engage in at least 150 minutes of moderate aerobic activity per week.",
		"Stay hydrated and maintain a balanced diet rich in fruits, vegetables, and whole grains.",
		"Get 7-9 hours of quality sleep each night.",
		"Manage stress through relaxation techniques, meditation, or hobbies.",
		"Schedule regular check-ups with your healthcare provider.",
	}
}
