/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package risk

// Factor identifies one of the scored risk factors.
type Factor string

const (
	FactorBMI           Factor = "bmi"
	FactorBloodPressure Factor = "blood_pressure"
	FactorCholesterol   Factor = "cholesterol"
	FactorGlucose       Factor = "glucose"
	FactorSmoking       Factor = "smoking"
	FactorAge           Factor = "age"
)

// Band thresholds. Policy values rather than a cited clinical standard,
// kept as named constants so the table below stays tunable.
const (
	BMIObeseMin      = 30.0
	BMIOverweightMin = 25.0

	SystolicHighMin      = 140.0
	DiastolicHighMin     = 90.0
	SystolicElevatedMin  = 130.0
	DiastolicElevatedMin = 85.0

	CholesterolHighMin       = 240.0
	CholesterolBorderlineMin = 200.0

	GlucoseDiabetesMin    = 126.0
	GlucosePrediabetesMin = 100.0

	ScreeningAgeMin = 60.0
)

// Recommendation strings, one per band, appended in factor evaluation
// order when the band triggers.
const (
	recWeightManagement = "Your BMI indicates obesity. Consult a healthcare provider for a weight management plan."
	recDietExercise     = "Your BMI indicates overweight. Regular exercise and balanced diet can help reduce health risks."
	recBPConsult        = "Your blood pressure indicates hypertension. Monitor it regularly and consult your doctor about management."
	recBPLifestyle      = "Your blood pressure is elevated. Lifestyle modifications may help prevent hypertension."
	recCholManagement   = "Your cholesterol is high. Consult your doctor about medication and lifestyle changes."
	recCholDiet         = "Your cholesterol is borderline high. Consider dietary changes to reduce cardiovascular risk."
	recGlucoseScreening = "Your glucose level suggests diabetes. Consult your doctor for proper diagnosis and management."
	recGlucoseMonitor   = "Your glucose indicates prediabetes. Monitor your levels and consider lifestyle changes to prevent type 2 diabetes."
	recSmokingCessation = "Smoking significantly increases health risks. Consider a smoking cessation program."
	recAgeScreening     = "At your age, regular medical check-ups and monitoring are essential."
)

// RiskBand is one severity band of a risk factor. Numeric bounds are
// optional: Min is inclusive and Max is exclusive, and a nil bound is
// unbounded. Blood pressure bands instead trigger when either reading
// reaches its own lower bound.
type RiskBand struct {
	Severity       Severity
	Weight         int
	Recommendation string
	Min            *float64
	Max            *float64
	SystolicMin    *float64
	DiastolicMin   *float64
}

// RiskFactorDefinition declares the ordered severity bands of one factor.
type RiskFactorDefinition struct {
	Factor Factor
	Label  string
	Bands  []RiskBand
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// GetRiskFactorDefinitions returns the scoring rule table evaluated by
// Assess. This is the authoritative source of truth for risk bands:
// factors appear in evaluation order, and within a factor, bands are
// declared highest severity first with the first match winning. Adjacent
// numeric bands share a boundary (Max of one is Min of the next) so they
// are mutually exclusive by construction.
func GetRiskFactorDefinitions() []RiskFactorDefinition {
	return []RiskFactorDefinition{
		// ===== BODY MASS INDEX (kg/m²) =====
		{
			Factor: FactorBMI, Label: "BMI",
			Bands: []RiskBand{
				{
					Severity: SeverityHigh, Weight: WeightHigh,
					Min:            ptr(BMIObeseMin),
					Recommendation: recWeightManagement,
				},
				{
					Severity: SeverityMedium, Weight: WeightMedium,
					Min: ptr(BMIOverweightMin), Max: ptr(BMIObeseMin),
					Recommendation: recDietExercise,
				},
			},
		},

		// ===== BLOOD PRESSURE (mmHg) =====
		// Either reading crossing its bound triggers the band.
		{
			Factor: FactorBloodPressure, Label: "Blood Pressure",
			Bands: []RiskBand{
				{
					Severity: SeverityHigh, Weight: WeightHigh,
					SystolicMin: ptr(SystolicHighMin), DiastolicMin: ptr(DiastolicHighMin),
					Recommendation: recBPConsult,
				},
				{
					Severity: SeverityMedium, Weight: WeightMedium,
					SystolicMin: ptr(SystolicElevatedMin), DiastolicMin: ptr(DiastolicElevatedMin),
					Recommendation: recBPLifestyle,
				},
			},
		},

		// ===== TOTAL CHOLESTEROL (mg/dL) =====
		{
			Factor: FactorCholesterol, Label: "Total Cholesterol",
			Bands: []RiskBand{
				{
					Severity: SeverityHigh, Weight: WeightHigh,
					Min:            ptr(CholesterolHighMin),
					Recommendation: recCholManagement,
				},
				{
					Severity: SeverityMedium, Weight: WeightMedium,
					Min: ptr(CholesterolBorderlineMin), Max: ptr(CholesterolHighMin),
					Recommendation: recCholDiet,
				},
			},
		},

		// ===== FASTING GLUCOSE (mg/dL) =====
		{
			Factor: FactorGlucose, Label: "Fasting Glucose",
			Bands: []RiskBand{
				{
					Severity: SeverityHigh, Weight: WeightHigh,
					Min:            ptr(GlucoseDiabetesMin),
					Recommendation: recGlucoseScreening,
				},
				{
					Severity: SeverityMedium, Weight: WeightMedium,
					Min: ptr(GlucosePrediabetesMin), Max: ptr(GlucoseDiabetesMin),
					Recommendation: recGlucoseMonitor,
				},
			},
		},

		// ===== SMOKING =====
		{
			Factor: FactorSmoking, Label: "Smoking",
			Bands: []RiskBand{
				{
					Severity: SeverityHigh, Weight: WeightHigh,
					Recommendation: recSmokingCessation,
				},
			},
		},

		// ===== AGE (years) =====
		{
			Factor: FactorAge, Label: "Age",
			Bands: []RiskBand{
				{
					Severity: SeverityMedium, Weight: WeightMedium,
					Min:            ptr(ScreeningAgeMin),
					Recommendation: recAgeScreening,
				},
			},
		},
	}
}

// matchBand returns the first band of the definition that the metrics
// fall into, checking bands in declared (highest severity first) order.
func matchBand(m HealthMetrics, def RiskFactorDefinition) (RiskBand, bool) {
	for _, band := range def.Bands {
		if bandMatches(m, def.Factor, band) {
			return band, true
		}
	}

	return RiskBand{}, false
}

func bandMatches(m HealthMetrics, factor Factor, band RiskBand) bool {
	switch factor {
	case FactorBMI:
		return inBand(m.BMI, band)
	case FactorBloodPressure:
		return bloodPressureInBand(m, band)
	case FactorCholesterol:
		return inBand(m.Cholesterol, band)
	case FactorGlucose:
		return inBand(m.Glucose, band)
	case FactorSmoking:
		return m.IsSmoker
	case FactorAge:
		return inBand(float64(m.Age), band)
	}

	return false
}

func inBand(value float64, band RiskBand) bool {
	if band.Min != nil && value < *band.Min {
		return false
	}
	if band.Max != nil && value >= *band.Max {
		return false
	}

	return true
}

func bloodPressureInBand(m HealthMetrics, band RiskBand) bool {
	if band.SystolicMin != nil && float64(m.SystolicBP) >= *band.SystolicMin {
		return true
	}
	if band.DiastolicMin != nil && float64(m.DiastolicBP) >= *band.DiastolicMin {
		return true
	}

	return false
}
