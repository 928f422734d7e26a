/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package report assembles risk assessment results into an ordered
// document structure and renders it to PDF.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/humaidq/vitalsign/risk"
)

// SectionKind identifies what a report section holds.
type SectionKind string

const (
	SectionTitle           SectionKind = "title"
	SectionTimestamp       SectionKind = "timestamp"
	SectionMetric          SectionKind = "metric"
	SectionScore           SectionKind = "score"
	SectionCategory        SectionKind = "category"
	SectionRecommendations SectionKind = "recommendations"
)

// ReportTitle is the heading of every generated report.
const ReportTitle = "Health Risk Assessment Report"

// timestampFormat renders generation times for display.
const timestampFormat = "January 2, 2006 at 15:04"

// Section is one entry of a report, in display order. Value carries
// the rendered text for scalar sections; Items is only set for the
// recommendations section. Marker holds the category color.
type Section struct {
	Kind   SectionKind
	Label  string
	Value  string
	Marker string
	Items  []string
}

// Report is an ordered, render-ready view of one assessment.
type Report struct {
	GeneratedAt time.Time
	Sections    []Section
}

// Build assembles a report from metrics and their assessment. The
// section order is fixed: title, timestamp, one section per metric,
// score, category, recommendations.
func Build(m *risk.HealthMetrics, a *risk.RiskAssessment, generatedAt time.Time) (*Report, error) {
	if m == nil {
		return nil, ErrMissingMetrics
	}
	if a == nil {
		return nil, ErrMissingAssessment
	}

	smoker := "No"
	if m.IsSmoker {
		smoker = "Yes"
	}

	sections := []Section{
		{Kind: SectionTitle, Value: ReportTitle},
		{Kind: SectionTimestamp, Label: "Generated", Value: generatedAt.Format(timestampFormat)},
		{Kind: SectionMetric, Label: "BMI", Value: fmt.Sprintf("%.1f kg/m2", m.BMI)},
		{Kind: SectionMetric, Label: "Systolic Blood Pressure", Value: fmt.Sprintf("%d mmHg", m.SystolicBP)},
		{Kind: SectionMetric, Label: "Diastolic Blood Pressure", Value: fmt.Sprintf("%d mmHg", m.DiastolicBP)},
		{Kind: SectionMetric, Label: "Total Cholesterol", Value: fmt.Sprintf("%.0f mg/dL", m.Cholesterol)},
		{Kind: SectionMetric, Label: "Fasting Glucose", Value: fmt.Sprintf("%.0f mg/dL", m.Glucose)},
		{Kind: SectionMetric, Label: "Smoker", Value: smoker},
		{Kind: SectionMetric, Label: "Age", Value: fmt.Sprintf("%d years", m.Age)},
		{Kind: SectionScore, Label: "Risk Score", Value: strconv.Itoa(a.Score)},
		{Kind: SectionCategory, Label: "Risk Category", Value: a.Category.Label(), Marker: a.Category.Color()},
		{Kind: SectionRecommendations, Label: "Recommendations", Items: a.Recommendations},
	}

	return &Report{GeneratedAt: generatedAt, Sections: sections}, nil
}

// Metrics returns the metric sections in declared order.
func (r *Report) Metrics() []Section {
	var out []Section
	for _, s := range r.Sections {
		if s.Kind == SectionMetric {
			out = append(out, s)
		}
	}
	return out
}

// Section returns the first section of the given kind.
func (r *Report) Section(kind SectionKind) (Section, bool) {
	for _, s := range r.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}
