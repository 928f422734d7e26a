/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/skip2/go-qrcode"

	"github.com/humaidq/vitalsign/report"
	"github.com/humaidq/vitalsign/risk"
)

type assessmentField struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Step    string
	Default string
	Unit    string
	Healthy string
}

// assessmentFields drives both the form rendering and the input
// validation, in the order the factors are evaluated. Healthy ranges
// match the thresholds the scorer uses.
var assessmentFields = []assessmentField{
	{Name: "age", Label: "Age", Min: 1, Max: 120, Step: "1", Default: "30", Unit: "years"},
	{Name: "bmi", Label: "BMI", Min: 10, Max: 60, Step: "0.1", Default: "25.0", Unit: "kg/m2", Healthy: "18.5 to 24.9"},
	{Name: "systolic", Label: "Systolic Blood Pressure", Min: 60, Max: 250, Step: "1", Default: "120", Unit: "mmHg", Healthy: "below 130"},
	{Name: "diastolic", Label: "Diastolic Blood Pressure", Min: 40, Max: 150, Step: "1", Default: "80", Unit: "mmHg", Healthy: "below 85"},
	{Name: "cholesterol", Label: "Total Cholesterol", Min: 100, Max: 400, Step: "1", Default: "200", Unit: "mg/dL", Healthy: "below 200"},
	{Name: "glucose", Label: "Fasting Glucose", Min: 50, Max: 300, Step: "1", Default: "100", Unit: "mg/dL", Healthy: "below 100"},
}

type metricDisplayRow struct {
	Label     string
	Value     string
	Status    string
	Triggered bool
}

// AssessForm renders the risk assessment form
func AssessForm(c flamego.Context, t template.Template, data template.Data) {
	setPublicSiteTitle(data)
	data["IsAssess"] = true
	data["Fields"] = assessmentFields
	t.HTML(http.StatusOK, "assess")
}

// SubmitAssessment scores submitted health metrics and renders the
// result page
func SubmitAssessment(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Error("Error parsing assessment form", "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/assess", http.StatusSeeOther)
		return
	}

	m, err := MetricsFromValues(c.Request().Form)
	if err != nil {
		logger.Warn("Invalid assessment input", "error", err)
		SetErrorFlash(s, err.Error())
		c.Redirect("/assess", http.StatusSeeOther)
		return
	}

	a := risk.Assess(*m)

	setPublicSiteTitle(data)
	data["IsAssess"] = true
	data["Score"] = a.Score
	data["CategoryLabel"] = a.Category.Label()
	data["CategoryColor"] = a.Category.Color()
	data["Interpretation"] = risk.Interpretation(a.Category)
	data["Recommendations"] = a.Recommendations
	data["GeneralAdvice"] = risk.GeneralAdvice()
	data["Metrics"] = metricDisplayRows(m)

	pdfPath := reportPath(m)
	data["ReportPath"] = pdfPath

	qr, err := generateQRCodeDataURL(absoluteURL(c, pdfPath))
	if err != nil {
		logger.Error("Error generating report QR code", "error", err)
	} else {
		data["ReportQR"] = qr
	}

	t.HTML(http.StatusOK, "assess_result")
}

// DownloadReport serves the PDF report for the metrics given as
// query parameters
func DownloadReport(c flamego.Context, s session.Session) {
	m, err := MetricsFromValues(c.Request().URL.Query())
	if err != nil {
		logger.Warn("Invalid report parameters", "error", err)
		SetErrorFlash(s, "Invalid report parameters")
		c.Redirect("/assess", http.StatusSeeOther)
		return
	}

	a := risk.Assess(*m)

	rep, err := report.Build(m, &a, time.Now())
	if err != nil {
		logger.Error("Error building report", "error", err)
		SetErrorFlash(s, "Failed to generate report")
		c.Redirect("/assess", http.StatusSeeOther)
		return
	}

	pdf, err := report.NewPDFRenderer().Render(rep, risk.GeneralAdvice())
	if err != nil {
		logger.Error("Error rendering PDF report", "error", err)
		SetErrorFlash(s, "Failed to generate report")
		c.Redirect("/assess", http.StatusSeeOther)
		return
	}

	filename := fmt.Sprintf("health_risk_report_%s.pdf", time.Now().Format("20060102"))

	c.ResponseWriter().Header().Set("Content-Type", "application/pdf")
	c.ResponseWriter().Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.ResponseWriter().Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write(pdf); err != nil {
		logger.Error("Error writing PDF response", "error", err)
	}
}

// MetricsFromValues validates form or query values against the
// field ranges and assembles the health metrics.
func MetricsFromValues(values url.Values) (*risk.HealthMetrics, error) {
	age, err := parseIntField(values, "age")
	if err != nil {
		return nil, err
	}

	bmi, err := parseFloatField(values, "bmi")
	if err != nil {
		return nil, err
	}

	systolic, err := parseIntField(values, "systolic")
	if err != nil {
		return nil, err
	}

	diastolic, err := parseIntField(values, "diastolic")
	if err != nil {
		return nil, err
	}

	cholesterol, err := parseFloatField(values, "cholesterol")
	if err != nil {
		return nil, err
	}

	glucose, err := parseFloatField(values, "glucose")
	if err != nil {
		return nil, err
	}

	return &risk.HealthMetrics{
		BMI:         bmi,
		SystolicBP:  systolic,
		DiastolicBP: diastolic,
		Cholesterol: cholesterol,
		Glucose:     glucose,
		IsSmoker:    strings.EqualFold(strings.TrimSpace(values.Get("smoker")), "yes"),
		Age:         age,
	}, nil
}

func fieldByName(name string) assessmentField {
	for _, f := range assessmentFields {
		if f.Name == name {
			return f
		}
	}
	return assessmentField{Name: name, Label: name}
}

func parseFloatField(values url.Values, name string) (float64, error) {
	field := fieldByName(name)

	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%s: %w", field.Label, errFieldRequired)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field.Label, errInvalidNumber)
	}

	if v < field.Min || v > field.Max {
		return 0, fmt.Errorf("%s must be between %g and %g: %w", field.Label, field.Min, field.Max, errValueOutOfRange)
	}

	return v, nil
}

func parseIntField(values url.Values, name string) (int, error) {
	v, err := parseFloatField(values, name)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func metricDisplayRows(m *risk.HealthMetrics) []metricDisplayRow {
	smokerValue := "No"
	smokerStatus := "Non-smoker"
	if m.IsSmoker {
		smokerValue = "Yes"
		smokerStatus = "Current smoker"
	}

	triggered := make(map[risk.Factor]bool)
	for _, r := range risk.Evaluate(*m) {
		triggered[r.Factor] = true
	}

	return []metricDisplayRow{
		{Label: "BMI", Value: fmt.Sprintf("%.1f kg/m2", m.BMI), Status: risk.BMICategory(m.BMI), Triggered: triggered[risk.FactorBMI]},
		{Label: "Blood Pressure", Value: fmt.Sprintf("%d/%d mmHg", m.SystolicBP, m.DiastolicBP), Status: risk.BloodPressureCategory(m.SystolicBP, m.DiastolicBP), Triggered: triggered[risk.FactorBloodPressure]},
		{Label: "Total Cholesterol", Value: fmt.Sprintf("%.0f mg/dL", m.Cholesterol), Status: risk.CholesterolCategory(m.Cholesterol), Triggered: triggered[risk.FactorCholesterol]},
		{Label: "Fasting Glucose", Value: fmt.Sprintf("%.0f mg/dL", m.Glucose), Status: risk.GlucoseCategory(m.Glucose), Triggered: triggered[risk.FactorGlucose]},
		{Label: "Smoker", Value: smokerValue, Status: smokerStatus, Triggered: triggered[risk.FactorSmoking]},
		{Label: "Age", Value: fmt.Sprintf("%d years", m.Age), Status: "", Triggered: triggered[risk.FactorAge]},
	}
}

// reportPath builds the stateless PDF link for the given metrics.
func reportPath(m *risk.HealthMetrics) string {
	q := url.Values{}
	q.Set("age", strconv.Itoa(m.Age))
	q.Set("bmi", strconv.FormatFloat(m.BMI, 'f', 1, 64))
	q.Set("systolic", strconv.Itoa(m.SystolicBP))
	q.Set("diastolic", strconv.Itoa(m.DiastolicBP))
	q.Set("cholesterol", strconv.FormatFloat(m.Cholesterol, 'f', -1, 64))
	q.Set("glucose", strconv.FormatFloat(m.Glucose, 'f', -1, 64))
	smoker := "no"
	if m.IsSmoker {
		smoker = "yes"
	}
	q.Set("smoker", smoker)

	return "/assess/report.pdf?" + q.Encode()
}

func absoluteURL(c flamego.Context, path string) string {
	scheme := "http"
	if proto := strings.TrimSpace(strings.SplitN(c.Request().Header.Get("X-Forwarded-Proto"), ",", 2)[0]); proto != "" {
		scheme = proto
	} else if c.Request().TLS != nil {
		scheme = "https"
	}

	return scheme + "://" + c.Request().Host + path
}

func generateQRCodeDataURL(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
