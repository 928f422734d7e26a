/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
)

var (
	colorHeading   = [3]int{44, 62, 80}    // Dark slate
	colorMuted     = [3]int{100, 100, 100} // Muted text
	colorFaint     = [3]int{150, 150, 150} // Footer text
	colorRule      = [3]int{74, 144, 226}  // Section underline
	colorTableHead = [3]int{44, 62, 80}    // Table header fill
	colorTableAlt  = [3]int{241, 245, 249} // Alternating row
	colorFallback  = [3]int{127, 140, 141} // Unknown category
)

const disclaimerText = "DISCLAIMER: This report is generated for educational and informational purposes only. " +
	"It is NOT intended to be a substitute for professional medical advice, diagnosis, or treatment. " +
	"Always seek the advice of your physician or other qualified health provider with any questions " +
	"you may have regarding a medical condition. Never disregard professional medical advice or " +
	"delay in seeking it because of something you have read in this report."

// PDFRenderer renders assembled reports as PDF documents.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF for a built report. The advice entries are
// printed in a general wellness section after the per-factor
// recommendations.
func (r *PDFRenderer) Render(rep *Report, advice []string) ([]byte, error) {
	if rep == nil {
		return nil, ErrMissingReport
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	r.writeHeader(pdf, rep)
	r.writeSummary(pdf, rep)
	r.writeMetrics(pdf, rep)
	r.writeRecommendations(pdf, rep)
	r.writeWellness(pdf, advice)
	r.writeDisclaimer(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output error: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *PDFRenderer) writeHeader(pdf *fpdf.Fpdf, rep *Report) {
	title, _ := rep.Section(SectionTitle)
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	pdf.CellFormat(0, 15, title.Value, "", 1, "C", false, 0, "")

	ts, _ := rep.Section(SectionTimestamp)
	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", ts.Value), "", 1, "C", false, 0, "")

	pdf.Ln(8)
}

// writeSectionTitle draws a section heading with its underline rule.
func (r *PDFRenderer) writeSectionTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pageWidth, _ := pdf.GetPageSize()
	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(colorRule[0], colorRule[1], colorRule[2])
	pdf.Line(15, pdf.GetY(), pageWidth-15, pdf.GetY())
	pdf.Ln(5)
}

func (r *PDFRenderer) writeSummary(pdf *fpdf.Fpdf, rep *Report) {
	r.writeSectionTitle(pdf, "Risk Assessment Summary")

	category, _ := rep.Section(SectionCategory)
	fill := hexColor(category.Marker)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	pdf.CellFormat(60, 8, "Risk Category:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(fill[0], fill[1], fill[2])
	pdf.CellFormat(0, 8, category.Value, "", 1, "L", false, 0, "")

	score, _ := rep.Section(SectionScore)
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	pdf.CellFormat(60, 8, "Risk Score:", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, score.Value, "", 1, "L", false, 0, "")

	pdf.Ln(8)
}

func (r *PDFRenderer) writeMetrics(pdf *fpdf.Fpdf, rep *Report) {
	r.writeSectionTitle(pdf, "Your Health Metrics")

	pdf.SetFillColor(colorTableHead[0], colorTableHead[1], colorTableHead[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 8, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 8, "Value", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	fill := false
	for _, m := range rep.Metrics() {
		pdf.SetFillColor(colorTableAlt[0], colorTableAlt[1], colorTableAlt[2])
		pdf.CellFormat(90, 7, m.Label, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(90, 7, m.Value, "1", 1, "L", fill, 0, "")
		fill = !fill
	}

	pdf.Ln(8)
}

func (r *PDFRenderer) writeRecommendations(pdf *fpdf.Fpdf, rep *Report) {
	r.writeSectionTitle(pdf, "Personalized Recommendations")

	recs, _ := rep.Section(SectionRecommendations)
	if len(recs.Items) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
		pdf.CellFormat(0, 8, "No specific risk factors were identified.", "", 1, "L", false, 0, "")
		pdf.Ln(8)
		return
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	for i, rec := range recs.Items {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, rec), "", "L", false)
		pdf.Ln(2)
	}

	pdf.Ln(6)
}

func (r *PDFRenderer) writeWellness(pdf *fpdf.Fpdf, advice []string) {
	if len(advice) == 0 {
		return
	}

	r.writeSectionTitle(pdf, "General Wellness")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(colorHeading[0], colorHeading[1], colorHeading[2])
	for _, entry := range advice {
		pdf.MultiCell(0, 6, fmt.Sprintf("- %s", entry), "", "L", false)
		pdf.Ln(2)
	}

	pdf.Ln(6)
}

func (r *PDFRenderer) writeDisclaimer(pdf *fpdf.Fpdf) {
	pdf.SetFont("Arial", "BI", 8)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.MultiCell(0, 4, disclaimerText, "", "L", false)

	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(colorFaint[0], colorFaint[1], colorFaint[2])
	pdf.CellFormat(0, 5, "Generated by Vitalsign", "", 0, "C", false, 0, "")
}

// hexColor converts a #RRGGBB marker into RGB components. Unknown
// markers fall back to a neutral gray.
func hexColor(marker string) [3]int {
	if len(marker) != 7 || marker[0] != '#' {
		return colorFallback
	}
	v, err := strconv.ParseUint(marker[1:], 16, 32)
	if err != nil {
		return colorFallback
	}
	return [3]int{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}
}
