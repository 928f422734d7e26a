/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalsign/report"
	"github.com/humaidq/vitalsign/risk"
	"github.com/humaidq/vitalsign/routes"
)

// metricFlagNames lists the numeric metric flags in the order they
// are validated.
var metricFlagNames = []string{"age", "bmi", "systolic", "diastolic", "cholesterol", "glucose"}

var CmdAssess = &cli.Command{
	Name:  "assess",
	Usage: "Score a set of health metrics from the command line",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "age",
			Usage: "age in years",
		},
		&cli.StringFlag{
			Name:  "bmi",
			Usage: "body mass index in kg/m2",
		},
		&cli.StringFlag{
			Name:  "systolic",
			Usage: "systolic blood pressure in mmHg",
		},
		&cli.StringFlag{
			Name:  "diastolic",
			Usage: "diastolic blood pressure in mmHg",
		},
		&cli.StringFlag{
			Name:  "cholesterol",
			Usage: "total cholesterol in mg/dL",
		},
		&cli.StringFlag{
			Name:  "glucose",
			Usage: "fasting glucose in mg/dL",
		},
		&cli.BoolFlag{
			Name:  "smoker",
			Usage: "current smoker",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "write a PDF report to this path",
		},
	},
	Action: runAssess,
}

func runAssess(ctx context.Context, cmd *cli.Command) error {
	values := url.Values{}
	for _, name := range metricFlagNames {
		values.Set(name, cmd.String(name))
	}

	if cmd.Bool("smoker") {
		values.Set("smoker", "yes")
	}

	return assessAndPrint(values, strings.TrimSpace(cmd.String("output")))
}

func assessAndPrint(values url.Values, output string) error {
	m, err := routes.MetricsFromValues(values)
	if err != nil {
		return err
	}

	a := risk.Assess(*m)
	printAssessment(m, &a)

	if output != "" {
		if err := writeReportPDF(m, &a, output); err != nil {
			return err
		}

		fmt.Printf("\nPDF report written to %s\n", output)
	}

	return nil
}

func printAssessment(m *risk.HealthMetrics, a *risk.RiskAssessment) {
	fmt.Printf("Risk score:    %d\n", a.Score)
	fmt.Printf("Risk category: %s\n", a.Category.Label())
	fmt.Println()

	smoker := "no"
	if m.IsSmoker {
		smoker = "yes"
	}

	fmt.Println("Metrics:")
	fmt.Printf("  BMI:            %.1f kg/m2 (%s)\n", m.BMI, risk.BMICategory(m.BMI))
	fmt.Printf("  Blood pressure: %d/%d mmHg (%s)\n", m.SystolicBP, m.DiastolicBP, risk.BloodPressureCategory(m.SystolicBP, m.DiastolicBP))
	fmt.Printf("  Cholesterol:    %.0f mg/dL (%s)\n", m.Cholesterol, risk.CholesterolCategory(m.Cholesterol))
	fmt.Printf("  Glucose:        %.0f mg/dL (%s)\n", m.Glucose, risk.GlucoseCategory(m.Glucose))
	fmt.Printf("  Smoker:         %s\n", smoker)
	fmt.Printf("  Age:            %d years\n", m.Age)
	fmt.Println()

	if len(a.Recommendations) > 0 {
		fmt.Println("Recommendations:")

		for _, r := range a.Recommendations {
			fmt.Printf("  - %s\n", r)
		}

		fmt.Println()
	}

	fmt.Println(risk.Interpretation(a.Category))
}

func writeReportPDF(m *risk.HealthMetrics, a *risk.RiskAssessment, path string) error {
	rep, err := report.Build(m, a, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	pdf, err := report.NewPDFRenderer().Render(rep, risk.GeneralAdvice())
	if err != nil {
		return fmt.Errorf("failed to render PDF report: %w", err)
	}

	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}

	reportLogger.Info("PDF report written", "path", path, "bytes", len(pdf))

	return nil
}
