/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/vitalsign/dataset"
)

func renderHistogramChart(col *dataset.Column, bins int) (string, error) {
	buckets, err := col.Histogram(bins)
	if err != nil {
		return "", err
	}

	xAxis := make([]string, 0, len(buckets))
	yData := make([]opts.BarData, 0, len(buckets))
	for _, b := range buckets {
		xAxis = append(xAxis, fmt.Sprintf("%.1f-%.1f", b.Low, b.High))
		yData = append(yData, opts.BarData{Value: b.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "320px",
			ChartID: "histogram_chart",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Distribution of %s", col.Name),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate:      35,
				HideOverlap: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Count",
		}),
	)

	bar.SetXAxis(xAxis).
		AddSeries(col.Name, yData).
		SetSeriesOptions(
			charts.WithBarChartOpts(opts.BarChart{
				BarCategoryGap: "5%",
			}),
		)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func renderValueCountsChart(col *dataset.Column, limit int) (string, error) {
	counts := col.ValueCounts(limit)
	if len(counts) == 0 {
		return "", nil
	}

	xAxis := make([]string, 0, len(counts))
	yData := make([]opts.BarData, 0, len(counts))
	for _, vc := range counts {
		xAxis = append(xAxis, vc.Value)
		yData = append(yData, opts.BarData{Value: vc.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "320px",
			ChartID: "category_chart",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Value Counts of %s", col.Name),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate:      35,
				HideOverlap: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Count",
		}),
	)

	bar.SetXAxis(xAxis).AddSeries(col.Name, yData)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func renderScatterChart(sd *dataset.ScatterData, xName, yName string) (string, error) {
	points := make([]opts.ScatterData, 0, len(sd.X))
	minX, maxX := sd.X[0], sd.X[0]
	for i := range sd.X {
		points = append(points, opts.ScatterData{
			Value:      []interface{}{sd.X[i], sd.Y[i]},
			SymbolSize: 8,
		})
		if sd.X[i] < minX {
			minX = sd.X[i]
		}
		if sd.X[i] > maxX {
			maxX = sd.X[i]
		}
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "320px",
			ChartID: "scatter_chart",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s vs %s", xName, yName),
			Subtitle: fmt.Sprintf("Pearson correlation: %.3f", sd.Correlation),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:  "value",
			Name:  xName,
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Scale: opts.Bool(true),
		}),
	)

	scatter.SetXAxis(nil).AddSeries(yName, points)

	trend := charts.NewLine()
	trend.SetXAxis(nil).AddSeries("Trend", []opts.LineData{
		{Value: []interface{}{minX, sd.Slope*minX + sd.Intercept}},
		{Value: []interface{}{maxX, sd.Slope*maxX + sd.Intercept}},
	}, charts.WithLineChartOpts(opts.LineChart{
		ShowSymbol: opts.Bool(false),
	}))

	scatter.Overlap(trend)

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func renderCorrelationHeatmap(names []string, matrix [][]float64) (string, error) {
	items := make([]opts.HeatMapData, 0, len(names)*len(names))
	for i := range names {
		for j := range names {
			value := math.Round(matrix[j][i]*100) / 100
			items = append(items, opts.HeatMapData{
				Value: [3]interface{}{i, j, value},
			})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   "100%",
			Height:  "420px",
			ChartID: "correlation_heatmap",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Correlation Heatmap",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Rotate:      35,
				HideOverlap: opts.Bool(true),
			},
			SplitArea: &opts.SplitArea{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: names,
			SplitArea: &opts.SplitArea{
				Show: opts.Bool(true),
			},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        -1,
			Max:        1,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#4A90E2", "#FFFFFF", "#E74C3C"},
			},
		}),
	)

	hm.SetXAxis(names).AddSeries("correlation", items)

	var buf bytes.Buffer
	if err := hm.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
