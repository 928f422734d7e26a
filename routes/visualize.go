/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
)

const (
	defaultHistogramBins = 30
	minHistogramBins     = 5
	maxHistogramBins     = 100
	categoryBarLimit     = 20
)

// Visualize renders the chart dashboard page
func Visualize(c flamego.Context, t template.Template, data template.Data) {
	setPublicSiteTitle(data)
	data["IsVisualize"] = true

	ds, err := loadedDataset()
	if err != nil {
		logger.Error("Error loading dataset for visualize page", "error", err)
		data["Error"] = "No dataset is loaded"
		t.HTML(http.StatusOK, "visualize")
		return
	}

	data["DatasetName"] = activeDatasetName

	numeric := ds.NumericColumns()
	categorical := ds.CategoricalColumns()
	data["NumericColumns"] = numeric
	data["CategoricalColumns"] = categorical

	if len(numeric) == 0 {
		data["Error"] = "No numeric columns to visualize"
		t.HTML(http.StatusOK, "visualize")
		return
	}

	histName := resolveColumn(c.Query("hist"), numeric)
	bins := resolveBins(c.Query("bins"))
	data["SelectedHist"] = histName
	data["SelectedBins"] = bins

	histCol, _ := ds.Column(histName)
	histChart, err := renderHistogramChart(histCol, bins)
	if err != nil {
		logger.Error("Error rendering histogram", "column", histName, "error", err)
		data["Error"] = "Failed to render histogram"
	} else {
		data["HistogramChart"] = htmltemplate.HTML(histChart)
	}

	if names, matrix, err := ds.CorrelationMatrix(); err == nil {
		heatmap, err := renderCorrelationHeatmap(names, matrix)
		if err != nil {
			logger.Error("Error rendering correlation heatmap", "error", err)
		} else {
			data["CorrelationChart"] = htmltemplate.HTML(heatmap)
		}
	}

	if len(numeric) >= 2 {
		xName := resolveColumn(c.Query("x"), numeric)
		yName := resolveColumn(c.Query("y"), numeric)
		if xName == yName {
			yName = otherColumn(numeric, xName)
		}
		data["SelectedX"] = xName
		data["SelectedY"] = yName

		sd, err := ds.Scatter(xName, yName)
		if err != nil {
			logger.Error("Error building scatter data", "x", xName, "y", yName, "error", err)
		} else {
			data["ScatterR"] = strconv.FormatFloat(sd.Correlation, 'f', 3, 64)

			chart, err := renderScatterChart(sd, xName, yName)
			if err != nil {
				logger.Error("Error rendering scatter chart", "error", err)
			} else {
				data["ScatterChart"] = htmltemplate.HTML(chart)
			}
		}
	}

	if len(categorical) > 0 {
		catName := resolveColumn(c.Query("cat"), categorical)
		data["SelectedCat"] = catName

		catCol, _ := ds.Column(catName)
		chart, err := renderValueCountsChart(catCol, categoryBarLimit)
		if err != nil {
			logger.Error("Error rendering value counts chart", "column", catName, "error", err)
		} else if chart != "" {
			data["CategoryChart"] = htmltemplate.HTML(chart)
		}
	}

	t.HTML(http.StatusOK, "visualize")
}

// resolveColumn returns the requested column when it is one of the
// allowed names, and the first allowed name otherwise.
func resolveColumn(requested string, allowed []string) string {
	requested = strings.TrimSpace(requested)
	for _, name := range allowed {
		if name == requested {
			return name
		}
	}
	return allowed[0]
}

func otherColumn(names []string, taken string) string {
	for _, name := range names {
		if name != taken {
			return name
		}
	}
	return taken
}

func resolveBins(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultHistogramBins
	}

	bins, err := strconv.Atoi(raw)
	if err != nil {
		return defaultHistogramBins
	}
	if bins < minHistogramBins {
		return minHistogramBins
	}
	if bins > maxHistogramBins {
		return maxHistogramBins
	}
	return bins
}
