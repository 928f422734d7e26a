/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"math"
	"net/http"
	"strconv"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/vitalsign/dataset"
)

type columnSummaryRow struct {
	Name      string
	Count     string
	Mean      string
	Median    string
	Std       string
	Variance  string
	Min       string
	P25       string
	P50       string
	P75       string
	Max       string
	Skewness  string
	Kurtosis  string
	SkewLabel string
}

type columnTypeRow struct {
	Name string
	Type string
}

type missingValueRow struct {
	Name    string
	Count   int
	Percent string
}

type correlationRow struct {
	X string
	Y string
	R string
}

// strongCorrelationCutoff is the magnitude above which a column pair
// is reported as strongly correlated.
const strongCorrelationCutoff = 0.7

// Explore renders the dataset summary page
func Explore(c flamego.Context, t template.Template, data template.Data) {
	setPublicSiteTitle(data)
	data["IsExplore"] = true

	ds, err := loadedDataset()
	if err != nil {
		logger.Error("Error loading dataset for explore page", "error", err)
		data["Error"] = "No dataset is loaded"
		t.HTML(http.StatusOK, "explore")
		return
	}

	data["DatasetName"] = activeDatasetName
	data["RowCount"] = ds.Rows
	data["ColumnNames"] = ds.ColumnNames()
	data["PreviewRows"] = ds.Preview(10)
	data["NumericCount"] = len(ds.NumericColumns())
	data["CategoricalCount"] = len(ds.CategoricalColumns())

	types := make([]columnTypeRow, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		kind := "categorical"
		if col.Numeric {
			kind = "numeric"
		}
		types = append(types, columnTypeRow{Name: col.Name, Type: kind})
	}
	data["ColumnTypes"] = types

	summaries := make([]columnSummaryRow, 0, len(ds.Columns))
	for _, name := range ds.NumericColumns() {
		col, _ := ds.Column(name)
		stats, err := col.Describe()
		if err != nil {
			logger.Error("Error describing column", "column", name, "error", err)
			continue
		}
		summaries = append(summaries, summarizeColumn(name, stats))
	}
	data["Summaries"] = summaries

	missing := make([]missingValueRow, 0)
	for _, m := range ds.MissingValues() {
		missing = append(missing, missingValueRow{
			Name:    m.Name,
			Count:   m.Count,
			Percent: strconv.FormatFloat(m.Percent, 'f', 2, 64) + "%",
		})
	}
	data["MissingValues"] = missing

	pairs := make([]correlationRow, 0)
	for _, p := range ds.StrongPairs(strongCorrelationCutoff) {
		pairs = append(pairs, correlationRow{
			X: p.X,
			Y: p.Y,
			R: strconv.FormatFloat(p.R, 'f', 3, 64),
		})
	}
	data["StrongPairs"] = pairs

	t.HTML(http.StatusOK, "explore")
}

func summarizeColumn(name string, stats dataset.Stats) columnSummaryRow {
	return columnSummaryRow{
		Name:      name,
		Count:     strconv.Itoa(stats.Count),
		Mean:      fmtStat(stats.Mean),
		Median:    fmtStat(stats.Median),
		Std:       fmtStat(stats.Std),
		Variance:  fmtStat(stats.Variance),
		Min:       fmtStat(stats.Min),
		P25:       fmtStat(stats.P25),
		P50:       fmtStat(stats.P50),
		P75:       fmtStat(stats.P75),
		Max:       fmtStat(stats.Max),
		Skewness:  fmtStat(stats.Skewness),
		Kurtosis:  fmtStat(stats.Kurtosis),
		SkewLabel: dataset.SkewnessLabel(stats.Skewness),
	}
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
