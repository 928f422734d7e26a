/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
)

// Home renders the dashboard page
func Home(c flamego.Context, t template.Template, data template.Data) {
	setPublicSiteTitle(data)

	ds, err := loadedDataset()
	if err != nil {
		logger.Error("Error loading dataset for dashboard", "error", err)
		data["Error"] = "No dataset is loaded"
	} else {
		data["DatasetName"] = activeDatasetName
		data["RowCount"] = ds.Rows
		data["ColumnCount"] = len(ds.Columns)
		data["NumericCount"] = len(ds.NumericColumns())
		data["MissingColumns"] = len(ds.MissingValues())
	}

	data["IsHome"] = true
	t.HTML(http.StatusOK, "home")
}
