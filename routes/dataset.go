/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"github.com/humaidq/vitalsign/dataset"
)

var (
	activeDataset     *dataset.Dataset
	activeDatasetName string
)

// SetDataset installs the dataset served by the explore and
// visualize pages. The name is shown on those pages.
func SetDataset(ds *dataset.Dataset, name string) {
	activeDataset = ds
	activeDatasetName = name
}

func loadedDataset() (*dataset.Dataset, error) {
	if activeDataset == nil {
		return nil, errNoDatasetLoaded
	}
	return activeDataset, nil
}
