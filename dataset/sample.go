/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dataset

import (
	"bytes"
	_ "embed"
)

// sampleCSV contains a bundled anonymized health dataset so the
// explore and visualize pages work without an upload.
//
//go:embed healthcare_sample.csv
var sampleCSV []byte

// LoadSample loads the bundled sample dataset.
func LoadSample() (*Dataset, error) {
	return Load(bytes.NewReader(sampleCSV))
}
