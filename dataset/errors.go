/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dataset

import "errors"

var (
	ErrEmptyDataset         = errors.New("dataset has no data rows")
	ErrColumnNotFound       = errors.New("column not found")
	ErrColumnNotNumeric     = errors.New("column is not numeric")
	ErrNoValues             = errors.New("column has no values")
	ErrTooFewNumericColumns = errors.New("need at least two numeric columns")
)
