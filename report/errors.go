/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package report

import "errors"

var (
	ErrMissingMetrics    = errors.New("health metrics are required")
	ErrMissingAssessment = errors.New("risk assessment is required")
	ErrMissingReport     = errors.New("report is required")
)
