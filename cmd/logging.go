/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/humaidq/vitalsign/logging"

var appLogger = logging.Logger(logging.SourceApp)
var datasetLogger = logging.Logger(logging.SourceDataset)
var reportLogger = logging.Logger(logging.SourceReport)
