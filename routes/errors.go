/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errFieldRequired   = errors.New("field is required")
	errInvalidNumber   = errors.New("invalid number")
	errValueOutOfRange = errors.New("value out of range")
	errNoDatasetLoaded = errors.New("no dataset loaded")
)
