/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"os"
	"strings"

	"github.com/flamego/template"
)

const (
	defaultSiteTitle      = "Vitalsign"
	publicSiteTitleEnvVar = "PUBLIC_SITE_TITLE"
)

func setPublicSiteTitle(data template.Data) {
	title := strings.TrimSpace(os.Getenv(publicSiteTitleEnvVar))
	if title == "" {
		title = defaultSiteTitle
	}

	data["PageTitle"] = title
}
