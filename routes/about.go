/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	_ "embed"
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/vitalsign/utils"
)

//go:embed about.org
var aboutOrgContent string

var parseAboutPageFn = utils.ParseOrgToHTML

// About renders the about page from the embedded org document.
func About(_ flamego.Context, t template.Template, data template.Data) {
	setPublicSiteTitle(data)
	data["IsAbout"] = true

	html, err := parseAboutPageFn(aboutOrgContent)
	if err != nil {
		logger.Error("Error rendering about page", "error", err)

		data["Error"] = "Failed to load about page"

		t.HTML(http.StatusInternalServerError, "about")

		return
	}

	data["AboutTitle"] = utils.ExtractTitle(aboutOrgContent)
	data["AboutBody"] = htmltemplate.HTML(html) //nolint:gosec // HTML comes from trusted org parser output.

	t.HTML(http.StatusOK, "about")
}
