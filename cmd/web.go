/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalsign/dataset"
	"github.com/humaidq/vitalsign/logging"
	"github.com/humaidq/vitalsign/routes"
	"github.com/humaidq/vitalsign/static"
	"github.com/humaidq/vitalsign/templates"
)

const (
	runtimeEnvVar     = "VITALSIGN_ENV"
	csrfSecretEnvVar  = "CSRF_SECRET"
	datasetPathEnvVar = "DATASET_PATH"
	ip2asnPathEnvVar  = "IP2ASN_PATH"
)

var CmdWeb = &cli.Command{
	Name:    "web",
	Aliases: []string{"start"},
	Usage:   "Start the web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
		&cli.StringFlag{
			Name:    "dataset",
			Sources: cli.EnvVars(datasetPathEnvVar),
			Usage:   "path to a CSV dataset for the explore and visualize pages (bundled sample when unset)",
		},
		&cli.StringFlag{
			Name:    "ip2asn",
			Sources: cli.EnvVars(ip2asnPathEnvVar),
			Usage:   "path to an ip2asn TSV file used to annotate request logs",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	},
	Action: startWeb,
}

func startWeb(ctx context.Context, cmd *cli.Command) error {
	production, err := isProductionEnv()
	if err != nil {
		return err
	}

	csrfSecret := strings.TrimSpace(os.Getenv(csrfSecretEnvVar))
	if production && csrfSecret == "" {
		return errCSRFSecretRequired
	}

	name, ds, err := loadConfiguredDataset(cmd.String("dataset"))
	if err != nil {
		return err
	}

	routes.SetDataset(ds, name)
	datasetLogger.Info("Dataset loaded", "name", name, "rows", ds.Rows, "columns", len(ds.Columns))

	if ip2asnPath := strings.TrimSpace(cmd.String("ip2asn")); ip2asnPath != "" {
		resolver, err := routes.LoadIPASNResolver(ip2asnPath)
		if err != nil {
			return err
		}

		routes.SetClientASNResolver(resolver)
		appLogger.Info("Request log ASN annotation enabled", "path", ip2asnPath)
	}

	f, err := newWebApp(webAppOptions{
		Dev:        cmd.Bool("dev"),
		CSRFSecret: csrfSecret,
	})
	if err != nil {
		return err
	}

	port := cmd.String("port")
	appLogger.Info("Starting web server", "port", port, "production", production)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     logging.StdLogger(logging.SourceWeb),
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server failed: %w", err)
	}

	return nil
}

// isProductionEnv reports whether the runtime environment selects
// production behavior.
func isProductionEnv() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(runtimeEnvVar))) {
	case "", "development", "dev":
		return false, nil
	case "production", "prod":
		return true, nil
	}

	return false, errInvalidRuntimeEnv
}

// loadConfiguredDataset loads the CSV at path, falling back to the
// bundled sample dataset when no path is given.
func loadConfiguredDataset(path string) (string, *dataset.Dataset, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		ds, err := dataset.LoadSample()
		if err != nil {
			return "", nil, fmt.Errorf("failed to load bundled sample dataset: %w", err)
		}

		return "healthcare_sample.csv", ds, nil
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}

	return filepath.Base(path), ds, nil
}

type webAppOptions struct {
	Dev        bool
	CSRFSecret string
}

func newWebApp(opts webAppOptions) (*flamego.Flame, error) {
	if opts.Dev {
		flamego.SetEnv(flamego.EnvTypeDev)
	}

	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestID())
	f.Use(routes.RequestLogger)
	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer(csrf.Options{
		Secret: opts.CSRFSecret,
	}))

	tmplOpts := template.Options{
		FuncMaps: []htmltemplate.FuncMap{{
			"safeImageURL": safeImageURL,
		}},
	}
	if !opts.Dev {
		fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded templates: %w", err)
		}

		tmplOpts.FileSystem = fs
	}

	f.Use(template.Templater(tmplOpts))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(routes.NoCacheHeaders())
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())

	configureEmptyNotFoundHandler(f)

	f.Get("/", routes.Home)
	f.Get("/explore", routes.Explore)
	f.Get("/visualize", routes.Visualize)
	f.Get("/assess", routes.AssessForm)
	f.Post("/assess", csrf.Validate, routes.SubmitAssessment)
	f.Get("/assess/report.pdf", routes.DownloadReport)
	f.Get("/about", routes.About)

	return f, nil
}

// configureEmptyNotFoundHandler keeps 404 responses empty instead of
// the default body.
func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}

// safeImageURL returns url unescaped for image src attributes when it
// is an inline image with an allowed type, and an empty string
// otherwise.
func safeImageURL(url string) htmltemplate.URL {
	trimmed := strings.TrimSpace(url)
	for _, prefix := range []string{
		"data:image/png;base64,",
		"data:image/jpeg;base64,",
		"data:image/gif;base64,",
		"data:image/webp;base64,",
	} {
		if strings.HasPrefix(trimmed, prefix) {
			//nolint:gosec // The prefix check restricts the value to inline images.
			return htmltemplate.URL(trimmed)
		}
	}

	return ""
}
