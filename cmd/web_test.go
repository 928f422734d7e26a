// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flamego/flamego"

	"github.com/humaidq/vitalsign/routes"
)

func TestSafeImageURLDataImageRendersWithoutTemplateSentinel(t *testing.T) {
	t.Parallel()

	qr := "data:image/png;base64,aGVsbG8="

	tpl, err := template.New("qr").Funcs(template.FuncMap{
		"safeImageURL": safeImageURL,
	}).Parse(`<img src="{{ safeImageURL .QR }}">`)
	if err != nil {
		t.Fatalf("failed to parse template: %v", err)
	}

	var rendered strings.Builder

	if err := tpl.Execute(&rendered, map[string]string{"QR": qr}); err != nil {
		t.Fatalf("failed to execute template: %v", err)
	}

	out := rendered.String()
	if strings.Contains(out, "#ZgotmplZ") {
		t.Fatalf("expected rendered html without template sentinel, got %q", out)
	}

	if !strings.Contains(out, `src="data:image/png;base64,aGVsbG8="`) {
		t.Fatalf("expected rendered html to contain data image URL, got %q", out)
	}
}

func TestSafeImageURLRejectsUnsafeScheme(t *testing.T) {
	t.Parallel()

	if got := safeImageURL("javascript:alert(1)"); got != "" {
		t.Fatalf("expected unsafe image URL to be rejected, got %q", got)
	}
}

func TestSafeImageURLRejectsUnsupportedDataImageType(t *testing.T) {
	t.Parallel()

	if got := safeImageURL("data:image/svg+xml;base64,PHN2Zz48L3N2Zz4="); got != "" {
		t.Fatalf("expected unsupported data image URL to be rejected, got %q", got)
	}
}

func TestConfigureEmptyNotFoundHandlerReturnsStatusOnly(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	configureEmptyNotFoundHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}

func TestIsProductionEnv(t *testing.T) {
	tests := []struct {
		value      string
		production bool
		wantErr    error
	}{
		{value: "", production: false},
		{value: "dev", production: false},
		{value: "development", production: false},
		{value: "prod", production: true},
		{value: " PRODUCTION ", production: true},
		{value: "staging", wantErr: errInvalidRuntimeEnv},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			t.Setenv(runtimeEnvVar, tt.value)

			production, err := isProductionEnv()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			if production != tt.production {
				t.Fatalf("expected production=%v for %q", tt.production, tt.value)
			}
		})
	}
}

func TestLoadConfiguredDatasetFallsBackToSample(t *testing.T) {
	t.Parallel()

	name, ds, err := loadConfiguredDataset(" ")
	if err != nil {
		t.Fatalf("loadConfiguredDataset failed: %v", err)
	}

	if name != "healthcare_sample.csv" {
		t.Fatalf("unexpected dataset name: %q", name)
	}

	if ds.Rows == 0 || len(ds.Columns) == 0 {
		t.Fatalf("expected non-empty sample dataset, got %d rows and %d columns", ds.Rows, len(ds.Columns))
	}
}

func TestLoadConfiguredDatasetReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clinic.csv")
	if err := os.WriteFile(path, []byte("Age,Score\n30,1\n40,2\n"), 0644); err != nil {
		t.Fatalf("failed to write dataset file: %v", err)
	}

	name, ds, err := loadConfiguredDataset(path)
	if err != nil {
		t.Fatalf("loadConfiguredDataset failed: %v", err)
	}

	if name != "clinic.csv" {
		t.Fatalf("unexpected dataset name: %q", name)
	}

	if ds.Rows != 2 {
		t.Fatalf("expected 2 rows, got %d", ds.Rows)
	}
}

func TestLoadConfiguredDatasetMissingFile(t *testing.T) {
	t.Parallel()

	if _, _, err := loadConfiguredDataset(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing dataset file")
	}
}

func newTestWebApp(t *testing.T) *flamego.Flame {
	t.Helper()

	name, ds, err := loadConfiguredDataset("")
	if err != nil {
		t.Fatalf("failed to load sample dataset: %v", err)
	}

	routes.SetDataset(ds, name)

	f, err := newWebApp(webAppOptions{})
	if err != nil {
		t.Fatalf("failed to build web app: %v", err)
	}

	return f
}

//nolint:paralleltest // Installs the package-level active dataset.
func TestNewWebAppServesPages(t *testing.T) {
	f := newTestWebApp(t)

	tests := []struct {
		path string
		want string
	}{
		{path: "/", want: "Health Data Dashboard"},
		{path: "/explore", want: "Summary Statistics"},
		{path: "/visualize", want: "histogram_chart"},
		{path: "/assess", want: `name="_csrf"`},
		{path: "/about", want: "screening aid"},
		{path: "/css/main.css", want: ".topnav"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			f.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
			}

			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Fatalf("expected %s response to contain %q", tt.path, tt.want)
			}
		})
	}
}

//nolint:paralleltest // Installs the package-level active dataset.
func TestNewWebAppRejectsPostWithoutCSRFToken(t *testing.T) {
	f := newTestWebApp(t)

	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader("age=30"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

//nolint:paralleltest // Installs the package-level active dataset.
func TestNewWebAppServesPDFReport(t *testing.T) {
	f := newTestWebApp(t)

	target := "/assess/report.pdf?age=30&bmi=22&systolic=115&diastolic=75&cholesterol=180&glucose=85&smoker=no"
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("unexpected content type: %q", got)
	}

	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatal("expected response body to be a PDF document")
	}
}

//nolint:paralleltest // Installs the package-level active dataset.
func TestNewWebAppReturnsEmptyNotFound(t *testing.T) {
	f := newTestWebApp(t)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}
