// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"net/netip"
)

func TestParseIPASNTSVAndLookup(t *testing.T) {
	t.Parallel()

	// Rows are out of order and include a blank line and a row without
	// a country column.
	data := strings.Join([]string{
		"8.8.8.0\t8.8.8.255\t15169\tUS\tGOOGLE",
		"",
		"1.1.1.0\t1.1.1.255\t13335\tus\tCLOUDFLARE",
		"2001:db8::\t2001:db8::ffff\t64500\tZZ\tDOC",
		"203.0.113.0\t203.0.113.255\t64501",
	}, "\n")

	table, err := parseIPASNTSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parseIPASNTSV returned error: %v", err)
	}

	tests := []struct {
		name    string
		ip      string
		asn     uint32
		country string
		ok      bool
	}{
		{name: "IPv4 in Cloudflare range", ip: "1.1.1.1", asn: 13335, country: "US", ok: true},
		{name: "IPv4 in Google range", ip: "8.8.8.8", asn: 15169, country: "US", ok: true},
		{name: "IPv4 without country column", ip: "203.0.113.9", asn: 64501, country: "", ok: true},
		{name: "IPv6 in documentation range", ip: "2001:db8::1", asn: 64500, country: "ZZ", ok: true},
		{name: "IPv4 not found", ip: "9.9.9.9", asn: 0, country: "", ok: false},
		{name: "IPv6 not found", ip: "::1", asn: 0, country: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			addr, parseErr := netip.ParseAddr(tc.ip)
			if parseErr != nil {
				t.Fatalf("failed to parse IP %q: %v", tc.ip, parseErr)
			}

			gotASN, gotCountry, gotOK := table.lookup(addr)
			if gotOK != tc.ok {
				t.Fatalf("unexpected lookup status for %q: got %v, want %v", tc.ip, gotOK, tc.ok)
			}

			if gotASN != tc.asn {
				t.Fatalf("unexpected ASN for %q: got %d, want %d", tc.ip, gotASN, tc.asn)
			}

			if gotCountry != tc.country {
				t.Fatalf("unexpected country for %q: got %q, want %q", tc.ip, gotCountry, tc.country)
			}
		})
	}
}

func TestParseIPASNTSVRejectsMalformedRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		row     string
		wantErr error
	}{
		{name: "too few columns", row: "1.1.1.0\t1.1.1.255", wantErr: errIPASNMissingColumns},
		{name: "mismatched families", row: "1.1.1.0\t2001:db8::ffff\t13335", wantErr: errIPASNFamilyMismatch},
		{name: "reversed range", row: "1.1.1.255\t1.1.1.0\t13335", wantErr: errIPASNRangeOrder},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseIPASNTSV(strings.NewReader(tc.row))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("unexpected error for %q: got %v, want %v", tc.row, err, tc.wantErr)
			}
		})
	}
}

func TestParseIPASNTSVRejectsUnparseableValues(t *testing.T) {
	t.Parallel()

	rows := []string{
		"bogus\t1.1.1.255\t13335",
		"1.1.1.0\tbogus\t13335",
		"1.1.1.0\t1.1.1.255\tnot-a-number",
	}

	for _, row := range rows {
		if _, err := parseIPASNTSV(strings.NewReader(row)); err == nil {
			t.Fatalf("expected parseIPASNTSV to reject %q", row)
		}
	}
}

func TestClientIPAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		value      string
		remoteAddr string
		want       string
		wantOK     bool
	}{
		{name: "X-Forwarded-For chain", header: "X-Forwarded-For", value: " 203.0.113.4, 198.51.100.2 ", want: "203.0.113.4", wantOK: true},
		{name: "X-Forwarded-For with port", header: "X-Forwarded-For", value: "203.0.113.4:443", want: "203.0.113.4", wantOK: true},
		{name: "X-Real-IP", header: "X-Real-IP", value: "198.51.100.7", want: "198.51.100.7", wantOK: true},
		{name: "RemoteAddr host and port", remoteAddr: "192.0.2.10:8080", want: "192.0.2.10", wantOK: true},
		{name: "IPv6 RemoteAddr", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1", wantOK: true},
		{name: "unparseable RemoteAddr", remoteAddr: "not-an-ip", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}

			if tc.remoteAddr != "" {
				req.RemoteAddr = tc.remoteAddr
			}

			addr, ok := clientIPAddr(req)
			if ok != tc.wantOK {
				t.Fatalf("unexpected status: got %v, want %v", ok, tc.wantOK)
			}

			if tc.wantOK && addr.String() != tc.want {
				t.Fatalf("unexpected address: got %q, want %q", addr.String(), tc.want)
			}
		})
	}

	if _, ok := clientIPAddr(nil); ok {
		t.Fatal("expected nil request to resolve to no address")
	}
}

func TestLoadIPASNResolver(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ip2asn-combined.tsv")

	if err := os.WriteFile(path, []byte("1.1.1.0\t1.1.1.255\t13335\tUS\tCLOUDFLARE\n"), 0o600); err != nil {
		t.Fatalf("failed to write TSV file: %v", err)
	}

	resolver, err := LoadIPASNResolver(path)
	if err != nil {
		t.Fatalf("LoadIPASNResolver returned error: %v", err)
	}

	hit := httptest.NewRequest(http.MethodGet, "/", nil)
	hit.Header.Set("X-Forwarded-For", "1.1.1.1")

	asn, country, ok := resolver(hit)
	if !ok {
		t.Fatal("expected resolver to find the forwarded client IP")
	}

	if asn != 13335 || country != "US" {
		t.Fatalf("unexpected resolution: got %d/%q, want %d/%q", asn, country, 13335, "US")
	}

	miss := httptest.NewRequest(http.MethodGet, "/", nil)
	miss.RemoteAddr = "9.9.9.9:443"

	if _, _, missOK := resolver(miss); missOK {
		t.Fatal("expected resolver to miss an unlisted IP")
	}
}

func TestLoadIPASNResolverMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadIPASNResolver(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Fatal("expected LoadIPASNResolver to fail for a missing file")
	}
}

func TestLoadIPASNResolverRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ip2asn-combined.tsv")

	if err := os.WriteFile(path, []byte("1.1.1.0\t1.1.1.255\n"), 0o600); err != nil {
		t.Fatalf("failed to write TSV file: %v", err)
	}

	if _, err := LoadIPASNResolver(path); !errors.Is(err, errIPASNMissingColumns) {
		t.Fatalf("unexpected error: got %v, want %v", err, errIPASNMissingColumns)
	}
}
