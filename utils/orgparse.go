/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/niklasfasching/go-org/org"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var newOrgConfig = org.New

var parseOrg = func(config *org.Configuration, reader io.Reader) *org.Document {
	return config.Parse(reader, "")
}

var newHTMLWriter = org.NewHTMLWriter

var writeOrg = func(doc *org.Document, writer *org.HTMLWriter) (string, error) {
	return doc.Write(writer)
}

var parseHTMLFragment = nethtml.ParseFragment

var renderHTML = nethtml.Render

// ParseOrgToHTML converts org-mode content to HTML
func ParseOrgToHTML(content string) (string, error) {
	config := newOrgConfig()

	// Parse the org-mode content
	doc := parseOrg(config, strings.NewReader(content))
	if doc.Error != nil {
		return "", fmt.Errorf("failed to parse org-mode content: %w", doc.Error)
	}

	// Render to HTML
	writer := newHTMLWriter()
	writer.HighlightCodeBlock = func(source, lang string, inline bool, params map[string]string) string {
		if inline {
			return `<code class="inline-code">` + html.EscapeString(source) + `</code>`
		}
		return `<pre><code class="code-block">` + html.EscapeString(source) + `</code></pre>`
	}

	renderedHTML, err := writeOrg(doc, writer)
	if err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	annotatedHTML, err := addExternalLinkPrefix(renderedHTML)
	if err != nil {
		return "", fmt.Errorf("failed to annotate external links: %w", err)
	}

	return annotatedHTML, nil
}

func addExternalLinkPrefix(htmlBody string) (string, error) {
	if strings.TrimSpace(htmlBody) == "" {
		return htmlBody, nil
	}

	container := &nethtml.Node{Type: nethtml.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := parseHTMLFragment(strings.NewReader(htmlBody), container)
	if err != nil {
		return "", err
	}

	for _, node := range nodes {
		container.AppendChild(node)
	}

	annotateExternalLinks(container)

	var buffer bytes.Buffer
	for child := container.FirstChild; child != nil; child = child.NextSibling {
		if err := renderHTML(&buffer, child); err != nil {
			return "", err
		}
	}

	return buffer.String(), nil
}

var externalLinkRelTokens = []string{"noopener", "noreferrer"}

func annotateExternalLinks(node *nethtml.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == nethtml.ElementNode && child.Data == "a" {
			href := ""
			for _, attr := range child.Attr {
				if attr.Key == "href" {
					href = attr.Val
					break
				}
			}

			if isExternalLink(href) {
				setExternalLinkAttrs(child)

				if !linkHasPrefix(child) {
					prefixNode := &nethtml.Node{Type: nethtml.TextNode, Data: "🗗 "}
					if child.FirstChild != nil {
						child.InsertBefore(prefixNode, child.FirstChild)
					} else {
						child.AppendChild(prefixNode)
					}
				}
			}
		}

		annotateExternalLinks(child)
	}
}

func setExternalLinkAttrs(link *nethtml.Node) {
	targetSet := false
	relSet := false

	for i, attr := range link.Attr {
		switch attr.Key {
		case "target":
			link.Attr[i].Val = "_blank"
			targetSet = true
		case "rel":
			link.Attr[i].Val = mergeLinkRelValues(attr.Val, externalLinkRelTokens...)
			relSet = true
		}
	}

	if !targetSet {
		link.Attr = append(link.Attr, nethtml.Attribute{Key: "target", Val: "_blank"})
	}

	if !relSet {
		link.Attr = append(link.Attr, nethtml.Attribute{Key: "rel", Val: strings.Join(externalLinkRelTokens, " ")})
	}
}

func mergeLinkRelValues(existing string, required ...string) string {
	tokens := strings.Fields(existing)
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		seen[strings.ToLower(token)] = true
	}

	for _, token := range required {
		if !seen[strings.ToLower(token)] {
			tokens = append(tokens, token)
			seen[strings.ToLower(token)] = true
		}
	}

	return strings.Join(tokens, " ")
}

func linkHasPrefix(link *nethtml.Node) bool {
	if link.FirstChild == nil || link.FirstChild.Type != nethtml.TextNode {
		return false
	}

	return strings.HasPrefix(link.FirstChild.Data, "🗗")
}

func isExternalLink(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}

	if strings.HasPrefix(href, "#") {
		return false
	}

	// Site-relative links point at our own pages. Protocol-relative
	// links (//host/path) still count as external.
	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		return false
	}

	if isVitalsignBaseURLLink(href) {
		return false
	}

	return true
}

func isVitalsignBaseURLLink(href string) bool {
	baseURL := strings.TrimSpace(os.Getenv("VITALSIGN_BASE_URL"))
	if baseURL == "" {
		return false
	}

	trimmedBase := strings.TrimRight(baseURL, "/")
	if trimmedBase == "" {
		return false
	}

	if strings.HasPrefix(href, trimmedBase) {
		return true
	}

	parsedBase, ok := parseAbsoluteURL(trimmedBase)
	if !ok {
		return false
	}

	parsedHref, ok := parseAbsoluteURL(href)
	if !ok {
		return false
	}

	if !strings.EqualFold(parsedBase.Host, parsedHref.Host) {
		return false
	}

	basePath := strings.TrimRight(parsedBase.Path, "/")
	if basePath == "" || basePath == "/" {
		return true
	}

	return parsedHref.Path == basePath || strings.HasPrefix(parsedHref.Path, basePath+"/")
}

func parseAbsoluteURL(raw string) (*url.URL, bool) {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		parsed, err = url.Parse("https://" + raw)
	}
	if err != nil || parsed.Host == "" {
		return nil, false
	}

	return parsed, true
}

// ExtractTitle extracts the title from org-mode content
// Tries #+TITLE: first, then falls back to the first headline
func ExtractTitle(content string) string {
	// Try to find #+TITLE: directive (case-insensitive)
	reTitleDirective := regexp.MustCompile(`(?i)^\s*#\+TITLE:\s+(.+)$`)
	lines := strings.Split(content, "\n")

	for _, line := range lines {
		if matches := reTitleDirective.FindStringSubmatch(line); len(matches) > 1 {
			return strings.TrimSpace(matches[1])
		}
	}

	// Fallback: Find first headline (starts with one or more *)
	reHeadline := regexp.MustCompile(`(?m)^\*+\s+(.+)$`)
	if matches := reHeadline.FindStringSubmatch(content); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// If no title or headline found, return default
	return "Untitled Page"
}
