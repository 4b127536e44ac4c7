// Package goquery implements facet extraction from climbing-route pages
// using goquery CSS selectors. Each extractor locates one facet of a route
// record inside loosely-structured markup and degrades to a documented
// fallback when the facet is absent.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cragdex/cragdex"
)

// Parse parses raw HTML into a queryable document.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cragdex.Errorf(cragdex.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// joinedText returns the visible text of a selection with runs of
// whitespace collapsed to single spaces and the ends trimmed.
func joinedText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// resolveURL resolves a possibly-relative reference against a base URL.
// Returns empty string if the reference cannot be parsed.
func resolveURL(base *url.URL, ref string) string {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
