package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cragdex/cragdex"
)

// DiscoverRouteLinks collects route-page links from an area-listing
// document. Anchors whose href contains "/route/" are resolved against
// baseURL and deduplicated in document order. A max of 0 means no limit.
func DiscoverRouteLinks(doc *goquery.Document, baseURL string, max int) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, cragdex.Errorf(cragdex.EINVALID, "invalid base URL: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.Contains(href, "/route/") {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	if max > 0 && len(links) > max {
		links = links[:max]
	}
	return links, nil
}
