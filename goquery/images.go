package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// imageSelectors are applied in order; results across all selectors are
// merged with order-preserving deduplication.
var imageSelectors = []string{
	`img[src*="route"]`,
	`img[src*="photo"]`,
	".photo img",
	".image-gallery img",
	"#route-photos img",
}

// ExtractImages returns absolute image URLs for the route. The src
// attribute is preferred, falling back to the lazy-load data-src. Relative
// paths are resolved against baseURL and duplicates are dropped.
func ExtractImages(doc *goquery.Document, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var images []string

	for _, selector := range imageSelectors {
		doc.Find(selector).Each(func(_ int, img *goquery.Selection) {
			src, _ := img.Attr("src")
			if src == "" {
				src, _ = img.Attr("data-src")
			}
			if src == "" {
				return
			}
			resolved := resolveURL(base, src)
			if resolved == "" || seen[resolved] {
				return
			}
			seen[resolved] = true
			images = append(images, resolved)
		})
	}

	return images
}
