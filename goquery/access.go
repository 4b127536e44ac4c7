package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cragdex/cragdex"
)

// accessHeadingRE matches the section headings that introduce approach
// information on route pages.
var accessHeadingRE = regexp.MustCompile(`(?i)(getting there|access|approach)`)

// ExtractAccessInfo returns access and approach notes. Two strategies are
// applied and their results concatenated: paragraphs following
// access-related h3–h5 headings, and a dedicated access section element.
// Returns the fallback literal when both come up empty.
func ExtractAccessInfo(doc *goquery.Document) string {
	var parts []string

	doc.Find("h3, h4, h5").Each(func(_ int, heading *goquery.Selection) {
		if !accessHeadingRE.MatchString(heading.Text()) {
			return
		}
		next := heading.Next()
		if next.Length() == 0 || !next.Is("p, div") {
			return
		}
		if text := strings.TrimSpace(next.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	if section := doc.Find("div#route-getting-there, section.getting-there").First(); section.Length() > 0 {
		if text := joinedText(section); text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return cragdex.FallbackAccessInfo
	}
	return strings.Join(parts, " ")
}
