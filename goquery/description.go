package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/cragdex/cragdex"
)

// descriptionSelectors are the two known placements of the rich-text
// description block, tried in order.
var descriptionSelectors = []string{
	"div.fr-view",
	"div#route-description",
}

// ExtractDescription returns the route description as space-joined visible
// text with embedded script and style content stripped. Returns the
// fallback literal when no content block matches or the block is empty.
func ExtractDescription(doc *goquery.Document) string {
	for _, selector := range descriptionSelectors {
		block := doc.Find(selector).First()
		if block.Length() == 0 {
			continue
		}
		block.Find("script, style").Remove()
		if text := joinedText(block); text != "" {
			return text
		}
	}
	return cragdex.FallbackDescription
}
